package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"github.com/halcyonlabs/studio-api/internal/modules/serializer"
	"github.com/halcyonlabs/studio-api/internal/modules/service"
)

type ClientHandler struct {
	svc service.ClientService
}

func NewClientHandler(s service.ClientService) *ClientHandler {
	return &ClientHandler{svc: s}
}

type CreateClientReq struct {
	BusinessName string `json:"business_name" binding:"required"`
	ContactName  string `json:"contact_name"`
	Email        string `json:"email" binding:"omitempty,email"`
}

// ListClients godoc
//
//	@Summary		List clients
//	@Description	List all clients owned by the acting user
//	@Tags			client
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Client}
//	@Router			/clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	clients, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: clients})
}

// CreateClient godoc
//
//	@Summary		Create client
//	@Description	Create a new client record
//	@Tags			client
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateClientReq	true	"CreateClient payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Client}
//	@Router			/clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	req := CreateClientReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	client := model.Client{
		UserID:       userID,
		BusinessName: req.BusinessName,
		ContactName:  req.ContactName,
		Email:        req.Email,
	}
	if err := h.svc.Create(c.Request.Context(), &client); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: client})
}
