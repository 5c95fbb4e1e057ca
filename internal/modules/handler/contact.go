package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"github.com/halcyonlabs/studio-api/internal/modules/serializer"
	"github.com/halcyonlabs/studio-api/internal/modules/service"
)

type ContactHandler struct {
	svc service.ContactService
}

func NewContactHandler(s service.ContactService) *ContactHandler {
	return &ContactHandler{svc: s}
}

type ContactReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact godoc
//
//	@Summary		Submit contact form
//	@Description	Store the inquiry and dispatch one email notification; never retried
//	@Tags			contact
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.ContactReq	true	"Contact payload"
//	@Success		200	{object}	serializer.Response
//	@Router			/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	req := ContactReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	msg := model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := h.svc.Submit(c.Request.Context(), &msg); err != nil {
		if errors.Is(err, service.ErrDispatchFailed) {
			c.JSON(http.StatusBadGateway, serializer.Err(http.StatusBadGateway, "failed to send message", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Msg: "message sent"})
}
