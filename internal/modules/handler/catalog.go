package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halcyonlabs/studio-api/internal/modules/serializer"
	"github.com/halcyonlabs/studio-api/internal/modules/service"
)

type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: s}
}

// ListServices godoc
//
//	@Summary		List service offerings
//	@Description	Public service catalog for the marketing site, grouped by category
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.ServiceOffering}
//	@Router			/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	offerings, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: offerings})
}
