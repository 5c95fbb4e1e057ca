package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/halcyonlabs/studio-api/internal/middleware"
)

// currentUser resolves the acting user's identity from the request context.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.ContextUserKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
