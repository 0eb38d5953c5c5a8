package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root godoc
// @Summary      Service metadata
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "API Images & Vidéos",
		"routes": gin.H{
			"upload_photo": "POST /images/upload",
			"upload_video": "POST /images/videos/upload",
			"docs":         "/docs",
		},
	})
}
