package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/daniel-odulate22/NutriTrack-API/apperror"
)

// respondError converts any service error into its HTTP shape. Internal
// failures collapse to a generic 500 body; everything else keeps its typed
// status and message.
func respondError(c *gin.Context, err error) {
	ae := apperror.From(err)
	c.JSON(ae.StatusCode(), gin.H{"error": ae.PublicMessage()})
}
