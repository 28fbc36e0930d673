package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daniel-odulate22/NutriTrack-API/services"
)

type TipController struct {
	tips *services.TipService
}

func NewTipController(tips *services.TipService) *TipController {
	return &TipController{tips: tips}
}

func (tc *TipController) Random(c *gin.Context) {
	tip, err := tc.tips.Random()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tip)
}
