package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daniel-odulate22/NutriTrack-API/services"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

func (fc *FoodController) List(c *gin.Context) {
	foods, err := fc.foods.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}
