package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/daniel-odulate22/NutriTrack-API/middlewares"
	"github.com/daniel-odulate22/NutriTrack-API/services"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

func (mc *MealController) LogMeal(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	var input services.MealLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := mc.meals.LogMeal(principal.ID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (mc *MealController) ListMine(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	logs, err := mc.meals.ListMine(principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (mc *MealController) Delete(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal log id"})
		return
	}

	if err := mc.meals.DeleteMine(principal.ID, uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal log deleted"})
}
