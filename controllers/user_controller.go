package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daniel-odulate22/NutriTrack-API/middlewares"
	"github.com/daniel-odulate22/NutriTrack-API/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	user, err := uc.users.GetProfile(principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.users.UpdateProfile(principal.ID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"goal":  user.Goal,
	})
}
