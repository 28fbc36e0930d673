package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/daniel-odulate22/NutriTrack-API/middlewares"
	"github.com/daniel-odulate22/NutriTrack-API/services"
)

type ReminderController struct {
	reminders *services.ReminderService
}

func NewReminderController(reminders *services.ReminderService) *ReminderController {
	return &ReminderController{reminders: reminders}
}

type ReminderInput struct {
	ReminderType string `json:"reminder_type"`
	Time         string `json:"time"`
}

func (rc *ReminderController) Create(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	var input ReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := rc.reminders.Create(principal.ID, input.ReminderType, input.Time)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reminder)
}

func (rc *ReminderController) ListMine(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	reminders, err := rc.reminders.ListMine(principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

func (rc *ReminderController) Delete(c *gin.Context) {
	principal, _ := middlewares.GetPrincipal(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reminder id"})
		return
	}

	if err := rc.reminders.DeleteMine(principal.ID, uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reminder deleted"})
}
