package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daniel-odulate22/NutriTrack-API/models"
)

func TestCanMutate(t *testing.T) {
	log := models.MealLog{UserID: 7}
	reminder := models.Reminder{UserID: 7}

	assert.True(t, CanMutate(7, log))
	assert.True(t, CanMutate(7, reminder))
	assert.False(t, CanMutate(8, log))
	assert.False(t, CanMutate(8, reminder))
}
