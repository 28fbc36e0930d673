package models

import (
	"gorm.io/gorm"
)

// Goal is a user's nutrition goal. It drives food suggestions.
type Goal string

const (
	GoalWeightLoss     Goal = "weight_loss"
	GoalWeightGain     Goal = "weight_gain"
	GoalMaintainWeight Goal = "maintain_weight"
)

func (g Goal) Valid() bool {
	switch g {
	case GoalWeightLoss, GoalWeightGain, GoalMaintainWeight:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash, never the plaintext
	Goal     Goal   `gorm:"not null;default:maintain_weight" json:"goal"`
}
