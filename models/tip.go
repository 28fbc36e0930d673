package models

import "gorm.io/gorm"

type TipCategory string

const (
	TipNutrition  TipCategory = "nutrition"
	TipMotivation TipCategory = "motivation"
	TipWorkout    TipCategory = "workout"
)

func (t TipCategory) Valid() bool {
	switch t {
	case TipNutrition, TipMotivation, TipWorkout:
		return true
	}
	return false
}

// Tip is a piece of reference content served uniformly at random.
type Tip struct {
	gorm.Model
	Category TipCategory `gorm:"not null;default:nutrition" json:"category"`
	Content  string      `gorm:"not null" json:"content"`
}
