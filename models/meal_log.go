package models

import (
	"time"

	"gorm.io/gorm"
)

type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// MealLog is one logged meal. Exactly one of FoodID/CustomName identifies
// its origin. Nutrition fields are a snapshot taken at creation time; later
// edits to the referenced Food never change a stored log.
type MealLog struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	FoodID      *uint     `json:"food_id,omitempty"`
	Food        *Food     `json:"food,omitempty"`
	CustomName  string    `json:"custom_name,omitempty"`
	Calories    float64   `gorm:"not null" json:"calories"`
	ProteinG    float64   `gorm:"default:0" json:"protein_g"`
	CarbsG      float64   `gorm:"default:0" json:"carbs_g"`
	FatsG       float64   `gorm:"default:0" json:"fats_g"`
	MealType    MealType  `gorm:"not null" json:"meal_type"`
	ServingSize float64   `gorm:"not null;default:1" json:"serving_size"`
	Date        time.Time `gorm:"index" json:"date"`
}

func (m MealLog) OwnerID() uint { return m.UserID }
