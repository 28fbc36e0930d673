package models

import "gorm.io/gorm"

type ReminderType string

const (
	ReminderMeal      ReminderType = "Meal"
	ReminderHydration ReminderType = "Hydration"
	ReminderWorkout   ReminderType = "Workout"
)

func (r ReminderType) Valid() bool {
	switch r {
	case ReminderMeal, ReminderHydration, ReminderWorkout:
		return true
	}
	return false
}

type Reminder struct {
	gorm.Model
	UserID       uint         `gorm:"index;not null" json:"user_id"`
	ReminderType ReminderType `gorm:"not null" json:"reminder_type"`
	// Time is a zero-padded 24h "HH:MM" string. No date, no timezone.
	Time string `gorm:"not null" json:"time"`
}

func (r Reminder) OwnerID() uint { return r.UserID }
