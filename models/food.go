package models

import "gorm.io/gorm"

// Food is a catalog entry. The catalog is reference data, loaded by the
// seed command and read-only at runtime.
type Food struct {
	gorm.Model
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	ServingUnit string  `gorm:"not null;default:100g" json:"serving_unit"`
	Calories    float64 `gorm:"not null" json:"calories"`
	ProteinG    float64 `gorm:"default:0" json:"protein_g"`
	CarbsG      float64 `gorm:"default:0" json:"carbs_g"`
	FatsG       float64 `gorm:"default:0" json:"fats_g"`
}
