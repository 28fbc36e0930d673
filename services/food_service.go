package services

import (
	"gorm.io/gorm"

	"github.com/daniel-odulate22/NutriTrack-API/apperror"
	"github.com/daniel-odulate22/NutriTrack-API/models"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// List returns the whole catalog, alphabetical.
func (s *FoodService) List() ([]models.Food, error) {
	var foods []models.Food
	if err := s.db.Order("name ASC").Find(&foods).Error; err != nil {
		return nil, apperror.Internal("list foods", err)
	}
	return foods, nil
}
