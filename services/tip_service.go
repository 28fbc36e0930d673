package services

import (
	"math/rand"

	"gorm.io/gorm"

	"github.com/daniel-odulate22/NutriTrack-API/apperror"
	"github.com/daniel-odulate22/NutriTrack-API/models"
)

type TipService struct {
	db *gorm.DB
}

func NewTipService(db *gorm.DB) *TipService {
	return &TipService{db: db}
}

// Random returns one tip chosen uniformly via count + random offset.
func (s *TipService) Random() (*models.Tip, error) {
	var count int64
	if err := s.db.Model(&models.Tip{}).Count(&count).Error; err != nil {
		return nil, apperror.Internal("count tips", err)
	}
	if count == 0 {
		return nil, apperror.NotFound("no tips found")
	}

	var tip models.Tip
	offset := rand.Intn(int(count))
	if err := s.db.Offset(offset).First(&tip).Error; err != nil {
		return nil, apperror.Internal("fetch tip", err)
	}
	return &tip, nil
}
