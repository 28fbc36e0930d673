package services

import (
	"gorm.io/gorm"

	"github.com/daniel-odulate22/NutriTrack-API/apperror"
	"github.com/daniel-odulate22/NutriTrack-API/models"
)

const suggestionLimit = 10

type SuggestionService struct {
	db    *gorm.DB
	users *UserService
}

func NewSuggestionService(db *gorm.DB, users *UserService) *SuggestionService {
	return &SuggestionService{db: db, users: users}
}

// Suggest filters the catalog by the effective goal: the override when one
// is supplied, otherwise the user's stored goal. The stored goal is re-read
// here rather than taken from the token snapshot, so a profile update takes
// effect on the next call instead of the next login.
func (s *SuggestionService) Suggest(userID uint, goalOverride string) ([]models.Food, error) {
	goal := models.Goal(goalOverride)
	if goalOverride == "" {
		user, err := s.users.GetProfile(userID)
		if err != nil {
			return nil, err
		}
		goal = user.Goal
	}

	q := s.db.Limit(suggestionLimit)
	switch goal {
	case models.GoalWeightLoss:
		q = q.Where("calories < ?", 150)
	case models.GoalWeightGain:
		q = q.Where("protein_g > ? OR calories > ?", 20, 400)
	default:
		// maintain_weight, and any goal string we do not recognize
		q = q.Where("calories >= ? AND calories <= ?", 100, 300)
	}

	var foods []models.Food
	if err := q.Find(&foods).Error; err != nil {
		return nil, apperror.Internal("query suggestions", err)
	}
	return foods, nil
}
