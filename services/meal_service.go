package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/daniel-odulate22/NutriTrack-API/apperror"
	"github.com/daniel-odulate22/NutriTrack-API/models"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// MealLogInput is the log-a-meal request. FoodID selects the catalog path,
// CustomName the custom path; exactly one must be set. Numeric fields are
// pointers so "absent" and "zero" stay distinguishable.
type MealLogInput struct {
	FoodID      *uint    `json:"food_id"`
	CustomName  string   `json:"custom_name"`
	Calories    *float64 `json:"calories"`
	ProteinG    *float64 `json:"protein_g"`
	CarbsG      *float64 `json:"carbs_g"`
	FatsG       *float64 `json:"fats_g"`
	MealType    string   `json:"meal_type"`
	ServingSize *float64 `json:"serving_size"`
}

// LogMeal computes a nutrition snapshot and persists it owned by the caller.
// The snapshot is final: later catalog edits never touch stored logs. The
// food lookup and the insert are not one transaction; a food deleted between
// the two still leaves a valid snapshot.
func (s *MealService) LogMeal(userID uint, input MealLogInput) (*models.MealLog, error) {
	switch {
	case input.FoodID != nil:
		return s.logCatalogMeal(userID, input)
	case input.CustomName != "":
		return s.logCustomMeal(userID, input)
	default:
		return nil, apperror.InvalidArgument("a food_id or a custom_name is required")
	}
}

func (s *MealService) logCatalogMeal(userID uint, input MealLogInput) (*models.MealLog, error) {
	var food models.Food
	if err := s.db.First(&food, *input.FoodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("food not found")
		}
		return nil, apperror.Internal("lookup food", err)
	}

	serving := 1.0
	if input.ServingSize != nil && *input.ServingSize != 0 {
		if *input.ServingSize < 0 {
			return nil, apperror.InvalidArgument("serving_size must be positive")
		}
		serving = *input.ServingSize
	}

	mealType := models.MealSnack
	if input.MealType != "" {
		mealType = models.MealType(input.MealType)
		if !mealType.Valid() {
			return nil, apperror.InvalidArgument("unknown meal_type: " + input.MealType)
		}
	}

	log := models.MealLog{
		UserID:      userID,
		FoodID:      input.FoodID,
		MealType:    mealType,
		ServingSize: serving,
		Calories:    food.Calories * serving,
		ProteinG:    food.ProteinG * serving,
		CarbsG:      food.CarbsG * serving,
		FatsG:       food.FatsG * serving,
		Date:        time.Now(),
	}
	return s.create(&log)
}

func (s *MealService) logCustomMeal(userID uint, input MealLogInput) (*models.MealLog, error) {
	if input.Calories == nil || *input.Calories <= 0 || input.MealType == "" {
		return nil, apperror.InvalidArgument("custom meals require calories and meal_type")
	}
	mealType := models.MealType(input.MealType)
	if !mealType.Valid() {
		return nil, apperror.InvalidArgument("unknown meal_type: " + input.MealType)
	}

	log := models.MealLog{
		UserID:      userID,
		CustomName:  input.CustomName,
		MealType:    mealType,
		ServingSize: 1, // custom entries carry absolute totals
		Calories:    *input.Calories,
		ProteinG:    deref(input.ProteinG),
		CarbsG:      deref(input.CarbsG),
		FatsG:       deref(input.FatsG),
		Date:        time.Now(),
	}
	return s.create(&log)
}

func (s *MealService) create(log *models.MealLog) (*models.MealLog, error) {
	if err := s.db.Create(log).Error; err != nil {
		return nil, apperror.Internal("create meal log", err)
	}
	return log, nil
}

// ListMine returns the caller's logs, most recent first, with the referenced
// food resolved inline.
func (s *MealService) ListMine(userID uint) ([]models.MealLog, error) {
	var logs []models.MealLog
	err := s.db.
		Preload("Food").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, apperror.Internal("list meal logs", err)
	}
	return logs, nil
}

// DeleteMine deletes a log after the ownership check. The check runs against
// the stored owner, never a client-supplied field.
func (s *MealService) DeleteMine(userID, logID uint) error {
	var log models.MealLog
	if err := s.db.First(&log, logID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("meal log not found")
		}
		return apperror.Internal("lookup meal log", err)
	}

	if !CanMutate(userID, log) {
		return apperror.Forbidden("not authorized to delete this log")
	}

	if err := s.db.Delete(&log).Error; err != nil {
		return apperror.Internal("delete meal log", err)
	}
	return nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
