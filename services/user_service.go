package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/daniel-odulate22/NutriTrack-API/apperror"
	"github.com/daniel-odulate22/NutriTrack-API/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ProfileInput carries the updatable profile fields. Empty fields are left
// untouched; the password never changes through this path.
type ProfileInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Goal  string `json:"goal"`
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, apperror.Internal("lookup user", err)
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Goal != "" {
		goal := models.Goal(input.Goal)
		if !goal.Valid() {
			return nil, apperror.InvalidArgument("unknown goal: " + input.Goal)
		}
		user.Goal = goal
	}

	if err := s.db.Save(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.Conflict("email already in use")
		}
		return nil, apperror.Internal("update user", err)
	}
	return user, nil
}

// isUniqueViolation covers gorm's portable duplicate-key error plus the raw
// messages the postgres and sqlite drivers surface.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
