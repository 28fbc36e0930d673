package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/daniel-odulate22/NutriTrack-API/apperror"
	"github.com/daniel-odulate22/NutriTrack-API/models"
	"github.com/daniel-odulate22/NutriTrack-API/utils"
)

type AuthService struct {
	db     *gorm.DB
	tokens *utils.TokenService
}

func NewAuthService(db *gorm.DB, tokens *utils.TokenService) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Register creates a user with the default goal. No token is issued here;
// the client logs in afterwards.
func (s *AuthService) Register(name, email, password string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperror.Conflict("email already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Internal("lookup user", err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperror.Internal("hash password", err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Goal:     models.GoalMaintainWeight,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// the lookup above races with concurrent registrations; the unique
		// index on email is the authority
		if isUniqueViolation(err) {
			return nil, apperror.Conflict("email already in use")
		}
		return nil, apperror.Internal("create user", err)
	}
	return &user, nil
}

// Login verifies credentials and issues a token carrying a snapshot of the
// user. Unknown email and wrong password return the identical error so the
// response leaks nothing about which check failed.
func (s *AuthService) Login(email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperror.InvalidCredentials()
		}
		return "", apperror.Internal("lookup user", err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", apperror.InvalidCredentials()
	}

	token, err := s.tokens.Issue(utils.Principal{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Goal:  user.Goal,
	})
	if err != nil {
		return "", apperror.Internal("issue token", err)
	}
	return token, nil
}
