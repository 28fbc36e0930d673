package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/daniel-odulate22/NutriTrack-API/apperror"
	"github.com/daniel-odulate22/NutriTrack-API/models"
)

type ReminderService struct {
	db *gorm.DB
}

func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{db: db}
}

// validTime accepts zero-padded 24h "HH:MM" only.
func validTime(t string) bool {
	if len(t) != 5 {
		return false
	}
	_, err := time.Parse("15:04", t)
	return err == nil
}

func (s *ReminderService) Create(userID uint, reminderType, at string) (*models.Reminder, error) {
	if reminderType == "" || at == "" {
		return nil, apperror.InvalidArgument("reminder type and time are required")
	}
	rt := models.ReminderType(reminderType)
	if !rt.Valid() {
		return nil, apperror.InvalidArgument("unknown reminder type: " + reminderType)
	}
	if !validTime(at) {
		return nil, apperror.InvalidArgument("time must be HH:MM, 24-hour, zero-padded")
	}

	reminder := models.Reminder{
		UserID:       userID,
		ReminderType: rt,
		Time:         at,
	}
	if err := s.db.Create(&reminder).Error; err != nil {
		return nil, apperror.Internal("create reminder", err)
	}
	return &reminder, nil
}

func (s *ReminderService) ListMine(userID uint) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := s.db.
		Where("user_id = ?", userID).
		Order("time ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, apperror.Internal("list reminders", err)
	}
	return reminders, nil
}

func (s *ReminderService) DeleteMine(userID, reminderID uint) error {
	var reminder models.Reminder
	if err := s.db.First(&reminder, reminderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("reminder not found")
		}
		return apperror.Internal("lookup reminder", err)
	}

	if !CanMutate(userID, reminder) {
		return apperror.Forbidden("not authorized to delete this reminder")
	}

	if err := s.db.Delete(&reminder).Error; err != nil {
		return apperror.Internal("delete reminder", err)
	}
	return nil
}

// DueAt returns every reminder scheduled for the given wall-clock minute.
// Used by the notification hub's ticker.
func (s *ReminderService) DueAt(hhmm string) ([]models.Reminder, error) {
	var reminders []models.Reminder
	if err := s.db.Where("time = ?", hhmm).Find(&reminders).Error; err != nil {
		return nil, apperror.Internal("query due reminders", err)
	}
	return reminders, nil
}
