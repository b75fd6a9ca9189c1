// Package storage is the single owner of persistent state: complaints and
// staff accounts live in PostgreSQL via GORM, session records live in Redis.
package storage

import (
	"context"
	"errors"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"complaintdesk/backend/internal/config"
	"complaintdesk/backend/internal/models"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

type Storage interface {
	SaveComplaint(complaint *models.Complaint) error
	GetComplaintByID(id uint) (*models.Complaint, error)
	ListComplaintsByRecency() ([]models.Complaint, error)
	UpdateComplaintStatus(id uint, status string) (*models.Complaint, error)

	SaveUser(user *models.User) error
	GetUserByUsername(username string) (*models.User, error)

	SaveSession(sessionID, userID string) error
	GetSessionUserID(sessionID string) (string, error)
	DeleteSession(sessionID string) error
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// SaveComplaint persists a new complaint. The status defaults to Pending when
// the caller left it empty; GORM assigns the ID and CreatedAt timestamp.
func (s *Service) SaveComplaint(complaint *models.Complaint) error {
	if complaint.Status == "" {
		complaint.Status = models.StatusPending
	}

	if err := s.DB.Create(complaint).Error; err != nil {
		log.Printf("ERROR: Failed to save complaint: %v", err)
		return err
	}

	return nil
}

// GetComplaintByID returns the complaint with the given ID, or ErrNotFound.
func (s *Service) GetComplaintByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint

	err := s.DB.First(&complaint, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to get complaint %d: %v", id, err)
		return nil, err
	}

	return &complaint, nil
}

// ListComplaintsByRecency returns every complaint, newest first. Ties on the
// timestamp are broken by ID so later inserts still sort first.
func (s *Service) ListComplaintsByRecency() ([]models.Complaint, error) {
	var complaints []models.Complaint

	if err := s.DB.Order("created_at DESC, id DESC").Find(&complaints).Error; err != nil {
		log.Printf("ERROR: Failed to list complaints: %v", err)
		return nil, err
	}

	return complaints, nil
}

// UpdateComplaintStatus sets the status of an existing complaint and returns
// the updated record. Returns ErrNotFound if the ID does not exist; the
// status value itself is validated by the caller.
func (s *Service) UpdateComplaintStatus(id uint, status string) (*models.Complaint, error) {
	complaint, err := s.GetComplaintByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(complaint).Update("status", status).Error; err != nil {
		log.Printf("ERROR: Failed to update status of complaint %d: %v", id, err)
		return nil, err
	}

	return complaint, nil
}

// SaveUser persists a staff account.
func (s *Service) SaveUser(user *models.User) error {
	return s.DB.Save(user).Error
}

// GetUserByUsername returns the staff account with the given username
// (case-sensitive exact match), or ErrNotFound.
func (s *Service) GetUserByUsername(username string) (*models.User, error) {
	var user models.User

	err := s.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to get user %q: %v", username, err)
		return nil, err
	}

	return &user, nil
}

// SaveSession records an authenticated session in Redis. Sessions have no
// expiry; they live until an explicit logout deletes them.
func (s *Service) SaveSession(sessionID, userID string) error {
	return s.Redis.Set(s.Ctx, config.SessionKeyPrefix+sessionID, userID, 0).Err()
}

// GetSessionUserID resolves a session ID to the user it was issued to.
// Returns ErrNotFound when no such session exists.
func (s *Service) GetSessionUserID(sessionID string) (string, error) {
	userID, err := s.Redis.Get(s.Ctx, config.SessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

// DeleteSession removes the session record, invalidating its token.
func (s *Service) DeleteSession(sessionID string) error {
	return s.Redis.Del(s.Ctx, config.SessionKeyPrefix+sessionID).Err()
}
