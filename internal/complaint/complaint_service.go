// Package complaint provides the core logic for complaint intake and the
// status lifecycle of existing complaints.
package complaint

import (
	"errors"
	"fmt"
	"log"

	"complaintdesk/backend/internal/analysis"
	"complaintdesk/backend/internal/classifier"
	"complaintdesk/backend/internal/config"
	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/storage"
)

var (
	// ErrComplaintTooShort rejects submissions under the word threshold.
	// Nothing is classified or persisted for such text.
	ErrComplaintTooShort = fmt.Errorf("complaint must contain at least %d words", config.MinComplaintWords)

	// ErrUnknownStatus rejects status values outside the recognized set.
	ErrUnknownStatus = errors.New("unknown complaint status")
)

// Broadcaster pushes live feed events to connected staff dashboards.
type Broadcaster interface {
	Broadcast(event models.FeedEvent)
}

// Notifier sends an out-of-band alert about a newly created complaint.
type Notifier interface {
	NotifyNewComplaint(complaint *models.Complaint)
}

// Service handles the business logic for complaints.
type Service struct {
	Storage    storage.Storage
	Classifier classifier.Classifier

	feed     Broadcaster
	notifier Notifier
}

// NewService creates a new complaint service.
func NewService(s storage.Storage, c classifier.Classifier) *Service {
	return &Service{Storage: s, Classifier: c}
}

// SetFeed attaches the live feed hub. Optional.
func (s *Service) SetFeed(feed Broadcaster) {
	s.feed = feed
}

// SetNotifier attaches an out-of-band notifier. Optional.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// Submit is the single entry point for complaint creation. It validates the
// word count, classifies the text and persists a new Pending complaint.
// Classification is best-effort: a degraded classifier yields the sentinel
// category and the complaint is stored anyway.
func (s *Service) Submit(rawText string) (*models.Complaint, error) {
	if analysis.WordCount(rawText) < config.MinComplaintWords {
		return nil, ErrComplaintTooShort
	}

	category := s.Classifier.Classify(rawText)

	complaint := &models.Complaint{
		Text:     rawText,
		Category: category,
		Status:   models.StatusPending,
	}
	if err := s.Storage.SaveComplaint(complaint); err != nil {
		return nil, err
	}

	log.Printf("INFO: Complaint %d created with category %q", complaint.ID, category)

	if s.feed != nil {
		s.feed.Broadcast(models.FeedEvent{Type: models.FeedComplaintCreated, Complaint: *complaint})
	}
	if s.notifier != nil {
		s.notifier.NotifyNewComplaint(complaint)
	}

	return complaint, nil
}

// SetStatus applies a status change to an existing complaint. The only guard
// is set membership: any of the recognized statuses may be set from any
// current value. Sequencing (Pending -> In Progress -> Resolved) is
// deliberately not enforced.
func (s *Service) SetStatus(id uint, requested string) (*models.Complaint, error) {
	if !config.IsKnownStatus(requested) {
		return nil, ErrUnknownStatus
	}

	complaint, err := s.Storage.UpdateComplaintStatus(id, requested)
	if err != nil {
		return nil, err
	}

	if s.feed != nil {
		s.feed.Broadcast(models.FeedEvent{Type: models.FeedStatusChanged, Complaint: *complaint})
	}

	return complaint, nil
}

// ListByRecency returns all complaints, newest first, for the records view.
func (s *Service) ListByRecency() ([]models.Complaint, error) {
	return s.Storage.ListComplaintsByRecency()
}
