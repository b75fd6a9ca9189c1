package models

import "gorm.io/gorm"

// Complaint statuses. New complaints always start as Pending.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

// Complaint is a single submitted complaint together with the category the
// classifier assigned at creation time. The embedded gorm.Model provides the
// ID (primary key, uint) and CreatedAt, which serves as the submission timestamp.
type Complaint struct {
	gorm.Model

	// Text is the raw complaint text as submitted.
	Text string `gorm:"type:text;not null" json:"text"`
	// Category is assigned once by the classifier and never re-written.
	Category string `gorm:"type:varchar(100);not null" json:"category"`
	// Status is one of StatusPending, StatusInProgress, StatusResolved.
	Status string `gorm:"type:varchar(32);not null;default:'Pending'" json:"status"`
}
