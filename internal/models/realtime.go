package models

// Feed event types pushed to connected staff dashboards.
const (
	FeedComplaintCreated = "complaint_created"
	FeedStatusChanged    = "status_changed"
)

// FeedEvent is a live update about a complaint, broadcast over WebSocket to
// every authenticated staff client watching the records view.
type FeedEvent struct {
	Type      string    `json:"type"`
	Complaint Complaint `json:"complaint"`
}
