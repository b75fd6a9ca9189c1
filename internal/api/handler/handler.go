package handler

import (
	"complaintdesk/backend/internal/auth"
	"complaintdesk/backend/internal/classifier"
	"complaintdesk/backend/internal/complaint"
	"complaintdesk/backend/internal/livefeed"
)

// Handler bundles the services the HTTP routes delegate to.
type Handler struct {
	Complaints *complaint.Service
	Auth       *auth.Service
	Classifier classifier.Classifier
	Hub        *livefeed.ManagerService
}

func NewHandler(complaints *complaint.Service, authSvc *auth.Service, cls classifier.Classifier, hub *livefeed.ManagerService) *Handler {
	return &Handler{
		Complaints: complaints,
		Auth:       authSvc,
		Classifier: cls,
		Hub:        hub,
	}
}
