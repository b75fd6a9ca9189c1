package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"complaintdesk/backend/internal/complaint"
)

// Ping is the liveness probe.
func (h *Handler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// ShowComplaintForm renders the public submission form.
func (h *Handler) ShowComplaintForm(c *gin.Context) {
	c.HTML(http.StatusOK, "complaint.html", gin.H{})
}

// SubmitComplaint runs the intake workflow for the form field "complaint"
// and re-renders the form with the predicted category or the validation
// message.
func (h *Handler) SubmitComplaint(c *gin.Context) {
	text := c.PostForm("complaint")

	record, err := h.Complaints.Submit(text)
	if errors.Is(err, complaint.ErrComplaintTooShort) {
		c.HTML(http.StatusBadRequest, "complaint.html", gin.H{
			"Error": err.Error(),
			"Text":  text,
		})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to save complaint"})
		return
	}

	c.HTML(http.StatusOK, "complaint.html", gin.H{
		"Prediction": record.Category,
		"Text":       record.Text,
	})
}

type predictRequest struct {
	Complaint string `json:"complaint"`
}

// Predict classifies text without persisting anything.
func (h *Handler) Predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Complaint == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'complaint' text"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": h.Classifier.Classify(req.Complaint)})
}
