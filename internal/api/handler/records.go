package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"complaintdesk/backend/internal/complaint"
	"complaintdesk/backend/internal/config"
	"complaintdesk/backend/internal/storage"
)

// ListRecords renders the triage view: all complaints, newest first.
func (h *Handler) ListRecords(c *gin.Context) {
	complaints, err := h.Complaints.ListByRecency()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load complaints"})
		return
	}

	c.HTML(http.StatusOK, "records.html", gin.H{
		"Complaints": complaints,
		"Statuses":   config.ComplaintStatuses,
	})
}

// UpdateStatus applies a status change to the complaint in the :id param.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}

	_, err = h.Complaints.SetStatus(uint(id), c.PostForm("status"))
	if errors.Is(err, complaint.ErrUnknownStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.Redirect(http.StatusFound, "/records")
}
