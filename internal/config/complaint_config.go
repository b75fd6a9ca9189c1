package config

const (
	// MinComplaintWords is a fixed business rule: submissions shorter than
	// this many whitespace-delimited words are rejected before any
	// classification or persistence happens.
	MinComplaintWords = 5

	// CategoryUnavailable is the category recorded when the classifier is
	// degraded. Intake still persists the complaint.
	CategoryUnavailable = "Classification Unavailable"

	// Sessions
	SessionCookieName = "session_token"
	SessionKeyPrefix  = "session:"
	JWTIssuer         = "complaintdesk-service"
)

// ComplaintStatuses is the full set of recognized complaint statuses.
// Any transition between members is allowed; only membership is enforced.
var ComplaintStatuses = []string{"Pending", "In Progress", "Resolved"}

// IsKnownStatus reports whether s is one of the recognized statuses.
func IsKnownStatus(s string) bool {
	for _, known := range ComplaintStatuses {
		if s == known {
			return true
		}
	}
	return false
}
