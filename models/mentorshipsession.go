package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mentorship session statuses.
const (
	SessionStatusPending   = "pending"
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled" // terminal
)

// Cancellation reasons recorded on a session.
const (
	CancelReasonDeclined   = "declined"
	CancelReasonWithdrawn  = "withdrawn"
	CancelReasonInactivity = "inactivity"
)

// MentorshipSession is the lifecycle record of one mentor/mentee engagement.
// Status only ever changes through the transition table below; individual
// calendar bookings live in the bookings collection.
type MentorshipSession struct {
	ID                  primitive.ObjectID  `json:"_id" bson:"_id"`
	MentorID            string              `json:"mentorId" bson:"mentorId"`
	MenteeID            string              `json:"menteeId" bson:"menteeId"`
	Status              string              `json:"status" bson:"status"`
	Message             string              `json:"message,omitempty" bson:"message,omitempty"`
	CancelReason        string              `json:"cancelReason,omitempty" bson:"cancelReason,omitempty"`
	RequestedAt         primitive.DateTime  `json:"requestedAt" bson:"requestedAt"`
	ApprovedAt          *primitive.DateTime `json:"approvedAt,omitempty" bson:"approvedAt,omitempty"`
	LastContactAt       *primitive.DateTime `json:"lastContactAt,omitempty" bson:"lastContactAt,omitempty"`
	CompletedAt         *primitive.DateTime `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	CancelledAt         *primitive.DateTime `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`
	RevertedAt          *primitive.DateTime `json:"revertedAt,omitempty" bson:"revertedAt,omitempty"`
	InactivityWarnedAt  *primitive.DateTime `json:"inactivityWarnedAt,omitempty" bson:"inactivityWarnedAt,omitempty"`
	UpdatedAt           primitive.DateTime  `json:"updatedAt" bson:"updatedAt"`
}

// sessionTransitions is the set of allowed status edges. Anything not listed
// here is rejected; cancelled has no outgoing edges.
var sessionTransitions = map[string][]string{
	SessionStatusPending:   {SessionStatusActive, SessionStatusCancelled},
	SessionStatusActive:    {SessionStatusCompleted, SessionStatusCancelled},
	SessionStatusCompleted: {SessionStatusActive}, // mentor-initiated revert
	SessionStatusCancelled: {},
}

// InvalidTransitionError reports a disallowed session status change. The
// caller must leave the session untouched when it sees one.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from '%s' to '%s'", e.From, e.To)
}

// ValidateSessionTransition returns nil when from→to is an allowed edge.
func ValidateSessionTransition(from, to string) error {
	for _, allowed := range sessionTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &InvalidTransitionError{From: from, To: to}
}

// SessionStatuses lists every recognized session status.
var SessionStatuses = []string{SessionStatusPending, SessionStatusActive, SessionStatusCompleted, SessionStatusCancelled}

// IsSessionStatus reports whether s is one of the recognized statuses.
func IsSessionStatus(s string) bool {
	for _, known := range SessionStatuses {
		if known == s {
			return true
		}
	}
	return false
}
