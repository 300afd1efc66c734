package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking statuses. A booking is immutable once confirmed; cancellation is
// the only allowed status change.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking holds one confirmed (or later cancelled) mentor/mentee time slot.
// StartTime/EndTime are absolute instants; no two confirmed bookings for the
// same mentor may overlap.
type Booking struct {
	ID          primitive.ObjectID  `json:"_id" bson:"_id"`
	MentorID    string              `json:"mentorId" bson:"mentorId"`
	MenteeID    string              `json:"menteeId" bson:"menteeId"`
	StartTime   primitive.DateTime  `json:"startTime" bson:"startTime"`
	EndTime     primitive.DateTime  `json:"endTime" bson:"endTime"`
	Status      string              `json:"status" bson:"status"`
	Topic       string              `json:"topic,omitempty" bson:"topic,omitempty"`
	CreatedAt   primitive.DateTime  `json:"createdAt" bson:"createdAt"`
	CancelledAt *primitive.DateTime `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`
}
