package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TimeRange is a wall-clock range within a single day, both bounds in "HH:mm".
// A range is valid iff Start is strictly before End.
type TimeRange struct {
	Start string `json:"start" bson:"start"`
	End   string `json:"end" bson:"end"`
}

// WeeklyAvailability holds a mentor's recurring weekly schedule. The whole
// document is replaced on every update, never patched field by field.
type WeeklyAvailability struct {
	ID                  primitive.ObjectID     `json:"_id" bson:"_id"`
	MentorID            string                 `json:"mentorId" bson:"mentorId"`
	Days                map[string][]TimeRange `json:"days" bson:"days"` // keyed by lowercase day name, e.g. "monday"
	Timezone            string                 `json:"timezone" bson:"timezone"`
	SlotDurationMinutes int                    `json:"slotDurationMinutes" bson:"slotDurationMinutes"`
	CalendarSyncEnabled bool                   `json:"calendarSyncEnabled" bson:"calendarSyncEnabled"`
	CreatedAt           primitive.DateTime     `json:"createdAt" bson:"createdAt"`
	UpdatedAt           primitive.DateTime     `json:"updatedAt" bson:"updatedAt"`
}

// DayNames are the seven allowed keys for WeeklyAvailability.Days.
var DayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// UnavailableDate marks one calendar date as fully unbookable for a mentor,
// overriding the weekly schedule. Keyed by (mentorId, date).
type UnavailableDate struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	MentorID  string             `json:"mentorId" bson:"mentorId"`
	Date      string             `json:"date" bson:"date"` // "YYYY-MM-DD"
	Reason    string             `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
}
