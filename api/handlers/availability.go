package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/api"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/config"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/databases"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/scheduling"
)

// Availability exported for testing purposes
type Availability struct {
	DB  databases.AvailabilityDatabase
	UDB databases.UnavailableDateDatabase
	// CalendarSyncEnabled is a deployment capability flag (CAL_SYNC_ENABLED),
	// surfaced on the availability payload, never stored per mentor
	CalendarSyncEnabled bool
}

// GetAvailabilityHandler returns a mentor's weekly availability
func (a Availability) GetAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	mentorID := mux.Vars(r)["mentor_id"]

	zap.S().Debugf("mentor_id: %v", mentorID)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := a.DB.FindByMentorID(ctx, mentorID)
	if err != nil {
		config.ErrorStatus("failed to get availability by mentor ID", http.StatusNotFound, w, err)
		return
	}
	dbResp.CalendarSyncEnabled = a.CalendarSyncEnabled

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// PutAvailabilityHandler replaces a mentor's whole weekly schedule. Partial
// updates are not supported; the document is swapped atomically.
func (a Availability) PutAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	mentorID := mux.Vars(r)["mentor_id"]

	var availability models.WeeklyAvailability
	if err := json.NewDecoder(r.Body).Decode(&availability); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	availability.MentorID = mentorID

	if err := scheduling.ValidateWeeklyAvailability(availability); err != nil {
		config.ErrorStatus("invalid availability", http.StatusBadRequest, w, err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	if availability.ID.IsZero() {
		availability.ID = primitive.NewObjectID()
		availability.CreatedAt = now
	}
	availability.UpdatedAt = now

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := a.DB.Replace(ctx, availability); err != nil {
		config.ErrorStatus("failed to update availability", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(availability)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// GetUnavailableDatesHandler returns a mentor's unavailable-date exceptions
func (a Availability) GetUnavailableDatesHandler(w http.ResponseWriter, r *http.Request) {
	mentorID := mux.Vars(r)["mentor_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := a.UDB.FindByMentorID(ctx, mentorID)
	if err != nil {
		config.ErrorStatus("failed to get unavailable dates", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.UnavailableDate{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// PutUnavailableDatesHandler replaces a mentor's unavailable-date set
func (a Availability) PutUnavailableDatesHandler(w http.ResponseWriter, r *http.Request) {
	mentorID := mux.Vars(r)["mentor_id"]

	var dates []models.UnavailableDate
	if err := json.NewDecoder(r.Body).Decode(&dates); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	for i := range dates {
		if _, err := time.Parse(scheduling.DateLayout, dates[i].Date); err != nil {
			config.ErrorStatus("invalid unavailable date", http.StatusBadRequest, w, fmt.Errorf("date '%s' is not in YYYY-MM-DD format", dates[i].Date))
			return
		}
		dates[i].MentorID = mentorID
		if dates[i].ID.IsZero() {
			dates[i].ID = primitive.NewObjectID()
			dates[i].CreatedAt = now
		}
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := a.UDB.ReplaceForMentor(ctx, mentorID, dates); err != nil {
		config.ErrorStatus("failed to update unavailable dates", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(dates)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
