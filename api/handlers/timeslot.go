package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/api"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/config"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/databases"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/scheduling"
)

// TimeSlot exported for testing purposes
type TimeSlot struct {
	ADB databases.AvailabilityDatabase
	UDB databases.UnavailableDateDatabase
	BDB databases.BookingDatabase
}

// TimeSlotsHandler derives the free slots for a mentor over a date range.
// Slots are computed on the fly from the weekly schedule, the unavailable-date
// exceptions and the confirmed bookings; nothing is persisted.
func (t TimeSlot) TimeSlotsHandler(w http.ResponseWriter, r *http.Request) {
	mentorID := mux.Vars(r)["mentor_id"]
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")
	if endDate == "" {
		endDate = startDate
	}
	if startDate == "" {
		config.ErrorStatus("startDate query parameter is required", http.StatusBadRequest, w, errMissingStartDate)
		return
	}

	zap.S().Debugf("mentor_id: %v startDate: %v endDate: %v", mentorID, startDate, endDate)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	availability, err := t.ADB.FindByMentorID(ctx, mentorID)
	if err != nil {
		config.ErrorStatus("failed to get availability by mentor ID", http.StatusNotFound, w, err)
		return
	}

	unavailableDates, err := t.UDB.FindByMentorID(ctx, mentorID)
	if err != nil {
		config.ErrorStatus("failed to get unavailable dates", http.StatusInternalServerError, w, err)
		return
	}
	unavailable := make(map[string]bool, len(unavailableDates))
	for _, d := range unavailableDates {
		unavailable[d.Date] = true
	}

	bookings, err := t.BDB.Find(ctx, bson.M{"mentorId": mentorID, "status": models.BookingStatusConfirmed})
	if err != nil {
		config.ErrorStatus("failed to get bookings", http.StatusInternalServerError, w, err)
		return
	}

	slots, err := scheduling.ComputeSlotRange(*availability, unavailable, bookings, startDate, endDate)
	if err != nil {
		config.ErrorStatus("failed to compute time slots", http.StatusBadRequest, w, err)
		return
	}
	if slots == nil {
		slots = map[string][]scheduling.AvailableSlot{}
	}

	response := map[string]interface{}{
		"slots":               slots,
		"timezone":            availability.Timezone,
		"slotDurationMinutes": availability.SlotDurationMinutes,
	}

	b, err := json.Marshal(response)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
