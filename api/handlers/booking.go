package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/api"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/config"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/databases"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/notifications"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/scheduling"
	templates "github.com/AhsanAyaz/code-with-ahsan-sub003/templates/html"
)

// Booking exported for testing purposes
type Booking struct {
	DB     databases.BookingDatabase
	ADB    databases.AvailabilityDatabase
	UDB    databases.UnavailableDateDatabase
	UserDB databases.UserDatabase
	Client databases.ClientHelper
	Mailer notifications.Mailer
}

type bookingRequest struct {
	MentorID string `json:"mentorId"`
	MenteeID string `json:"menteeId"`
	Date     string `json:"date"`  // "YYYY-MM-DD" in the mentor's timezone
	Start    string `json:"start"` // "HH:mm" slot start in the mentor's timezone
	Topic    string `json:"topic"`
}

// CreateBookingHandler books a slot for a mentee. The slot set is re-derived
// inside a transaction so two mentees racing for the same slot can never both
// win: the loser's requested slot is gone on re-derivation and they get a 409.
func (v Booking) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.MentorID == "" || req.MenteeID == "" || req.Date == "" || req.Start == "" {
		config.ErrorStatus("mentorId, menteeId, date and start are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}

	zap.S().Debugw("booking requested", "mentorId", req.MentorID, "menteeId", req.MenteeID, "date", req.Date, "start", req.Start)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	result, err := v.Client.WithTransaction(ctx, func(sc context.Context) (interface{}, error) {
		availability, err := v.ADB.FindByMentorID(sc, req.MentorID)
		if err != nil {
			return nil, fmt.Errorf("failed to get availability by mentor ID: %w", err)
		}

		loc, err := time.LoadLocation(availability.Timezone)
		if err != nil {
			return nil, err
		}
		target, err := time.ParseInLocation(scheduling.DateLayout, req.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("date '%s' is not in YYYY-MM-DD format", req.Date)
		}

		unavailableDates, err := v.UDB.FindByMentorID(sc, req.MentorID)
		if err != nil {
			return nil, err
		}
		unavailable := make(map[string]bool, len(unavailableDates))
		for _, d := range unavailableDates {
			unavailable[d.Date] = true
		}

		bookings, err := v.DB.Find(sc, bson.M{"mentorId": req.MentorID, "status": models.BookingStatusConfirmed})
		if err != nil {
			return nil, err
		}

		slots, err := scheduling.ComputeSlots(*availability, unavailable, bookings, target)
		if err != nil {
			return nil, err
		}

		var slot *scheduling.AvailableSlot
		for i := range slots {
			if slots[i].Start.In(loc).Format("15:04") == req.Start {
				slot = &slots[i]
				break
			}
		}
		if slot == nil {
			return nil, errSlotUnavailable
		}

		booking := models.Booking{
			ID:        primitive.NewObjectID(),
			MentorID:  req.MentorID,
			MenteeID:  req.MenteeID,
			StartTime: primitive.NewDateTimeFromTime(slot.Start),
			EndTime:   primitive.NewDateTimeFromTime(slot.End),
			Status:    models.BookingStatusConfirmed,
			Topic:     req.Topic,
			CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
		}
		if _, err := v.DB.InsertOne(sc, booking); err != nil {
			return nil, err
		}
		return booking, nil
	})
	if err == errSlotUnavailable {
		config.ErrorStatus("requested slot is no longer available", http.StatusConflict, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to create booking", http.StatusInternalServerError, w, err)
		return
	}

	booking := result.(models.Booking)
	go v.notifyBookingConfirmed(booking)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(booking)
}

// BookingByIDHandler returns a booking by ID
func (v Booking) BookingByIDHandler(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["booking_id"]

	bID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.FindOne(ctx, bson.M{"_id": bID})
	if err != nil {
		config.ErrorStatus("failed to get booking by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// BookingsByUserHandler returns bookings where the user is mentor or mentee
func (v Booking) BookingsByUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	status := r.URL.Query().Get("status")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	filter := bson.M{
		"$or": []bson.M{
			{"mentorId": userID},
			{"menteeId": userID},
		},
	}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.M{"startTime": 1})
	dbResp, err := v.DB.Find(ctx, filter, opts)
	if err != nil {
		config.ErrorStatus("failed to get bookings", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.Booking{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CancelBookingHandler cancels a confirmed booking. Cancelled bookings keep
// their record and immediately free the slot for re-derivation.
func (v Booking) CancelBookingHandler(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["booking_id"]

	bID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	booking, err := v.DB.FindOne(ctx, bson.M{"_id": bID})
	if err != nil {
		config.ErrorStatus("failed to get booking by ID", http.StatusNotFound, w, err)
		return
	}
	if booking.Status == models.BookingStatusCancelled {
		config.ErrorStatus("booking is already cancelled", http.StatusConflict, w, errBookingCancelled)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	update := bson.M{
		"$set": bson.M{
			"status":      models.BookingStatusCancelled,
			"cancelledAt": now,
		},
	}
	if err := v.DB.UpdateOne(ctx, bson.M{"_id": bID}, update); err != nil {
		config.ErrorStatus("failed to cancel booking", http.StatusInternalServerError, w, err)
		return
	}

	booking.Status = models.BookingStatusCancelled
	booking.CancelledAt = &now
	go v.notifyBookingCancelled(*booking)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Booking cancelled successfully",
	})
}

func (v Booking) notifyBookingConfirmed(booking models.Booking) {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	menteeEmail, menteeName := getUserContact(ctx, v.UserDB, booking.MenteeID)
	_, mentorName := getUserContact(ctx, v.UserDB, booking.MentorID)
	if menteeEmail == "" {
		return
	}
	display, date := v.formatSlotLocal(ctx, booking)
	subject, html, plain := templates.RenderBookingConfirmedEmail(menteeName, mentorName, display, date)
	if err := v.Mailer.Send(menteeEmail, menteeName, subject, html, plain); err != nil {
		zap.S().Errorw("failed to send booking confirmation email", "error", err, "bookingId", booking.ID.Hex())
	}
}

func (v Booking) notifyBookingCancelled(booking models.Booking) {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	display, date := v.formatSlotLocal(ctx, booking)
	mentorEmail, mentorName := getUserContact(ctx, v.UserDB, booking.MentorID)
	menteeEmail, menteeName := getUserContact(ctx, v.UserDB, booking.MenteeID)
	if mentorEmail != "" {
		subject, html, plain := templates.RenderBookingCancelledEmail(mentorName, menteeName, display, date)
		if err := v.Mailer.Send(mentorEmail, mentorName, subject, html, plain); err != nil {
			zap.S().Errorw("failed to send booking cancellation email", "error", err, "bookingId", booking.ID.Hex())
		}
	}
	if menteeEmail != "" {
		subject, html, plain := templates.RenderBookingCancelledEmail(menteeName, mentorName, display, date)
		if err := v.Mailer.Send(menteeEmail, menteeName, subject, html, plain); err != nil {
			zap.S().Errorw("failed to send booking cancellation email", "error", err, "bookingId", booking.ID.Hex())
		}
	}
}

// formatSlotLocal renders a booking's slot and date in the mentor's timezone,
// matching the clock times mentors publish in their weekly schedule. Falls
// back to UTC when the availability or its timezone cannot be resolved.
func (v Booking) formatSlotLocal(ctx context.Context, booking models.Booking) (display, date string) {
	loc := time.UTC
	if availability, err := v.ADB.FindByMentorID(ctx, booking.MentorID); err == nil {
		if l, err := time.LoadLocation(availability.Timezone); err == nil {
			loc = l
		}
	}
	start := booking.StartTime.Time().In(loc)
	end := booking.EndTime.Time().In(loc)
	return start.Format("15:04") + " - " + end.Format("15:04"), start.Format(scheduling.DateLayout)
}

// getUserContact looks up a user's email and display name, returning empty
// strings when the user cannot be found.
func getUserContact(ctx context.Context, db databases.UserDatabase, userID string) (email, name string) {
	user, err := db.FindOne(ctx, userFilter(userID))
	if err != nil || user.Details.Email == "" {
		return "", ""
	}
	name = user.Details.Name
	if name == "" {
		name = user.Details.Username
	}
	return user.Details.Email, name
}
