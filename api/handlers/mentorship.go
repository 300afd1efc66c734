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
	templates "github.com/AhsanAyaz/code-with-ahsan-sub003/templates/html"
)

// Mentorship exported for testing purposes
type Mentorship struct {
	DB     databases.SessionDatabase
	UserDB databases.UserDatabase
	Mailer notifications.Mailer
}

type sessionRequest struct {
	MentorID string `json:"mentorId"`
	MenteeID string `json:"menteeId"`
	Message  string `json:"message"`
}

// CreateSessionRequestHandler opens a pending mentorship session. A pair may
// only have one live (pending or active) session at a time.
func (v Mentorship) CreateSessionRequestHandler(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.MentorID == "" || req.MenteeID == "" {
		config.ErrorStatus("mentorId and menteeId are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	count, err := v.DB.CountDocuments(ctx, bson.M{
		"mentorId": req.MentorID,
		"menteeId": req.MenteeID,
		"status":   bson.M{"$in": []string{models.SessionStatusPending, models.SessionStatusActive}},
	})
	if err != nil {
		config.ErrorStatus("failed to check existing sessions", http.StatusInternalServerError, w, err)
		return
	}
	if count > 0 {
		config.ErrorStatus("a live mentorship session already exists for this pair", http.StatusConflict, w, errDuplicateSession)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	session := models.MentorshipSession{
		ID:          primitive.NewObjectID(),
		MentorID:    req.MentorID,
		MenteeID:    req.MenteeID,
		Status:      models.SessionStatusPending,
		Message:     req.Message,
		RequestedAt: now,
		UpdatedAt:   now,
	}
	if _, err := v.DB.InsertOne(ctx, session); err != nil {
		config.ErrorStatus("failed to create mentorship session", http.StatusInternalServerError, w, err)
		return
	}

	go v.notifySessionRequested(session)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(session)
}

// SessionByIDHandler returns a mentorship session by ID
func (v Mentorship) SessionByIDHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	sID, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.FindOne(ctx, bson.M{"_id": sID})
	if err != nil {
		config.ErrorStatus("failed to get mentorship session by ID", http.StatusNotFound, w, err)
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

// SessionsByUserHandler returns sessions where the user is mentor or mentee
func (v Mentorship) SessionsByUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	role := r.URL.Query().Get("role")
	status := r.URL.Query().Get("status")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var filter bson.M
	switch role {
	case "mentor":
		filter = bson.M{"mentorId": userID}
	case "mentee":
		filter = bson.M{"menteeId": userID}
	default:
		filter = bson.M{"$or": []bson.M{{"mentorId": userID}, {"menteeId": userID}}}
	}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.M{"_id": -1})
	dbResp, err := v.DB.Find(ctx, filter, opts)
	if err != nil {
		config.ErrorStatus("failed to get mentorship sessions", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.MentorshipSession{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

type sessionStatusRequest struct {
	Status       string `json:"status"`
	CancelReason string `json:"cancelReason"`
}

// UpdateSessionStatusHandler moves a session through its lifecycle. Every
// change goes through the transition table; a disallowed edge gets a 400 and
// the session is left untouched. The write filters on the status the
// transition was validated against, so two racing changes can never both
// commit: the loser matches nothing and gets a 409.
func (v Mentorship) UpdateSessionStatusHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	sID, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var req sessionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if !models.IsSessionStatus(req.Status) {
		config.ErrorStatus("unknown session status", http.StatusBadRequest, w, fmt.Errorf("unknown session status '%s'", req.Status))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	session, err := v.DB.FindOne(ctx, bson.M{"_id": sID})
	if err != nil {
		config.ErrorStatus("failed to get mentorship session by ID", http.StatusNotFound, w, err)
		return
	}

	if err := models.ValidateSessionTransition(session.Status, req.Status); err != nil {
		config.ErrorStatus("invalid session transition", http.StatusBadRequest, w, err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	set := bson.M{
		"status":    req.Status,
		"updatedAt": now,
	}

	switch req.Status {
	case models.SessionStatusActive:
		if session.Status == models.SessionStatusCompleted {
			// mentor-initiated revert: completedAt stays for the audit trail
			set["revertedAt"] = now
		} else {
			set["approvedAt"] = now
		}
		set["lastContactAt"] = now
	case models.SessionStatusCompleted:
		set["completedAt"] = now
	case models.SessionStatusCancelled:
		set["cancelledAt"] = now
		reason := req.CancelReason
		if reason == "" {
			if session.Status == models.SessionStatusPending {
				reason = models.CancelReasonDeclined
			} else {
				reason = models.CancelReasonWithdrawn
			}
		}
		set["cancelReason"] = reason
	}

	matched, err := v.DB.UpdateOne(ctx, bson.M{"_id": sID, "status": session.Status}, bson.M{"$set": set})
	if err != nil {
		config.ErrorStatus("failed to update mentorship session", http.StatusInternalServerError, w, err)
		return
	}
	if matched == 0 {
		config.ErrorStatus("session status changed, please retry", http.StatusConflict, w, errSessionChanged)
		return
	}

	go v.notifySessionTransition(*session, req.Status)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Session status updated successfully",
		"status":  req.Status,
	})
}

// RecordContactHandler refreshes the inactivity clock on an active session and
// clears any standing inactivity warning.
func (v Mentorship) RecordContactHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	sID, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	session, err := v.DB.FindOne(ctx, bson.M{"_id": sID})
	if err != nil {
		config.ErrorStatus("failed to get mentorship session by ID", http.StatusNotFound, w, err)
		return
	}
	if session.Status != models.SessionStatusActive {
		config.ErrorStatus("mentorship session is not active", http.StatusConflict, w, errSessionNotActive)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	update := bson.M{
		"$set":   bson.M{"lastContactAt": now, "updatedAt": now},
		"$unset": bson.M{"inactivityWarnedAt": ""},
	}
	// the status filter keeps a racing cancellation from being overwritten
	matched, err := v.DB.UpdateOne(ctx, bson.M{"_id": sID, "status": models.SessionStatusActive}, update)
	if err != nil {
		config.ErrorStatus("failed to record contact", http.StatusInternalServerError, w, err)
		return
	}
	if matched == 0 {
		config.ErrorStatus("mentorship session is not active", http.StatusConflict, w, errSessionNotActive)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":       "Contact recorded successfully",
		"lastContactAt": now,
	})
}

func (v Mentorship) notifySessionRequested(session models.MentorshipSession) {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	mentorEmail, mentorName := getUserContact(ctx, v.UserDB, session.MentorID)
	_, menteeName := getUserContact(ctx, v.UserDB, session.MenteeID)
	if mentorEmail == "" {
		return
	}
	subject, html, plain := templates.RenderSessionRequestedEmail(mentorName, menteeName, session.Message)
	if err := v.Mailer.Send(mentorEmail, mentorName, subject, html, plain); err != nil {
		zap.S().Errorw("failed to send session request email", "error", err, "sessionId", session.ID.Hex())
	}
}

func (v Mentorship) notifySessionTransition(session models.MentorshipSession, newStatus string) {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	menteeEmail, menteeName := getUserContact(ctx, v.UserDB, session.MenteeID)
	_, mentorName := getUserContact(ctx, v.UserDB, session.MentorID)
	if menteeEmail == "" {
		return
	}

	var subject, html, plain string
	switch newStatus {
	case models.SessionStatusActive:
		if session.Status == models.SessionStatusCompleted {
			return // reverts are quiet
		}
		subject, html, plain = templates.RenderSessionApprovedEmail(menteeName, mentorName)
	case models.SessionStatusCompleted:
		subject, html, plain = templates.RenderSessionCompletedEmail(menteeName, mentorName)
	case models.SessionStatusCancelled:
		if session.Status != models.SessionStatusPending {
			return // only mentor declines are announced
		}
		subject, html, plain = templates.RenderSessionDeclinedEmail(menteeName, mentorName)
	default:
		return
	}
	if err := v.Mailer.Send(menteeEmail, menteeName, subject, html, plain); err != nil {
		zap.S().Errorw("failed to send session transition email", "error", err, "sessionId", session.ID.Hex())
	}
}
