package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/api"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/config"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/databases"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
)

// Mentor exported for testing purposes
type Mentor struct {
	DB databases.UserDatabase
}

// MentorsHandler returns the mentor directory, optionally filtered by topic
func (v Mentor) MentorsHandler(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("topic")
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || Limit <= 0 {
		Limit = 20
	}
	limit64 := int64(Limit)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	filter := bson.M{"user.isMentor": true}
	if topic != "" {
		filter["user.mentorTopics"] = bson.M{"$regex": topic, "$options": "i"}
	}

	opts := options.Find().
		SetLimit(limit64).
		SetSort(bson.M{"_id": -1})

	dbResp, err := v.DB.Find(ctx, filter, opts)
	if err != nil {
		config.ErrorStatus("failed to get mentors", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.User{}
	}
	for i := range dbResp {
		dbResp[i].Details.Password = ""
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// MentorByIDHandler returns one mentor profile
func (v Mentor) MentorByIDHandler(w http.ResponseWriter, r *http.Request) {
	mentorID := mux.Vars(r)["mentor_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	filter := userFilter(mentorID)
	filter["user.isMentor"] = true
	dbResp, err := v.DB.FindOne(ctx, filter)
	if err != nil {
		config.ErrorStatus("failed to get mentor by ID", http.StatusNotFound, w, err)
		return
	}

	dbResp.Details.Password = ""
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
