package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
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

// Project exported for testing purposes
type Project struct {
	DB     databases.ProjectDatabase
	MDB    databases.ProjectMemberDatabase
	UserDB databases.UserDatabase
	Client databases.ClientHelper
	Chat   notifications.ChatClient
	Mailer notifications.Mailer
}

type projectRequest struct {
	CreatorID   string   `json:"creatorId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	MaxTeamSize int      `json:"maxTeamSize"`
}

// CreateProjectHandler submits a new project for moderation. The creator's
// owner membership is written in the same transaction as the project itself,
// so memberCount starts at 1 and never drifts from the member records.
func (v Project) CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.CreatorID == "" || req.Title == "" {
		config.ErrorStatus("creatorId and title are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}
	if req.MaxTeamSize < 1 {
		config.ErrorStatus("maxTeamSize must be at least 1", http.StatusBadRequest, w, fmt.Errorf("maxTeamSize %d is below the minimum of 1", req.MaxTeamSize))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	now := primitive.NewDateTimeFromTime(time.Now())
	project := models.Project{
		ID:          primitive.NewObjectID(),
		CreatorID:   req.CreatorID,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Status:      models.ProjectStatusPendingApproval,
		MaxTeamSize: req.MaxTeamSize,
		MemberCount: 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	owner := models.ProjectMember{
		ID:        primitive.NewObjectID(),
		ProjectID: project.ID,
		UserID:    req.CreatorID,
		Role:      models.MemberRoleOwner,
		JoinedAt:  now,
	}

	_, err := v.Client.WithTransaction(ctx, func(sc context.Context) (interface{}, error) {
		if _, err := v.DB.InsertOne(sc, project); err != nil {
			return nil, err
		}
		if _, err := v.MDB.InsertOne(sc, owner); err != nil {
			return nil, err
		}
		return project, nil
	})
	if err != nil {
		config.ErrorStatus("failed to create project", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(project)
}

// ProjectsHandler lists projects, optionally filtered by status or tag
func (v Project) ProjectsHandler(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	tag := r.URL.Query().Get("tag")
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || Limit <= 0 {
		Limit = 20
	}
	limit64 := int64(Limit)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	} else {
		filter["status"] = models.ProjectStatusActive
	}
	if tag != "" {
		filter["tags"] = tag
	}

	opts := options.Find().
		SetLimit(limit64).
		SetSort(bson.M{"_id": -1})

	dbResp, err := v.DB.Find(ctx, filter, opts)
	if err != nil {
		config.ErrorStatus("failed to get projects", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.Project{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ProjectByIDHandler returns a project by ID
func (v Project) ProjectByIDHandler(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["project_id"]

	pID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.FindOne(ctx, bson.M{"_id": pID})
	if err != nil {
		config.ErrorStatus("failed to get project by ID", http.StatusNotFound, w, err)
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

// ApproveProjectHandler moves a pending project live. The chat channel is
// created after the status commit; a chat failure never rolls the approval
// back, it only gets logged.
func (v Project) ApproveProjectHandler(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["project_id"]

	pID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	project, err := v.DB.FindOne(ctx, bson.M{"_id": pID})
	if err != nil {
		config.ErrorStatus("failed to get project by ID", http.StatusNotFound, w, err)
		return
	}
	if err := models.ValidateProjectTransition(project.Status, models.ProjectStatusActive); err != nil {
		config.ErrorStatus("invalid project transition", http.StatusBadRequest, w, err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	update := bson.M{
		"$set": bson.M{
			"status":     models.ProjectStatusActive,
			"approvedAt": now,
			"updatedAt":  now,
		},
	}
	if err := v.DB.UpdateOne(ctx, bson.M{"_id": pID}, update); err != nil {
		config.ErrorStatus("failed to approve project", http.StatusInternalServerError, w, err)
		return
	}

	go v.setupProjectChannel(*project)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Project approved successfully",
		"status":  models.ProjectStatusActive,
	})
}

// DeclineProjectHandler declines a pending project with a moderator reason
func (v Project) DeclineProjectHandler(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["project_id"]

	pID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	project, err := v.DB.FindOne(ctx, bson.M{"_id": pID})
	if err != nil {
		config.ErrorStatus("failed to get project by ID", http.StatusNotFound, w, err)
		return
	}
	if err := models.ValidateProjectTransition(project.Status, models.ProjectStatusDeclined); err != nil {
		config.ErrorStatus("invalid project transition", http.StatusBadRequest, w, err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	update := bson.M{
		"$set": bson.M{
			"status":        models.ProjectStatusDeclined,
			"declineReason": req.Reason,
			"declinedAt":    now,
			"updatedAt":     now,
		},
	}
	if err := v.DB.UpdateOne(ctx, bson.M{"_id": pID}, update); err != nil {
		config.ErrorStatus("failed to decline project", http.StatusInternalServerError, w, err)
		return
	}

	go v.notifyProjectDeclined(*project, req.Reason)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Project declined",
		"status":  models.ProjectStatusDeclined,
	})
}

// CompleteProjectHandler closes out an active project and archives its channel
func (v Project) CompleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["project_id"]

	pID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	project, err := v.DB.FindOne(ctx, bson.M{"_id": pID})
	if err != nil {
		config.ErrorStatus("failed to get project by ID", http.StatusNotFound, w, err)
		return
	}
	if err := models.ValidateProjectTransition(project.Status, models.ProjectStatusCompleted); err != nil {
		config.ErrorStatus("invalid project transition", http.StatusBadRequest, w, err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	update := bson.M{
		"$set": bson.M{
			"status":      models.ProjectStatusCompleted,
			"completedAt": now,
			"updatedAt":   now,
		},
	}
	if err := v.DB.UpdateOne(ctx, bson.M{"_id": pID}, update); err != nil {
		config.ErrorStatus("failed to complete project", http.StatusInternalServerError, w, err)
		return
	}

	go v.teardownProjectChannel(*project)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Project completed successfully",
		"status":  models.ProjectStatusCompleted,
	})
}

// setupProjectChannel creates the team chat channel, stores its ID and tells
// the creator their project is live.
func (v Project) setupProjectChannel(project models.Project) {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	channelID, err := v.Chat.CreateChannel(ctx, project.Title)
	if err != nil {
		zap.S().Errorw("failed to create project chat channel", "error", err, "projectId", project.ID.Hex())
	} else if channelID != "" {
		if err := v.DB.UpdateOne(ctx, bson.M{"_id": project.ID}, bson.M{"$set": bson.M{"chatChannelId": channelID}}); err != nil {
			zap.S().Errorw("failed to store chat channel ID", "error", err, "projectId", project.ID.Hex())
		}
		creator, err := v.UserDB.FindOne(ctx, userFilter(project.CreatorID))
		if err == nil && creator.Details.ChatHandle != "" {
			if err := v.Chat.AddMember(ctx, channelID, creator.Details.ChatHandle); err != nil {
				zap.S().Errorw("failed to add creator to chat channel", "error", err, "projectId", project.ID.Hex())
			}
		}
	}

	creatorEmail, creatorName := getUserContact(ctx, v.UserDB, project.CreatorID)
	if creatorEmail == "" {
		return
	}
	subject, html, plain := templates.RenderProjectApprovedEmail(creatorName, project.Title)
	if err := v.Mailer.Send(creatorEmail, creatorName, subject, html, plain); err != nil {
		zap.S().Errorw("failed to send project approval email", "error", err, "projectId", project.ID.Hex())
	}
}

func (v Project) notifyProjectDeclined(project models.Project, reason string) {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	creatorEmail, creatorName := getUserContact(ctx, v.UserDB, project.CreatorID)
	if creatorEmail == "" {
		return
	}
	subject, html, plain := templates.RenderProjectDeclinedEmail(creatorName, project.Title, reason)
	if err := v.Mailer.Send(creatorEmail, creatorName, subject, html, plain); err != nil {
		zap.S().Errorw("failed to send project decline email", "error", err, "projectId", project.ID.Hex())
	}
}

// teardownProjectChannel archives the chat channel and mails every member
func (v Project) teardownProjectChannel(project models.Project) {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	if project.ChatChannelID != "" {
		if err := v.Chat.ArchiveChannel(ctx, project.ChatChannelID); err != nil {
			zap.S().Errorw("failed to archive project chat channel", "error", err, "projectId", project.ID.Hex())
		}
	}

	members, err := v.MDB.Find(ctx, bson.M{"projectId": project.ID})
	if err != nil {
		zap.S().Errorw("failed to list project members for completion emails", "error", err, "projectId", project.ID.Hex())
		return
	}
	for _, member := range members {
		email, name := getUserContact(ctx, v.UserDB, member.UserID)
		if email == "" {
			continue
		}
		subject, html, plain := templates.RenderProjectCompletedEmail(name, project.Title)
		if err := v.Mailer.Send(email, name, subject, html, plain); err != nil {
			zap.S().Errorw("failed to send project completion email", "error", err, "projectId", project.ID.Hex(), "userId", member.UserID)
		}
	}
}

// userFilter builds an _id filter accepting both hex object IDs and plain
// string IDs.
func userFilter(userID string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(userID); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": userID}
}
