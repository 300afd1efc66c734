package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/api"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/config"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/databases"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/notifications"
	templates "github.com/AhsanAyaz/code-with-ahsan-sub003/templates/html"
)

// Membership exported for testing purposes
type Membership struct {
	PDB     databases.ProjectDatabase
	MDB     databases.ProjectMemberDatabase
	ADB     databases.ProjectApplicationDatabase
	IDB     databases.ProjectInvitationDatabase
	UserDB  databases.UserDatabase
	Client  databases.ClientHelper
	Chat    notifications.ChatClient
	Mailer  notifications.Mailer
	BaseURL string
}

// ProjectMembersHandler returns the live member records of a project
func (v Membership) ProjectMembersHandler(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["project_id"]

	pID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.MDB.Find(ctx, bson.M{"projectId": pID})
	if err != nil {
		config.ErrorStatus("failed to get project members", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.ProjectMember{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ApplicationsHandler returns the pending applications of a project
func (v Membership) ApplicationsHandler(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["project_id"]

	pID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.ADB.Find(ctx, bson.M{"projectId": pID, "status": models.RequestStatusPending})
	if err != nil {
		config.ErrorStatus("failed to get project applications", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.ProjectApplication{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ApplyHandler files a join application against an active project
func (v Membership) ApplyHandler(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["project_id"]

	pID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var req struct {
		UserID  string `json:"userId"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.UserID == "" {
		config.ErrorStatus("userId is required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	project, err := v.PDB.FindOne(ctx, bson.M{"_id": pID})
	if err != nil {
		config.ErrorStatus("failed to get project by ID", http.StatusNotFound, w, err)
		return
	}
	if project.Status != models.ProjectStatusActive {
		config.ErrorStatus("project is not active", http.StatusConflict, w, errProjectNotActive)
		return
	}

	// (projectId, userId) is a natural key while pending: the duplicate
	// checks and the insert commit together or not at all
	result, err := v.Client.WithTransaction(ctx, func(sc context.Context) (interface{}, error) {
		memberCount, err := v.MDB.CountDocuments(sc, bson.M{"projectId": pID, "userId": req.UserID})
		if err != nil {
			return nil, err
		}
		if memberCount > 0 {
			return nil, errAlreadyMember
		}

		pendingCount, err := v.ADB.CountDocuments(sc, bson.M{"projectId": pID, "userId": req.UserID, "status": models.RequestStatusPending})
		if err != nil {
			return nil, err
		}
		if pendingCount > 0 {
			return nil, errDuplicateRequest
		}

		application := models.ProjectApplication{
			ID:        primitive.NewObjectID(),
			ProjectID: pID,
			UserID:    req.UserID,
			Message:   req.Message,
			Status:    models.RequestStatusPending,
			CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
		}
		if _, err := v.ADB.InsertOne(sc, application); err != nil {
			return nil, err
		}
		return application, nil
	})
	if err != nil {
		v.writeMembershipError(w, "failed to create application", err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result.(models.ProjectApplication))
}

// ApproveApplicationHandler admits an applicant. The capacity check, the
// member insert, the counter bump and the application cleanup all commit in
// one transaction; a full team yields a 409 and no partial writes.
func (v Membership) ApproveApplicationHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	pID, err := primitive.ObjectIDFromHex(vars["project_id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}
	aID, err := primitive.ObjectIDFromHex(vars["application_id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	result, err := v.Client.WithTransaction(ctx, func(sc context.Context) (interface{}, error) {
		application, err := v.ADB.FindOne(sc, bson.M{"_id": aID, "projectId": pID})
		if err != nil {
			return nil, fmt.Errorf("failed to get application: %w", err)
		}
		if application.Status != models.RequestStatusPending {
			return nil, errRequestNotPending
		}

		member, err := v.addMember(sc, pID, application.UserID)
		if err != nil {
			return nil, err
		}

		// approved applications resolve into the member record itself
		if err := v.ADB.DeleteOne(sc, bson.M{"_id": aID}); err != nil {
			return nil, err
		}
		return member, nil
	})
	if err != nil {
		v.writeMembershipError(w, "failed to approve application", err)
		return
	}

	member := result.(models.ProjectMember)
	go v.welcomeMember(member)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(member)
}

// DeclineApplicationHandler marks an application declined
func (v Membership) DeclineApplicationHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	pID, err := primitive.ObjectIDFromHex(vars["project_id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}
	aID, err := primitive.ObjectIDFromHex(vars["application_id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	application, err := v.ADB.FindOne(ctx, bson.M{"_id": aID, "projectId": pID})
	if err != nil {
		config.ErrorStatus("failed to get application", http.StatusNotFound, w, err)
		return
	}
	if application.Status != models.RequestStatusPending {
		config.ErrorStatus("request is no longer pending", http.StatusConflict, w, errRequestNotPending)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	update := bson.M{"$set": bson.M{"status": models.RequestStatusDeclined, "resolvedAt": now}}
	if err := v.ADB.UpdateOne(ctx, bson.M{"_id": aID}, update); err != nil {
		config.ErrorStatus("failed to decline application", http.StatusInternalServerError, w, err)
		return
	}

	go v.notifyApplicationDeclined(*application)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Application declined",
	})
}

// InviteHandler lets a project owner invite a user directly
func (v Membership) InviteHandler(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["project_id"]

	pID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var req struct {
		UserID    string `json:"userId"`
		InvitedBy string `json:"invitedBy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.UserID == "" || req.InvitedBy == "" {
		config.ErrorStatus("userId and invitedBy are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	project, err := v.PDB.FindOne(ctx, bson.M{"_id": pID})
	if err != nil {
		config.ErrorStatus("failed to get project by ID", http.StatusNotFound, w, err)
		return
	}
	if project.Status != models.ProjectStatusActive {
		config.ErrorStatus("project is not active", http.StatusConflict, w, errProjectNotActive)
		return
	}

	inviter, err := v.MDB.FindOne(ctx, bson.M{"projectId": pID, "userId": req.InvitedBy})
	if err != nil || inviter.Role != models.MemberRoleOwner {
		config.ErrorStatus("only the project owner may do this", http.StatusForbidden, w, errNotOwner)
		return
	}

	result, err := v.Client.WithTransaction(ctx, func(sc context.Context) (interface{}, error) {
		memberCount, err := v.MDB.CountDocuments(sc, bson.M{"projectId": pID, "userId": req.UserID})
		if err != nil {
			return nil, err
		}
		if memberCount > 0 {
			return nil, errAlreadyMember
		}

		pendingCount, err := v.IDB.CountDocuments(sc, bson.M{"projectId": pID, "userId": req.UserID, "status": models.RequestStatusPending})
		if err != nil {
			return nil, err
		}
		if pendingCount > 0 {
			return nil, errDuplicateRequest
		}

		invitation := models.ProjectInvitation{
			ID:        primitive.NewObjectID(),
			ProjectID: pID,
			UserID:    req.UserID,
			InvitedBy: req.InvitedBy,
			Token:     uuid.New().String(),
			Status:    models.RequestStatusPending,
			CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
		}
		if _, err := v.IDB.InsertOne(sc, invitation); err != nil {
			return nil, err
		}
		return invitation, nil
	})
	if err != nil {
		v.writeMembershipError(w, "failed to create invitation", err)
		return
	}

	invitation := result.(models.ProjectInvitation)
	go v.deliverInvitation(invitation, *project)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(invitation)
}

// AcceptInvitationHandler redeems an invitation token and joins the team,
// subject to the same transactional capacity check as application approval.
func (v Membership) AcceptInvitationHandler(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	result, err := v.Client.WithTransaction(ctx, func(sc context.Context) (interface{}, error) {
		invitation, err := v.IDB.FindOne(sc, bson.M{"token": token})
		if err != nil {
			return nil, fmt.Errorf("failed to get invitation: %w", err)
		}
		if invitation.Status != models.RequestStatusPending {
			return nil, errRequestNotPending
		}

		member, err := v.addMember(sc, invitation.ProjectID, invitation.UserID)
		if err != nil {
			return nil, err
		}

		if err := v.IDB.DeleteOne(sc, bson.M{"_id": invitation.ID}); err != nil {
			return nil, err
		}
		return member, nil
	})
	if err != nil {
		v.writeMembershipError(w, "failed to accept invitation", err)
		return
	}

	member := result.(models.ProjectMember)
	go v.welcomeMember(member)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(member)
}

// DeclineInvitationHandler marks an invitation declined
func (v Membership) DeclineInvitationHandler(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	invitation, err := v.IDB.FindOne(ctx, bson.M{"token": token})
	if err != nil {
		config.ErrorStatus("failed to get invitation", http.StatusNotFound, w, err)
		return
	}
	if invitation.Status != models.RequestStatusPending {
		config.ErrorStatus("request is no longer pending", http.StatusConflict, w, errRequestNotPending)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	update := bson.M{"$set": bson.M{"status": models.RequestStatusDeclined, "resolvedAt": now}}
	if err := v.IDB.UpdateOne(ctx, bson.M{"_id": invitation.ID}, update); err != nil {
		config.ErrorStatus("failed to decline invitation", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Invitation declined",
	})
}

// RemoveMemberHandler removes a member (or lets them leave). The owner record
// is immovable until ownership is transferred.
func (v Membership) RemoveMemberHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["user_id"]

	pID, err := primitive.ObjectIDFromHex(vars["project_id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	result, err := v.Client.WithTransaction(ctx, func(sc context.Context) (interface{}, error) {
		member, err := v.MDB.FindOne(sc, bson.M{"projectId": pID, "userId": userID})
		if err != nil {
			return nil, errNotMember
		}
		if member.Role == models.MemberRoleOwner {
			return nil, errOwnerCannotLeave
		}

		if err := v.MDB.DeleteOne(sc, bson.M{"_id": member.ID}); err != nil {
			return nil, err
		}
		now := primitive.NewDateTimeFromTime(time.Now())
		update := bson.M{
			"$inc": bson.M{"memberCount": -1},
			"$set": bson.M{"updatedAt": now},
		}
		if err := v.PDB.UpdateOne(sc, bson.M{"_id": pID}, update); err != nil {
			return nil, err
		}
		return member, nil
	})
	if err != nil {
		v.writeMembershipError(w, "failed to remove member", err)
		return
	}

	member := result.(*models.ProjectMember)
	go v.removeFromChannel(pID, member.UserID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Member removed successfully",
	})
}

// TransferOwnershipHandler atomically swaps the owner role to another live
// member. The target must already be on the team; there is never a moment
// with zero or two owners.
func (v Membership) TransferOwnershipHandler(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["project_id"]

	pID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var req struct {
		FromUserID string `json:"fromUserId"`
		ToUserID   string `json:"toUserId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.FromUserID == "" || req.ToUserID == "" {
		config.ErrorStatus("fromUserId and toUserId are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}
	if req.FromUserID == req.ToUserID {
		config.ErrorStatus("cannot transfer ownership to the current owner", http.StatusConflict, w, errSelfTransfer)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	_, err = v.Client.WithTransaction(ctx, func(sc context.Context) (interface{}, error) {
		from, err := v.MDB.FindOne(sc, bson.M{"projectId": pID, "userId": req.FromUserID})
		if err != nil {
			return nil, errNotMember
		}
		if from.Role != models.MemberRoleOwner {
			return nil, errNotOwner
		}
		to, err := v.MDB.FindOne(sc, bson.M{"projectId": pID, "userId": req.ToUserID})
		if err != nil {
			return nil, errNotMember
		}

		if err := v.MDB.UpdateOne(sc, bson.M{"_id": from.ID}, bson.M{"$set": bson.M{"role": models.MemberRoleMember}}); err != nil {
			return nil, err
		}
		if err := v.MDB.UpdateOne(sc, bson.M{"_id": to.ID}, bson.M{"$set": bson.M{"role": models.MemberRoleOwner}}); err != nil {
			return nil, err
		}
		now := primitive.NewDateTimeFromTime(time.Now())
		if err := v.PDB.UpdateOne(sc, bson.M{"_id": pID}, bson.M{"$set": bson.M{"creatorId": req.ToUserID, "updatedAt": now}}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		v.writeMembershipError(w, "failed to transfer ownership", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Ownership transferred successfully",
	})
}

// addMember performs the guarded membership write. Must run inside a
// transaction: the capacity check and the writes have to commit together.
func (v Membership) addMember(ctx context.Context, projectID primitive.ObjectID, userID string) (models.ProjectMember, error) {
	var member models.ProjectMember

	project, err := v.PDB.FindOne(ctx, bson.M{"_id": projectID})
	if err != nil {
		return member, fmt.Errorf("failed to get project: %w", err)
	}
	if project.Status != models.ProjectStatusActive {
		return member, errProjectNotActive
	}
	if project.MemberCount >= project.MaxTeamSize {
		return member, errCapacityExceeded
	}

	existing, err := v.MDB.CountDocuments(ctx, bson.M{"projectId": projectID, "userId": userID})
	if err != nil {
		return member, err
	}
	if existing > 0 {
		return member, errAlreadyMember
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	member = models.ProjectMember{
		ID:        primitive.NewObjectID(),
		ProjectID: projectID,
		UserID:    userID,
		Role:      models.MemberRoleMember,
		JoinedAt:  now,
	}
	if _, err := v.MDB.InsertOne(ctx, member); err != nil {
		return member, err
	}
	update := bson.M{
		"$inc": bson.M{"memberCount": 1},
		"$set": bson.M{"updatedAt": now},
	}
	if err := v.PDB.UpdateOne(ctx, bson.M{"_id": projectID}, update); err != nil {
		return member, err
	}

	// sweep any other pending requests from the same user for this project
	staleFilter := bson.M{"projectId": projectID, "userId": userID, "status": models.RequestStatusPending}
	if err := v.ADB.DeleteMany(ctx, staleFilter); err != nil {
		return member, err
	}
	if err := v.IDB.DeleteMany(ctx, staleFilter); err != nil {
		return member, err
	}
	return member, nil
}

// writeMembershipError maps membership sentinels onto HTTP statuses
func (v Membership) writeMembershipError(w http.ResponseWriter, message string, err error) {
	switch err {
	case errCapacityExceeded:
		config.ErrorStatus("project team is at capacity", http.StatusConflict, w, err)
	case errAlreadyMember:
		config.ErrorStatus("user is already a member of this project", http.StatusConflict, w, err)
	case errDuplicateRequest:
		config.ErrorStatus("a pending request already exists for this pair", http.StatusConflict, w, err)
	case errProjectNotActive, errRequestNotPending, errOwnerCannotLeave, errSelfTransfer:
		config.ErrorStatus(message, http.StatusConflict, w, err)
	case errNotMember:
		config.ErrorStatus(message, http.StatusNotFound, w, err)
	case errNotOwner:
		config.ErrorStatus(message, http.StatusForbidden, w, err)
	default:
		config.ErrorStatus(message, http.StatusInternalServerError, w, err)
	}
}

// welcomeMember adds the new member to the team channel and emails them
func (v Membership) welcomeMember(member models.ProjectMember) {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	project, err := v.PDB.FindOne(ctx, bson.M{"_id": member.ProjectID})
	if err != nil {
		zap.S().Errorw("failed to get project for welcome", "error", err, "projectId", member.ProjectID.Hex())
		return
	}

	user, err := v.UserDB.FindOne(ctx, userFilter(member.UserID))
	if err == nil && project.ChatChannelID != "" && user.Details.ChatHandle != "" {
		if err := v.Chat.AddMember(ctx, project.ChatChannelID, user.Details.ChatHandle); err != nil {
			zap.S().Errorw("failed to add member to chat channel", "error", err, "projectId", member.ProjectID.Hex(), "userId", member.UserID)
		}
	}

	email, name := getUserContact(ctx, v.UserDB, member.UserID)
	if email == "" {
		return
	}
	subject, html, plain := templates.RenderApplicationApprovedEmail(name, project.Title)
	if err := v.Mailer.Send(email, name, subject, html, plain); err != nil {
		zap.S().Errorw("failed to send welcome email", "error", err, "projectId", member.ProjectID.Hex(), "userId", member.UserID)
	}
}

func (v Membership) notifyApplicationDeclined(application models.ProjectApplication) {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	project, err := v.PDB.FindOne(ctx, bson.M{"_id": application.ProjectID})
	if err != nil {
		zap.S().Errorw("failed to get project for decline email", "error", err, "projectId", application.ProjectID.Hex())
		return
	}
	email, name := getUserContact(ctx, v.UserDB, application.UserID)
	if email == "" {
		return
	}
	subject, html, plain := templates.RenderApplicationDeclinedEmail(name, project.Title)
	if err := v.Mailer.Send(email, name, subject, html, plain); err != nil {
		zap.S().Errorw("failed to send application decline email", "error", err, "applicationId", application.ID.Hex())
	}
}

// deliverInvitation emails the invitee and DMs them the accept link
func (v Membership) deliverInvitation(invitation models.ProjectInvitation, project models.Project) {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	acceptURL := v.BaseURL + "/invitations/" + invitation.Token
	_, inviterName := getUserContact(ctx, v.UserDB, invitation.InvitedBy)

	email, name := getUserContact(ctx, v.UserDB, invitation.UserID)
	if email != "" {
		subject, html, plain := templates.RenderInvitationEmail(name, inviterName, project.Title, acceptURL)
		if err := v.Mailer.Send(email, name, subject, html, plain); err != nil {
			zap.S().Errorw("failed to send invitation email", "error", err, "invitationId", invitation.ID.Hex())
		}
	}

	user, err := v.UserDB.FindOne(ctx, userFilter(invitation.UserID))
	if err == nil && user.Details.ChatHandle != "" {
		text := fmt.Sprintf("%s invited you to join \"%s\": %s", inviterName, project.Title, acceptURL)
		if err := v.Chat.DirectMessage(ctx, user.Details.ChatHandle, text); err != nil {
			zap.S().Errorw("failed to send invitation DM", "error", err, "invitationId", invitation.ID.Hex())
		}
	}
}

// removeFromChannel pulls a removed member out of the team chat channel
func (v Membership) removeFromChannel(projectID primitive.ObjectID, userID string) {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	project, err := v.PDB.FindOne(ctx, bson.M{"_id": projectID})
	if err != nil || project.ChatChannelID == "" {
		return
	}
	user, err := v.UserDB.FindOne(ctx, userFilter(userID))
	if err != nil || user.Details.ChatHandle == "" {
		return
	}
	if err := v.Chat.RemoveMember(ctx, project.ChatChannelID, user.Details.ChatHandle); err != nil {
		zap.S().Errorw("failed to remove member from chat channel", "error", err, "projectId", projectID.Hex(), "userId", userID)
	}
}
