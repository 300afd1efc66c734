package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/api/handlers"
	mocksdb "github.com/AhsanAyaz/code-with-ahsan-sub003/databases/mocks"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/notifications"
)

func projectFixture(status string, memberCount, maxTeamSize int) *models.Project {
	now := primitive.NewDateTimeFromTime(time.Now())
	return &models.Project{
		ID:          primitive.NewObjectID(),
		CreatorID:   "owner-1",
		Title:       "realtime chess",
		Status:      status,
		MaxTeamSize: maxTeamSize,
		MemberCount: memberCount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func applicationFixture(projectID primitive.ObjectID) *models.ProjectApplication {
	return &models.ProjectApplication{
		ID:        primitive.NewObjectID(),
		ProjectID: projectID,
		UserID:    "applicant-1",
		Status:    models.RequestStatusPending,
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
	}
}

func TestMembership_ApproveApplicationHandler(t *testing.T) {
	project := projectFixture(models.ProjectStatusActive, 2, 4)
	application := applicationFixture(project.ID)

	req, err := http.NewRequest("POST", "/api/v1/projects/"+project.ID.Hex()+"/applications/"+application.ID.Hex()+"/approve", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{
		"project_id":     project.ID.Hex(),
		"application_id": application.ID.Hex(),
	})

	pdb := &mocksdb.ProjectDatabase{}
	mdb := &mocksdb.ProjectMemberDatabase{}
	adb := &mocksdb.ProjectApplicationDatabase{}
	idb := &mocksdb.ProjectInvitationDatabase{}

	adb.On("FindOne", mock.Anything, mock.Anything).Return(application, nil)
	pdb.On("FindOne", mock.Anything, mock.Anything).Return(project, nil)
	mdb.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), nil)

	var inserted models.ProjectMember
	mdb.On("InsertOne", mock.Anything, mock.AnythingOfType("models.ProjectMember")).
		Return(primitive.NewObjectID(), nil).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(models.ProjectMember)
		})
	pdb.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	adb.On("DeleteMany", mock.Anything, mock.Anything).Return(nil)
	idb.On("DeleteMany", mock.Anything, mock.Anything).Return(nil)
	adb.On("DeleteOne", mock.Anything, mock.Anything).Return(nil)

	mb := handlers.Membership{
		PDB:    pdb,
		MDB:    mdb,
		ADB:    adb,
		IDB:    idb,
		UserDB: quietUserDB(),
		Client: passthroughClient(),
		Chat:   notifications.NewChatClient("", ""),
		Mailer: notifications.NewMailer(""),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(mb.ApproveApplicationHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "applicant-1", inserted.UserID)
	assert.Equal(t, models.MemberRoleMember, inserted.Role)
	adb.AssertCalled(t, "DeleteOne", mock.Anything, mock.Anything)
}

func TestMembership_ApproveApplicationHandlerCapacityExceeded(t *testing.T) {
	project := projectFixture(models.ProjectStatusActive, 4, 4)
	application := applicationFixture(project.ID)

	req, err := http.NewRequest("POST", "/api/v1/projects/"+project.ID.Hex()+"/applications/"+application.ID.Hex()+"/approve", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{
		"project_id":     project.ID.Hex(),
		"application_id": application.ID.Hex(),
	})

	pdb := &mocksdb.ProjectDatabase{}
	mdb := &mocksdb.ProjectMemberDatabase{}
	adb := &mocksdb.ProjectApplicationDatabase{}

	adb.On("FindOne", mock.Anything, mock.Anything).Return(application, nil)
	pdb.On("FindOne", mock.Anything, mock.Anything).Return(project, nil)

	mb := handlers.Membership{
		PDB:    pdb,
		MDB:    mdb,
		ADB:    adb,
		IDB:    &mocksdb.ProjectInvitationDatabase{},
		Client: passthroughClient(),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(mb.ApproveApplicationHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "at capacity")
	mdb.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
	pdb.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestMembership_ApplyHandlerInactiveProject(t *testing.T) {
	project := projectFixture(models.ProjectStatusPendingApproval, 1, 4)
	body := `{"userId":"applicant-1","message":"let me in"}`
	req, err := http.NewRequest("POST", "/api/v1/projects/"+project.ID.Hex()+"/applications", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"project_id": project.ID.Hex()})

	pdb := &mocksdb.ProjectDatabase{}
	pdb.On("FindOne", mock.Anything, mock.Anything).Return(project, nil)

	mb := handlers.Membership{PDB: pdb, ADB: &mocksdb.ProjectApplicationDatabase{}, MDB: &mocksdb.ProjectMemberDatabase{}}

	rr := httptest.NewRecorder()
	http.HandlerFunc(mb.ApplyHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestMembership_ApplyHandlerDuplicatePending(t *testing.T) {
	project := projectFixture(models.ProjectStatusActive, 1, 4)
	body := `{"userId":"applicant-1"}`
	req, err := http.NewRequest("POST", "/api/v1/projects/"+project.ID.Hex()+"/applications", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"project_id": project.ID.Hex()})

	pdb := &mocksdb.ProjectDatabase{}
	mdb := &mocksdb.ProjectMemberDatabase{}
	adb := &mocksdb.ProjectApplicationDatabase{}

	pdb.On("FindOne", mock.Anything, mock.Anything).Return(project, nil)
	mdb.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), nil)
	adb.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(1), nil)

	mb := handlers.Membership{PDB: pdb, MDB: mdb, ADB: adb, Client: passthroughClient()}

	rr := httptest.NewRecorder()
	http.HandlerFunc(mb.ApplyHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "pending request already exists")
	adb.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestMembership_ApplyHandlerChecksAndInsertShareTransaction(t *testing.T) {
	project := projectFixture(models.ProjectStatusActive, 1, 4)
	body := `{"userId":"applicant-1","message":"let me in"}`
	req, err := http.NewRequest("POST", "/api/v1/projects/"+project.ID.Hex()+"/applications", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"project_id": project.ID.Hex()})

	pdb := &mocksdb.ProjectDatabase{}
	mdb := &mocksdb.ProjectMemberDatabase{}
	adb := &mocksdb.ProjectApplicationDatabase{}

	pdb.On("FindOne", mock.Anything, mock.Anything).Return(project, nil)
	mdb.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), nil)
	adb.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), nil)

	var inserted models.ProjectApplication
	adb.On("InsertOne", mock.Anything, mock.AnythingOfType("models.ProjectApplication")).
		Return(primitive.NewObjectID(), nil).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(models.ProjectApplication)
		})

	client := passthroughClient()
	mb := handlers.Membership{PDB: pdb, MDB: mdb, ADB: adb, Client: client}

	rr := httptest.NewRecorder()
	http.HandlerFunc(mb.ApplyHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "applicant-1", inserted.UserID)
	assert.Equal(t, models.RequestStatusPending, inserted.Status)
	// the duplicate checks and the insert ride the same transaction, so a
	// racing second application cannot slip in between them
	client.AssertCalled(t, "WithTransaction", mock.Anything, mock.Anything)
}

func TestMembership_InviteHandlerDuplicatePending(t *testing.T) {
	project := projectFixture(models.ProjectStatusActive, 1, 4)
	body := `{"userId":"invitee-1","invitedBy":"owner-1"}`
	req, err := http.NewRequest("POST", "/api/v1/projects/"+project.ID.Hex()+"/invitations", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"project_id": project.ID.Hex()})

	owner := &models.ProjectMember{
		ID:        primitive.NewObjectID(),
		ProjectID: project.ID,
		UserID:    "owner-1",
		Role:      models.MemberRoleOwner,
	}

	pdb := &mocksdb.ProjectDatabase{}
	mdb := &mocksdb.ProjectMemberDatabase{}
	idb := &mocksdb.ProjectInvitationDatabase{}

	pdb.On("FindOne", mock.Anything, mock.Anything).Return(project, nil)
	mdb.On("FindOne", mock.Anything, mock.Anything).Return(owner, nil)
	mdb.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), nil)
	idb.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(1), nil)

	mb := handlers.Membership{PDB: pdb, MDB: mdb, IDB: idb, Client: passthroughClient()}

	rr := httptest.NewRecorder()
	http.HandlerFunc(mb.InviteHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "pending request already exists")
	idb.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestMembership_RemoveMemberHandlerOwnerCannotLeave(t *testing.T) {
	project := projectFixture(models.ProjectStatusActive, 2, 4)
	req, err := http.NewRequest("DELETE", "/api/v1/projects/"+project.ID.Hex()+"/members/owner-1", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"project_id": project.ID.Hex(), "user_id": "owner-1"})

	owner := &models.ProjectMember{
		ID:        primitive.NewObjectID(),
		ProjectID: project.ID,
		UserID:    "owner-1",
		Role:      models.MemberRoleOwner,
	}

	mdb := &mocksdb.ProjectMemberDatabase{}
	mdb.On("FindOne", mock.Anything, mock.Anything).Return(owner, nil)

	mb := handlers.Membership{PDB: &mocksdb.ProjectDatabase{}, MDB: mdb, Client: passthroughClient()}

	rr := httptest.NewRecorder()
	http.HandlerFunc(mb.RemoveMemberHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	mdb.AssertNotCalled(t, "DeleteOne", mock.Anything, mock.Anything)
}

func TestMembership_RemoveMemberHandler(t *testing.T) {
	project := projectFixture(models.ProjectStatusActive, 2, 4)
	req, err := http.NewRequest("DELETE", "/api/v1/projects/"+project.ID.Hex()+"/members/member-2", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"project_id": project.ID.Hex(), "user_id": "member-2"})

	member := &models.ProjectMember{
		ID:        primitive.NewObjectID(),
		ProjectID: project.ID,
		UserID:    "member-2",
		Role:      models.MemberRoleMember,
	}

	pdb := &mocksdb.ProjectDatabase{}
	mdb := &mocksdb.ProjectMemberDatabase{}

	mdb.On("FindOne", mock.Anything, mock.Anything).Return(member, nil)
	mdb.On("DeleteOne", mock.Anything, mock.Anything).Return(nil)
	pdb.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	pdb.On("FindOne", mock.Anything, mock.Anything).Return(project, nil).Maybe()

	mb := handlers.Membership{
		PDB:    pdb,
		MDB:    mdb,
		UserDB: quietUserDB(),
		Client: passthroughClient(),
		Chat:   notifications.NewChatClient("", ""),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(mb.RemoveMemberHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mdb.AssertCalled(t, "DeleteOne", mock.Anything, mock.Anything)
	pdb.AssertCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestMembership_TransferOwnershipHandlerNotOwner(t *testing.T) {
	project := projectFixture(models.ProjectStatusActive, 2, 4)
	body := `{"fromUserId":"member-2","toUserId":"member-3"}`
	req, err := http.NewRequest("POST", "/api/v1/projects/"+project.ID.Hex()+"/transfer-ownership", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"project_id": project.ID.Hex()})

	from := &models.ProjectMember{
		ID:        primitive.NewObjectID(),
		ProjectID: project.ID,
		UserID:    "member-2",
		Role:      models.MemberRoleMember,
	}

	mdb := &mocksdb.ProjectMemberDatabase{}
	mdb.On("FindOne", mock.Anything, mock.Anything).Return(from, nil)

	mb := handlers.Membership{PDB: &mocksdb.ProjectDatabase{}, MDB: mdb, Client: passthroughClient()}

	rr := httptest.NewRecorder()
	http.HandlerFunc(mb.TransferOwnershipHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	mdb.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestMembership_TransferOwnershipHandlerSelf(t *testing.T) {
	project := projectFixture(models.ProjectStatusActive, 2, 4)
	body := `{"fromUserId":"owner-1","toUserId":"owner-1"}`
	req, err := http.NewRequest("POST", "/api/v1/projects/"+project.ID.Hex()+"/transfer-ownership", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"project_id": project.ID.Hex()})

	mb := handlers.Membership{Client: passthroughClient()}

	rr := httptest.NewRecorder()
	http.HandlerFunc(mb.TransferOwnershipHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestMembership_AcceptInvitationHandler(t *testing.T) {
	project := projectFixture(models.ProjectStatusActive, 2, 4)
	invitation := &models.ProjectInvitation{
		ID:        primitive.NewObjectID(),
		ProjectID: project.ID,
		UserID:    "invitee-1",
		InvitedBy: "owner-1",
		Token:     "tok-123",
		Status:    models.RequestStatusPending,
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
	}

	req, err := http.NewRequest("POST", "/api/v1/invitations/tok-123/accept", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"token": "tok-123"})

	pdb := &mocksdb.ProjectDatabase{}
	mdb := &mocksdb.ProjectMemberDatabase{}
	adb := &mocksdb.ProjectApplicationDatabase{}
	idb := &mocksdb.ProjectInvitationDatabase{}

	idb.On("FindOne", mock.Anything, mock.Anything).Return(invitation, nil)
	pdb.On("FindOne", mock.Anything, mock.Anything).Return(project, nil)
	mdb.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), nil)
	mdb.On("InsertOne", mock.Anything, mock.AnythingOfType("models.ProjectMember")).Return(primitive.NewObjectID(), nil)
	pdb.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	adb.On("DeleteMany", mock.Anything, mock.Anything).Return(nil)
	idb.On("DeleteMany", mock.Anything, mock.Anything).Return(nil)
	idb.On("DeleteOne", mock.Anything, mock.Anything).Return(nil)

	mb := handlers.Membership{
		PDB:    pdb,
		MDB:    mdb,
		ADB:    adb,
		IDB:    idb,
		UserDB: quietUserDB(),
		Client: passthroughClient(),
		Chat:   notifications.NewChatClient("", ""),
		Mailer: notifications.NewMailer(""),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(mb.AcceptInvitationHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	idb.AssertCalled(t, "DeleteOne", mock.Anything, mock.Anything)
}
