package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/api/handlers"
	mocksdb "github.com/AhsanAyaz/code-with-ahsan-sub003/databases/mocks"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/notifications"
)

func TestProject_CreateProjectHandler(t *testing.T) {
	body := `{"creatorId":"owner-1","title":"realtime chess","description":"chess over websockets","tags":["go","websockets"],"maxTeamSize":4}`
	req, err := http.NewRequest("POST", "/api/v1/projects", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	pdb := &mocksdb.ProjectDatabase{}
	mdb := &mocksdb.ProjectMemberDatabase{}

	var insertedProject models.Project
	pdb.On("InsertOne", mock.Anything, mock.AnythingOfType("models.Project")).
		Return(primitive.NewObjectID(), nil).
		Run(func(args mock.Arguments) {
			insertedProject = args.Get(1).(models.Project)
		})

	var insertedOwner models.ProjectMember
	mdb.On("InsertOne", mock.Anything, mock.AnythingOfType("models.ProjectMember")).
		Return(primitive.NewObjectID(), nil).
		Run(func(args mock.Arguments) {
			insertedOwner = args.Get(1).(models.ProjectMember)
		})

	p := handlers.Project{DB: pdb, MDB: mdb, Client: passthroughClient()}

	rr := httptest.NewRecorder()
	http.HandlerFunc(p.CreateProjectHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, models.ProjectStatusPendingApproval, insertedProject.Status)
	assert.Equal(t, 1, insertedProject.MemberCount)
	assert.Equal(t, 4, insertedProject.MaxTeamSize)
	assert.Equal(t, models.MemberRoleOwner, insertedOwner.Role)
	assert.Equal(t, "owner-1", insertedOwner.UserID)
	assert.Equal(t, insertedProject.ID, insertedOwner.ProjectID)
}

func TestProject_CreateProjectHandlerRejectsZeroTeamSize(t *testing.T) {
	body := `{"creatorId":"owner-1","title":"realtime chess","maxTeamSize":0}`
	req, err := http.NewRequest("POST", "/api/v1/projects", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	pdb := &mocksdb.ProjectDatabase{}
	p := handlers.Project{DB: pdb, MDB: &mocksdb.ProjectMemberDatabase{}}

	rr := httptest.NewRecorder()
	http.HandlerFunc(p.CreateProjectHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	pdb.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestProject_ApproveProjectHandler(t *testing.T) {
	project := projectFixture(models.ProjectStatusPendingApproval, 1, 4)
	req, err := http.NewRequest("POST", "/api/v1/projects/"+project.ID.Hex()+"/approve", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"project_id": project.ID.Hex()})

	pdb := &mocksdb.ProjectDatabase{}
	pdb.On("FindOne", mock.Anything, mock.Anything).Return(project, nil)

	var update bson.M
	pdb.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Run(func(args mock.Arguments) {
			if update == nil {
				update = args.Get(2).(bson.M)
			}
		})

	p := handlers.Project{
		DB:     pdb,
		UserDB: quietUserDB(),
		Chat:   notifications.NewChatClient("", ""),
		Mailer: notifications.NewMailer(""),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(p.ApproveProjectHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	set := update["$set"].(bson.M)
	assert.Equal(t, models.ProjectStatusActive, set["status"])
	assert.NotNil(t, set["approvedAt"])
}

func TestProject_ApproveProjectHandlerInvalidTransition(t *testing.T) {
	project := projectFixture(models.ProjectStatusCompleted, 3, 4)
	req, err := http.NewRequest("POST", "/api/v1/projects/"+project.ID.Hex()+"/approve", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"project_id": project.ID.Hex()})

	pdb := &mocksdb.ProjectDatabase{}
	pdb.On("FindOne", mock.Anything, mock.Anything).Return(project, nil)

	p := handlers.Project{DB: pdb}

	rr := httptest.NewRecorder()
	http.HandlerFunc(p.ApproveProjectHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	pdb.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestProject_DeclineProjectHandler(t *testing.T) {
	project := projectFixture(models.ProjectStatusPendingApproval, 1, 4)
	body := `{"reason":"needs a clearer scope"}`
	req, err := http.NewRequest("POST", "/api/v1/projects/"+project.ID.Hex()+"/decline", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"project_id": project.ID.Hex()})

	pdb := &mocksdb.ProjectDatabase{}
	pdb.On("FindOne", mock.Anything, mock.Anything).Return(project, nil)

	var update bson.M
	pdb.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Run(func(args mock.Arguments) {
			update = args.Get(2).(bson.M)
		})

	p := handlers.Project{DB: pdb, UserDB: quietUserDB(), Mailer: notifications.NewMailer("")}

	rr := httptest.NewRecorder()
	http.HandlerFunc(p.DeclineProjectHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	set := update["$set"].(bson.M)
	assert.Equal(t, models.ProjectStatusDeclined, set["status"])
	assert.Equal(t, "needs a clearer scope", set["declineReason"])
	assert.NotNil(t, set["declinedAt"])
}

func TestProject_CompleteProjectHandler(t *testing.T) {
	project := projectFixture(models.ProjectStatusActive, 3, 4)
	req, err := http.NewRequest("POST", "/api/v1/projects/"+project.ID.Hex()+"/complete", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"project_id": project.ID.Hex()})

	pdb := &mocksdb.ProjectDatabase{}
	mdb := &mocksdb.ProjectMemberDatabase{}

	pdb.On("FindOne", mock.Anything, mock.Anything).Return(project, nil)

	var update bson.M
	pdb.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Run(func(args mock.Arguments) {
			update = args.Get(2).(bson.M)
		})
	mdb.On("Find", mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	p := handlers.Project{
		DB:     pdb,
		MDB:    mdb,
		UserDB: quietUserDB(),
		Chat:   notifications.NewChatClient("", ""),
		Mailer: notifications.NewMailer(""),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(p.CompleteProjectHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	set := update["$set"].(bson.M)
	assert.Equal(t, models.ProjectStatusCompleted, set["status"])
	assert.NotNil(t, set["completedAt"])
}

func TestProject_ProjectsHandlerDefaultsToActive(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/projects", nil)
	if err != nil {
		t.Fatal(err)
	}

	pdb := &mocksdb.ProjectDatabase{}
	var filter bson.M
	pdb.On("Find", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).
		Run(func(args mock.Arguments) {
			filter = args.Get(1).(bson.M)
		})

	p := handlers.Project{DB: pdb}

	rr := httptest.NewRecorder()
	http.HandlerFunc(p.ProjectsHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.ProjectStatusActive, filter["status"])

	var got []models.Project
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Empty(t, got)
}
