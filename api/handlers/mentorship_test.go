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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/api/handlers"
	mocksdb "github.com/AhsanAyaz/code-with-ahsan-sub003/databases/mocks"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/notifications"
)

func TestMentorship_CreateSessionRequestHandler(t *testing.T) {
	body := `{"mentorId":"mentor-1","menteeId":"mentee-1","message":"please mentor me"}`
	req, err := http.NewRequest("POST", "/api/v1/mentorship-sessions", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	sdb := &mocksdb.SessionDatabase{}
	sdb.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), nil)

	var inserted models.MentorshipSession
	sdb.On("InsertOne", mock.Anything, mock.AnythingOfType("models.MentorshipSession")).
		Return(primitive.NewObjectID(), nil).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(models.MentorshipSession)
		})

	ms := handlers.Mentorship{DB: sdb, UserDB: quietUserDB(), Mailer: notifications.NewMailer("")}

	rr := httptest.NewRecorder()
	http.HandlerFunc(ms.CreateSessionRequestHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, models.SessionStatusPending, inserted.Status)
	assert.Equal(t, "please mentor me", inserted.Message)
	assert.NotZero(t, inserted.RequestedAt)
}

func TestMentorship_CreateSessionRequestHandlerDuplicate(t *testing.T) {
	body := `{"mentorId":"mentor-1","menteeId":"mentee-1"}`
	req, err := http.NewRequest("POST", "/api/v1/mentorship-sessions", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	sdb := &mocksdb.SessionDatabase{}
	sdb.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(1), nil)

	ms := handlers.Mentorship{DB: sdb}

	rr := httptest.NewRecorder()
	http.HandlerFunc(ms.CreateSessionRequestHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	sdb.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func sessionFixture(status string) *models.MentorshipSession {
	now := primitive.NewDateTimeFromTime(time.Now())
	return &models.MentorshipSession{
		ID:          primitive.NewObjectID(),
		MentorID:    "mentor-1",
		MenteeID:    "mentee-1",
		Status:      status,
		RequestedAt: now,
		UpdatedAt:   now,
	}
}

func TestMentorship_UpdateSessionStatusHandlerApprove(t *testing.T) {
	session := sessionFixture(models.SessionStatusPending)
	body := `{"status":"active"}`
	req, err := http.NewRequest("PUT", "/api/v1/mentorship-sessions/"+session.ID.Hex()+"/status", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"session_id": session.ID.Hex()})

	sdb := &mocksdb.SessionDatabase{}
	sdb.On("FindOne", mock.Anything, mock.Anything).Return(session, nil)

	var update bson.M
	sdb.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(1), nil).
		Run(func(args mock.Arguments) {
			update = args.Get(2).(bson.M)
		})

	ms := handlers.Mentorship{DB: sdb, UserDB: quietUserDB(), Mailer: notifications.NewMailer("")}

	rr := httptest.NewRecorder()
	http.HandlerFunc(ms.UpdateSessionStatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	set := update["$set"].(bson.M)
	assert.Equal(t, models.SessionStatusActive, set["status"])
	assert.NotNil(t, set["approvedAt"])
	assert.NotNil(t, set["lastContactAt"])
	assert.Nil(t, set["revertedAt"])
}

func TestMentorship_UpdateSessionStatusHandlerRevertKeepsCompletedAt(t *testing.T) {
	session := sessionFixture(models.SessionStatusCompleted)
	completed := primitive.NewDateTimeFromTime(time.Now().AddDate(0, 0, -3))
	session.CompletedAt = &completed

	body := `{"status":"active"}`
	req, err := http.NewRequest("PUT", "/api/v1/mentorship-sessions/"+session.ID.Hex()+"/status", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"session_id": session.ID.Hex()})

	sdb := &mocksdb.SessionDatabase{}
	sdb.On("FindOne", mock.Anything, mock.Anything).Return(session, nil)

	var update bson.M
	sdb.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(1), nil).
		Run(func(args mock.Arguments) {
			update = args.Get(2).(bson.M)
		})

	ms := handlers.Mentorship{DB: sdb, UserDB: quietUserDB(), Mailer: notifications.NewMailer("")}

	rr := httptest.NewRecorder()
	http.HandlerFunc(ms.UpdateSessionStatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	set := update["$set"].(bson.M)
	assert.Equal(t, models.SessionStatusActive, set["status"])
	assert.NotNil(t, set["revertedAt"])
	// completedAt is never touched on a revert, it stays for the audit trail
	assert.Nil(t, set["completedAt"])
	assert.Nil(t, update["$unset"])
}

func TestMentorship_UpdateSessionStatusHandlerInvalidTransition(t *testing.T) {
	session := sessionFixture(models.SessionStatusCancelled)
	body := `{"status":"active"}`
	req, err := http.NewRequest("PUT", "/api/v1/mentorship-sessions/"+session.ID.Hex()+"/status", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"session_id": session.ID.Hex()})

	sdb := &mocksdb.SessionDatabase{}
	sdb.On("FindOne", mock.Anything, mock.Anything).Return(session, nil)

	ms := handlers.Mentorship{DB: sdb}

	rr := httptest.NewRecorder()
	http.HandlerFunc(ms.UpdateSessionStatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid transition from 'cancelled' to 'active'")
	sdb.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestMentorship_UpdateSessionStatusHandlerDeclineDefaultsReason(t *testing.T) {
	session := sessionFixture(models.SessionStatusPending)
	body := `{"status":"cancelled"}`
	req, err := http.NewRequest("PUT", "/api/v1/mentorship-sessions/"+session.ID.Hex()+"/status", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"session_id": session.ID.Hex()})

	sdb := &mocksdb.SessionDatabase{}
	sdb.On("FindOne", mock.Anything, mock.Anything).Return(session, nil)

	var update bson.M
	sdb.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(1), nil).
		Run(func(args mock.Arguments) {
			update = args.Get(2).(bson.M)
		})

	ms := handlers.Mentorship{DB: sdb, UserDB: quietUserDB(), Mailer: notifications.NewMailer("")}

	rr := httptest.NewRecorder()
	http.HandlerFunc(ms.UpdateSessionStatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	set := update["$set"].(bson.M)
	assert.Equal(t, models.CancelReasonDeclined, set["cancelReason"])
	assert.NotNil(t, set["cancelledAt"])
}

func TestMentorship_UpdateSessionStatusHandlerLostRaceConflicts(t *testing.T) {
	// an approve that validated against pending must not commit if the
	// session was cancelled in between: the guarded write matches nothing
	session := sessionFixture(models.SessionStatusPending)
	body := `{"status":"active"}`
	req, err := http.NewRequest("PUT", "/api/v1/mentorship-sessions/"+session.ID.Hex()+"/status", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"session_id": session.ID.Hex()})

	sdb := &mocksdb.SessionDatabase{}
	sdb.On("FindOne", mock.Anything, mock.Anything).Return(session, nil)

	var filter bson.M
	sdb.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil).
		Run(func(args mock.Arguments) {
			filter = args.Get(1).(bson.M)
		})

	udb := quietUserDB()
	ms := handlers.Mentorship{DB: sdb, UserDB: udb, Mailer: notifications.NewMailer("")}

	rr := httptest.NewRecorder()
	http.HandlerFunc(ms.UpdateSessionStatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "session status changed")
	// the write is keyed on the status the transition was validated against
	assert.Equal(t, session.ID, filter["_id"])
	assert.Equal(t, models.SessionStatusPending, filter["status"])
	udb.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
}

func TestMentorship_RecordContactHandlerLostRaceConflicts(t *testing.T) {
	session := sessionFixture(models.SessionStatusActive)
	req, err := http.NewRequest("POST", "/api/v1/mentorship-sessions/"+session.ID.Hex()+"/contact", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"session_id": session.ID.Hex()})

	sdb := &mocksdb.SessionDatabase{}
	sdb.On("FindOne", mock.Anything, mock.Anything).Return(session, nil)

	var filter bson.M
	sdb.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil).
		Run(func(args mock.Arguments) {
			filter = args.Get(1).(bson.M)
		})

	ms := handlers.Mentorship{DB: sdb}

	rr := httptest.NewRecorder()
	http.HandlerFunc(ms.RecordContactHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, models.SessionStatusActive, filter["status"])
}

func TestMentorship_RecordContactHandler(t *testing.T) {
	session := sessionFixture(models.SessionStatusActive)
	req, err := http.NewRequest("POST", "/api/v1/mentorship-sessions/"+session.ID.Hex()+"/contact", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"session_id": session.ID.Hex()})

	sdb := &mocksdb.SessionDatabase{}
	sdb.On("FindOne", mock.Anything, mock.Anything).Return(session, nil)

	var update bson.M
	sdb.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(1), nil).
		Run(func(args mock.Arguments) {
			update = args.Get(2).(bson.M)
		})

	ms := handlers.Mentorship{DB: sdb}

	rr := httptest.NewRecorder()
	http.HandlerFunc(ms.RecordContactHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	set := update["$set"].(bson.M)
	assert.NotNil(t, set["lastContactAt"])
	unset := update["$unset"].(bson.M)
	_, cleared := unset["inactivityWarnedAt"]
	assert.True(t, cleared)
}

func TestMentorship_RecordContactHandlerNotActive(t *testing.T) {
	session := sessionFixture(models.SessionStatusPending)
	req, err := http.NewRequest("POST", "/api/v1/mentorship-sessions/"+session.ID.Hex()+"/contact", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"session_id": session.ID.Hex()})

	sdb := &mocksdb.SessionDatabase{}
	sdb.On("FindOne", mock.Anything, mock.Anything).Return(session, nil)

	ms := handlers.Mentorship{DB: sdb}

	rr := httptest.NewRecorder()
	http.HandlerFunc(ms.RecordContactHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	sdb.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
}
