package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/api/scheduler"
	mocksdb "github.com/AhsanAyaz/code-with-ahsan-sub003/databases/mocks"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/notifications"
)

func quietUserDB() *mocksdb.UserDatabase {
	udb := &mocksdb.UserDatabase{}
	udb.On("FindOne", mock.Anything, mock.Anything).Return(nil, errors.New("user not found")).Maybe()
	return udb
}

func staleSession(daysQuiet int) models.MentorshipSession {
	last := primitive.NewDateTimeFromTime(time.Now().AddDate(0, 0, -daysQuiet))
	return models.MentorshipSession{
		ID:            primitive.NewObjectID(),
		MentorID:      "mentor-1",
		MenteeID:      "mentee-1",
		Status:        models.SessionStatusActive,
		LastContactAt: &last,
	}
}

func filterForSession(session models.MentorshipSession) interface{} {
	return mock.MatchedBy(func(filter bson.M) bool {
		return filter["_id"] == session.ID
	})
}

func TestScheduler_RunInactivityWarnings(t *testing.T) {
	first := staleSession(40)
	second := staleSession(50)

	sdb := &mocksdb.SessionDatabase{}
	sdb.On("Find", mock.Anything, mock.Anything).Return([]models.MentorshipSession{first, second}, nil)

	var updates []bson.M
	sdb.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(1), nil).
		Run(func(args mock.Arguments) {
			updates = append(updates, args.Get(2).(bson.M))
		})

	s := scheduler.New(sdb, quietUserDB(), notifications.NewMailer(""))

	warned, err := s.RunInactivityWarnings(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, warned)
	assert.Len(t, updates, 2)
	set := updates[0]["$set"].(bson.M)
	assert.NotNil(t, set["inactivityWarnedAt"])
}

func TestScheduler_RunInactivityWarningsFilter(t *testing.T) {
	sdb := &mocksdb.SessionDatabase{}

	var filter bson.M
	sdb.On("Find", mock.Anything, mock.Anything).
		Return(nil, nil).
		Run(func(args mock.Arguments) {
			filter = args.Get(1).(bson.M)
		})

	s := scheduler.New(sdb, quietUserDB(), notifications.NewMailer(""))

	warned, err := s.RunInactivityWarnings(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, warned)
	assert.Equal(t, models.SessionStatusActive, filter["status"])
	// sessions already carrying a warning belong to the cleanup sweep
	assert.Equal(t, bson.M{"$exists": false}, filter["inactivityWarnedAt"])
}

func TestScheduler_RunInactivityWarningsContinuesPastFailures(t *testing.T) {
	first := staleSession(40)
	second := staleSession(50)

	sdb := &mocksdb.SessionDatabase{}
	sdb.On("Find", mock.Anything, mock.Anything).Return([]models.MentorshipSession{first, second}, nil)
	sdb.On("UpdateOne", mock.Anything, filterForSession(first), mock.Anything).Return(int64(0), errors.New("write conflict"))
	sdb.On("UpdateOne", mock.Anything, filterForSession(second), mock.Anything).Return(int64(1), nil)

	s := scheduler.New(sdb, quietUserDB(), notifications.NewMailer(""))

	warned, err := s.RunInactivityWarnings(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, warned)
}

func TestScheduler_RunInactivityCleanup(t *testing.T) {
	session := staleSession(45)
	warnedAt := primitive.NewDateTimeFromTime(time.Now().AddDate(0, 0, -10))
	session.InactivityWarnedAt = &warnedAt

	sdb := &mocksdb.SessionDatabase{}
	sdb.On("Find", mock.Anything, mock.Anything).Return([]models.MentorshipSession{session}, nil)

	var update bson.M
	sdb.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(1), nil).
		Run(func(args mock.Arguments) {
			update = args.Get(2).(bson.M)
		})

	s := scheduler.New(sdb, quietUserDB(), notifications.NewMailer(""))

	closed, err := s.RunInactivityCleanup(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, closed)
	set := update["$set"].(bson.M)
	assert.Equal(t, models.SessionStatusCancelled, set["status"])
	assert.Equal(t, models.CancelReasonInactivity, set["cancelReason"])
	assert.NotNil(t, set["cancelledAt"])
}

func TestScheduler_RunInactivityWarningsSkipsSessionsThatChanged(t *testing.T) {
	session := staleSession(40)

	sdb := &mocksdb.SessionDatabase{}
	sdb.On("Find", mock.Anything, mock.Anything).Return([]models.MentorshipSession{session}, nil)

	// the session saw contact between the find and the write, so the
	// guarded update matches nothing and no warning goes out
	var filter bson.M
	sdb.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil).
		Run(func(args mock.Arguments) {
			filter = args.Get(1).(bson.M)
		})

	udb := quietUserDB()
	s := scheduler.New(sdb, udb, notifications.NewMailer(""))

	warned, err := s.RunInactivityWarnings(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, warned)
	assert.Equal(t, session.ID, filter["_id"])
	assert.Equal(t, models.SessionStatusActive, filter["status"])
	assert.NotNil(t, filter["lastContactAt"])
	assert.Equal(t, bson.M{"$exists": false}, filter["inactivityWarnedAt"])
	udb.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
}

func TestScheduler_RunInactivityCleanupSkipsSessionsThatChanged(t *testing.T) {
	session := staleSession(45)
	warnedAt := primitive.NewDateTimeFromTime(time.Now().AddDate(0, 0, -10))
	session.InactivityWarnedAt = &warnedAt

	sdb := &mocksdb.SessionDatabase{}
	sdb.On("Find", mock.Anything, mock.Anything).Return([]models.MentorshipSession{session}, nil)

	// a concurrent complete (or a contact refresh clearing the warning)
	// must not be overwritten with an inactivity cancellation
	var filter bson.M
	sdb.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil).
		Run(func(args mock.Arguments) {
			filter = args.Get(1).(bson.M)
		})

	udb := quietUserDB()
	s := scheduler.New(sdb, udb, notifications.NewMailer(""))

	closed, err := s.RunInactivityCleanup(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, closed)
	assert.Equal(t, session.ID, filter["_id"])
	assert.Equal(t, models.SessionStatusActive, filter["status"])
	assert.NotNil(t, filter["inactivityWarnedAt"])
	udb.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
}

func TestScheduler_RunInactivityCleanupFindError(t *testing.T) {
	sdb := &mocksdb.SessionDatabase{}
	sdb.On("Find", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	s := scheduler.New(sdb, quietUserDB(), notifications.NewMailer(""))

	closed, err := s.RunInactivityCleanup(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 0, closed)
}
