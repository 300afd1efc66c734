package databases

// go generate: mockery --name SessionDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
)

const sessionCollectionName = "mentorshipSessions"

// SessionDatabase contains the methods to use with the mentorship session
// database. UpdateOne returns the matched count so callers can put the status
// they validated against into the filter and detect a concurrent change.
type SessionDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.MentorshipSession, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.MentorshipSession, error)
	InsertOne(ctx context.Context, session models.MentorshipSession) (interface{}, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (int64, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type sessionDatabase struct {
	db DatabaseHelper
}

// NewSessionDatabase initializes a new instance of session database with the provided db connection
func NewSessionDatabase(db DatabaseHelper) SessionDatabase {
	return &sessionDatabase{
		db: db,
	}
}

func (s *sessionDatabase) FindOne(ctx context.Context, filter interface{}) (*models.MentorshipSession, error) {
	session := &models.MentorshipSession{}
	err := s.db.Collection(sessionCollectionName).FindOne(ctx, filter).Decode(&session)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.MentorshipSession, error) {
	cursor, err := s.db.Collection(sessionCollectionName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var sessions []models.MentorshipSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *sessionDatabase) InsertOne(ctx context.Context, session models.MentorshipSession) (interface{}, error) {
	return s.db.Collection(sessionCollectionName).InsertOne(ctx, session)
}

func (s *sessionDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (int64, error) {
	result, err := s.db.Collection(sessionCollectionName).UpdateOne(ctx, filter, update, opts...)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (s *sessionDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return s.db.Collection(sessionCollectionName).CountDocuments(ctx, filter, opts...)
}
