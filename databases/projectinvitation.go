package databases

// go generate: mockery --name ProjectInvitationDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
)

const projectInvitationCollectionName = "projectInvitations"

// ProjectInvitationDatabase contains the methods to use with the project invitation database
type ProjectInvitationDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.ProjectInvitation, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ProjectInvitation, error)
	InsertOne(ctx context.Context, invitation models.ProjectInvitation) (interface{}, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	DeleteOne(ctx context.Context, filter interface{}) error
	DeleteMany(ctx context.Context, filter interface{}) error
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type projectInvitationDatabase struct {
	db DatabaseHelper
}

// NewProjectInvitationDatabase initializes a new instance of project invitation database with the provided db connection
func NewProjectInvitationDatabase(db DatabaseHelper) ProjectInvitationDatabase {
	return &projectInvitationDatabase{
		db: db,
	}
}

func (p *projectInvitationDatabase) FindOne(ctx context.Context, filter interface{}) (*models.ProjectInvitation, error) {
	invitation := &models.ProjectInvitation{}
	err := p.db.Collection(projectInvitationCollectionName).FindOne(ctx, filter).Decode(&invitation)
	if err != nil {
		return nil, err
	}
	return invitation, nil
}

func (p *projectInvitationDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ProjectInvitation, error) {
	cursor, err := p.db.Collection(projectInvitationCollectionName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var invitations []models.ProjectInvitation
	if err := cursor.All(ctx, &invitations); err != nil {
		return nil, err
	}
	return invitations, nil
}

func (p *projectInvitationDatabase) InsertOne(ctx context.Context, invitation models.ProjectInvitation) (interface{}, error) {
	return p.db.Collection(projectInvitationCollectionName).InsertOne(ctx, invitation)
}

func (p *projectInvitationDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := p.db.Collection(projectInvitationCollectionName).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (p *projectInvitationDatabase) DeleteOne(ctx context.Context, filter interface{}) error {
	return p.db.Collection(projectInvitationCollectionName).DeleteOne(ctx, filter)
}

func (p *projectInvitationDatabase) DeleteMany(ctx context.Context, filter interface{}) error {
	return p.db.Collection(projectInvitationCollectionName).DeleteMany(ctx, filter)
}

func (p *projectInvitationDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return p.db.Collection(projectInvitationCollectionName).CountDocuments(ctx, filter, opts...)
}
