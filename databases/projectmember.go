package databases

// go generate: mockery --name ProjectMemberDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
)

const projectMemberCollectionName = "projectMembers"

// ProjectMemberDatabase contains the methods to use with the project member database
type ProjectMemberDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.ProjectMember, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ProjectMember, error)
	InsertOne(ctx context.Context, member models.ProjectMember) (interface{}, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	DeleteOne(ctx context.Context, filter interface{}) error
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type projectMemberDatabase struct {
	db DatabaseHelper
}

// NewProjectMemberDatabase initializes a new instance of project member database with the provided db connection
func NewProjectMemberDatabase(db DatabaseHelper) ProjectMemberDatabase {
	return &projectMemberDatabase{
		db: db,
	}
}

func (p *projectMemberDatabase) FindOne(ctx context.Context, filter interface{}) (*models.ProjectMember, error) {
	member := &models.ProjectMember{}
	err := p.db.Collection(projectMemberCollectionName).FindOne(ctx, filter).Decode(&member)
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (p *projectMemberDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ProjectMember, error) {
	cursor, err := p.db.Collection(projectMemberCollectionName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var members []models.ProjectMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (p *projectMemberDatabase) InsertOne(ctx context.Context, member models.ProjectMember) (interface{}, error) {
	return p.db.Collection(projectMemberCollectionName).InsertOne(ctx, member)
}

func (p *projectMemberDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := p.db.Collection(projectMemberCollectionName).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (p *projectMemberDatabase) DeleteOne(ctx context.Context, filter interface{}) error {
	return p.db.Collection(projectMemberCollectionName).DeleteOne(ctx, filter)
}

func (p *projectMemberDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return p.db.Collection(projectMemberCollectionName).CountDocuments(ctx, filter, opts...)
}
