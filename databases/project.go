package databases

// go generate: mockery --name ProjectDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
)

const projectCollectionName = "projects"

// ProjectDatabase contains the methods to use with the project database
type ProjectDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Project, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Project, error)
	InsertOne(ctx context.Context, project models.Project) (interface{}, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type projectDatabase struct {
	db DatabaseHelper
}

// NewProjectDatabase initializes a new instance of project database with the provided db connection
func NewProjectDatabase(db DatabaseHelper) ProjectDatabase {
	return &projectDatabase{
		db: db,
	}
}

func (p *projectDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Project, error) {
	project := &models.Project{}
	err := p.db.Collection(projectCollectionName).FindOne(ctx, filter).Decode(&project)
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (p *projectDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Project, error) {
	cursor, err := p.db.Collection(projectCollectionName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (p *projectDatabase) InsertOne(ctx context.Context, project models.Project) (interface{}, error) {
	return p.db.Collection(projectCollectionName).InsertOne(ctx, project)
}

func (p *projectDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := p.db.Collection(projectCollectionName).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (p *projectDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return p.db.Collection(projectCollectionName).CountDocuments(ctx, filter, opts...)
}
