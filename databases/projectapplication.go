package databases

// go generate: mockery --name ProjectApplicationDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
)

const projectApplicationCollectionName = "projectApplications"

// ProjectApplicationDatabase contains the methods to use with the project application database
type ProjectApplicationDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.ProjectApplication, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ProjectApplication, error)
	InsertOne(ctx context.Context, application models.ProjectApplication) (interface{}, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	DeleteOne(ctx context.Context, filter interface{}) error
	DeleteMany(ctx context.Context, filter interface{}) error
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type projectApplicationDatabase struct {
	db DatabaseHelper
}

// NewProjectApplicationDatabase initializes a new instance of project application database with the provided db connection
func NewProjectApplicationDatabase(db DatabaseHelper) ProjectApplicationDatabase {
	return &projectApplicationDatabase{
		db: db,
	}
}

func (p *projectApplicationDatabase) FindOne(ctx context.Context, filter interface{}) (*models.ProjectApplication, error) {
	application := &models.ProjectApplication{}
	err := p.db.Collection(projectApplicationCollectionName).FindOne(ctx, filter).Decode(&application)
	if err != nil {
		return nil, err
	}
	return application, nil
}

func (p *projectApplicationDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ProjectApplication, error) {
	cursor, err := p.db.Collection(projectApplicationCollectionName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var applications []models.ProjectApplication
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

func (p *projectApplicationDatabase) InsertOne(ctx context.Context, application models.ProjectApplication) (interface{}, error) {
	return p.db.Collection(projectApplicationCollectionName).InsertOne(ctx, application)
}

func (p *projectApplicationDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := p.db.Collection(projectApplicationCollectionName).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (p *projectApplicationDatabase) DeleteOne(ctx context.Context, filter interface{}) error {
	return p.db.Collection(projectApplicationCollectionName).DeleteOne(ctx, filter)
}

func (p *projectApplicationDatabase) DeleteMany(ctx context.Context, filter interface{}) error {
	return p.db.Collection(projectApplicationCollectionName).DeleteMany(ctx, filter)
}

func (p *projectApplicationDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return p.db.Collection(projectApplicationCollectionName).CountDocuments(ctx, filter, opts...)
}
