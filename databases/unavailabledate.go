package databases

// go generate: mockery --name UnavailableDateDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
)

const unavailableDateCollectionName = "unavailableDates"

// UnavailableDateDatabase contains the methods to use with the unavailable date database
type UnavailableDateDatabase interface {
	FindByMentorID(ctx context.Context, mentorID string) ([]models.UnavailableDate, error)
	ReplaceForMentor(ctx context.Context, mentorID string, dates []models.UnavailableDate) error
}

type unavailableDateDatabase struct {
	db DatabaseHelper
}

// NewUnavailableDateDatabase initializes a new instance of unavailable date database with the provided db connection
func NewUnavailableDateDatabase(db DatabaseHelper) UnavailableDateDatabase {
	return &unavailableDateDatabase{
		db: db,
	}
}

func (u *unavailableDateDatabase) FindByMentorID(ctx context.Context, mentorID string) ([]models.UnavailableDate, error) {
	cursor, err := u.db.Collection(unavailableDateCollectionName).Find(ctx, bson.M{"mentorId": mentorID})
	if err != nil {
		return nil, err
	}
	var dates []models.UnavailableDate
	if err := cursor.All(ctx, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

// ReplaceForMentor swaps the mentor's whole exception set. Run inside a
// transaction together with the availability replace.
func (u *unavailableDateDatabase) ReplaceForMentor(ctx context.Context, mentorID string, dates []models.UnavailableDate) error {
	coll := u.db.Collection(unavailableDateCollectionName)
	if err := coll.DeleteMany(ctx, bson.M{"mentorId": mentorID}); err != nil {
		return err
	}
	for _, d := range dates {
		if _, err := coll.InsertOne(ctx, d); err != nil {
			return err
		}
	}
	return nil
}
