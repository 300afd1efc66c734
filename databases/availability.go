package databases

// go generate: mockery --name AvailabilityDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
)

const availabilityCollectionName = "availabilities"

// AvailabilityDatabase contains the methods to use with the weekly availability database
type AvailabilityDatabase interface {
	FindByMentorID(ctx context.Context, mentorID string) (*models.WeeklyAvailability, error)
	Replace(ctx context.Context, availability models.WeeklyAvailability) error
}

type availabilityDatabase struct {
	db DatabaseHelper
}

// NewAvailabilityDatabase initializes a new instance of availability database with the provided db connection
func NewAvailabilityDatabase(db DatabaseHelper) AvailabilityDatabase {
	return &availabilityDatabase{
		db: db,
	}
}

func (a *availabilityDatabase) FindByMentorID(ctx context.Context, mentorID string) (*models.WeeklyAvailability, error) {
	availability := &models.WeeklyAvailability{}
	err := a.db.Collection(availabilityCollectionName).FindOne(ctx, bson.M{"mentorId": mentorID}).Decode(&availability)
	if err != nil {
		return nil, err
	}
	return availability, nil
}

// Replace swaps the mentor's whole weekly schedule in one write. The schedule
// is never patched field by field.
func (a *availabilityDatabase) Replace(ctx context.Context, availability models.WeeklyAvailability) error {
	upsert := true
	_, err := a.db.Collection(availabilityCollectionName).UpdateOne(ctx,
		bson.M{"mentorId": availability.MentorID},
		bson.M{"$set": availability},
		&options.UpdateOptions{Upsert: &upsert},
	)
	return err
}
