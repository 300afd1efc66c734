package databases

// go generate: mockery --name BookingDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
)

const bookingCollectionName = "bookings"

// BookingDatabase contains the methods to use with the booking database
type BookingDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Booking, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Booking, error)
	InsertOne(ctx context.Context, booking models.Booking) (interface{}, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type bookingDatabase struct {
	db DatabaseHelper
}

// NewBookingDatabase initializes a new instance of booking database with the provided db connection
func NewBookingDatabase(db DatabaseHelper) BookingDatabase {
	return &bookingDatabase{
		db: db,
	}
}

func (b *bookingDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Booking, error) {
	booking := &models.Booking{}
	err := b.db.Collection(bookingCollectionName).FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (b *bookingDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Booking, error) {
	cursor, err := b.db.Collection(bookingCollectionName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (b *bookingDatabase) InsertOne(ctx context.Context, booking models.Booking) (interface{}, error) {
	return b.db.Collection(bookingCollectionName).InsertOne(ctx, booking)
}

func (b *bookingDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := b.db.Collection(bookingCollectionName).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (b *bookingDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return b.db.Collection(bookingCollectionName).CountDocuments(ctx, filter, opts...)
}
