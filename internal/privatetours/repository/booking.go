package repository

import (
	"context"

	privatetourserrors "islatours/internal/privatetours/errors"
	"islatours/pkg/config"
	mongostore "islatours/pkg/db/mongo"
	"islatours/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.PrivateTourBooking) error
	FindByID(ctx context.Context, id string) (*model.PrivateTourBooking, error)
	// FindAll lists newest first; an empty status matches every booking.
	FindAll(ctx context.Context, status string, limit int64) ([]*model.PrivateTourBooking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type mongoBookingRepository struct {
	store *mongostore.Store[model.PrivateTourBooking]
}

func NewBookingRepository(cfg *config.Config) BookingRepository {
	collection := cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(BookingCollection)
	return NewBookingRepositoryWithCollection(collection, cfg)
}

func NewBookingRepositoryWithCollection(collection *mongo.Collection, cfg *config.Config) BookingRepository {
	return &mongoBookingRepository{
		store: mongostore.NewStore[model.PrivateTourBooking](collection,
			mongostore.Sentinels{NotFound: privatetourserrors.ErrBookingNotFound, InvalidID: privatetourserrors.ErrInvalidID},
			timeouts(cfg),
		),
	}
}

func (r *mongoBookingRepository) Create(ctx context.Context, booking *model.PrivateTourBooking) error {
	id, err := r.store.Insert(ctx, booking)
	if err != nil {
		return err
	}
	booking.ID = id
	return nil
}

func (r *mongoBookingRepository) FindByID(ctx context.Context, id string) (*model.PrivateTourBooking, error) {
	return r.store.FindByID(ctx, id)
}

func (r *mongoBookingRepository) FindAll(ctx context.Context, status string, limit int64) ([]*model.PrivateTourBooking, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.store.Find(ctx, filter, bson.D{{Key: "created_at", Value: -1}}, limit)
}

func (r *mongoBookingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.store.Set(ctx, id, bson.M{"status": status})
}

func (r *mongoBookingRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.store.Count(ctx, filter)
}
