package repository

import (
	"context"
	"time"

	privatetourserrors "islatours/internal/privatetours/errors"
	"islatours/pkg/config"
	mongostore "islatours/pkg/db/mongo"
	"islatours/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	PrivateTourCollection = "private_tours"
	OptionCollection      = "tour_additional_options"
	BookingCollection     = "private_tour_bookings"
)

func timeouts(cfg *config.Config) mongostore.Timeouts {
	return mongostore.Timeouts{Read: cfg.ReadTimeout, Write: cfg.WriteTimeout}
}

type PrivateTourRepository interface {
	FindAll(ctx context.Context, activeOnly bool) ([]*model.PrivateTourRecord, error)
	FindByID(ctx context.Context, id string) (*model.PrivateTourRecord, error)
	Create(ctx context.Context, tour *model.PrivateTourRecord) error
	Replace(ctx context.Context, tour *model.PrivateTourRecord) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoPrivateTourRepository struct {
	store *mongostore.Store[model.PrivateTourRecord]
}

func NewPrivateTourRepository(cfg *config.Config) PrivateTourRepository {
	collection := cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(PrivateTourCollection)
	return NewPrivateTourRepositoryWithCollection(collection, cfg)
}

func NewPrivateTourRepositoryWithCollection(collection *mongo.Collection, cfg *config.Config) PrivateTourRepository {
	return &mongoPrivateTourRepository{
		store: mongostore.NewStore[model.PrivateTourRecord](collection,
			mongostore.Sentinels{NotFound: privatetourserrors.ErrNotFound, InvalidID: privatetourserrors.ErrInvalidID},
			timeouts(cfg),
		),
	}
}

func (r *mongoPrivateTourRepository) FindAll(ctx context.Context, activeOnly bool) ([]*model.PrivateTourRecord, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	return r.store.Find(ctx, filter, bson.D{{Key: "created_at", Value: -1}}, 0)
}

func (r *mongoPrivateTourRepository) FindByID(ctx context.Context, id string) (*model.PrivateTourRecord, error) {
	return r.store.FindByID(ctx, id)
}

func (r *mongoPrivateTourRepository) Create(ctx context.Context, tour *model.PrivateTourRecord) error {
	if tour.CreatedAt.IsZero() {
		tour.CreatedAt = time.Now().UTC()
	}
	id, err := r.store.Insert(ctx, tour)
	if err != nil {
		return err
	}
	tour.ID = id
	return nil
}

func (r *mongoPrivateTourRepository) Replace(ctx context.Context, tour *model.PrivateTourRecord) error {
	return r.store.Replace(ctx, tour.ID, tour)
}

func (r *mongoPrivateTourRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}

func (r *mongoPrivateTourRepository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, nil)
}
