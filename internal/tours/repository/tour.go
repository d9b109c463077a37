package repository

import (
	"context"
	"time"

	tourserrors "islatours/internal/tours/errors"
	"islatours/pkg/config"
	mongostore "islatours/pkg/db/mongo"
	"islatours/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "paquetes"

type TourRepository interface {
	FindAll(ctx context.Context) ([]*model.TourRecord, error)
	FindByID(ctx context.Context, id string) (*model.TourRecord, error)
	Create(ctx context.Context, tour *model.TourRecord) error
	Replace(ctx context.Context, tour *model.TourRecord) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoTourRepository struct {
	store *mongostore.Store[model.TourRecord]
}

func NewTourRepository(cfg *config.Config) TourRepository {
	collection := cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(CollectionName)
	return NewTourRepositoryWithCollection(collection, cfg)
}

func NewTourRepositoryWithCollection(collection *mongo.Collection, cfg *config.Config) TourRepository {
	return &mongoTourRepository{
		store: mongostore.NewStore[model.TourRecord](collection,
			mongostore.Sentinels{NotFound: tourserrors.ErrNotFound, InvalidID: tourserrors.ErrInvalidID},
			mongostore.Timeouts{Read: cfg.ReadTimeout, Write: cfg.WriteTimeout},
		),
	}
}

func (r *mongoTourRepository) FindAll(ctx context.Context) ([]*model.TourRecord, error) {
	return r.store.Find(ctx, nil, bson.D{{Key: "created_at", Value: -1}}, 0)
}

func (r *mongoTourRepository) FindByID(ctx context.Context, id string) (*model.TourRecord, error) {
	return r.store.FindByID(ctx, id)
}

func (r *mongoTourRepository) Create(ctx context.Context, tour *model.TourRecord) error {
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

func (r *mongoTourRepository) Replace(ctx context.Context, tour *model.TourRecord) error {
	return r.store.Replace(ctx, tour.ID, tour)
}

func (r *mongoTourRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}

func (r *mongoTourRepository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, nil)
}
