package repository

import (
	"context"
	"time"

	galleryerrors "islatours/internal/gallery/errors"
	"islatours/pkg/config"
	mongostore "islatours/pkg/db/mongo"
	"islatours/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "gallery"

type GalleryRepository interface {
	FindAll(ctx context.Context, category string) ([]*model.GalleryRecord, error)
	FindByID(ctx context.Context, id string) (*model.GalleryRecord, error)
	Create(ctx context.Context, item *model.GalleryRecord) error
	Replace(ctx context.Context, item *model.GalleryRecord) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoGalleryRepository struct {
	store *mongostore.Store[model.GalleryRecord]
}

func NewGalleryRepository(cfg *config.Config) GalleryRepository {
	collection := cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(CollectionName)
	return NewGalleryRepositoryWithCollection(collection, cfg)
}

func NewGalleryRepositoryWithCollection(collection *mongo.Collection, cfg *config.Config) GalleryRepository {
	return &mongoGalleryRepository{
		store: mongostore.NewStore[model.GalleryRecord](collection,
			mongostore.Sentinels{NotFound: galleryerrors.ErrNotFound, InvalidID: galleryerrors.ErrInvalidID},
			mongostore.Timeouts{Read: cfg.ReadTimeout, Write: cfg.WriteTimeout},
		),
	}
}

// FindAll lists newest first; an empty category matches every item.
func (r *mongoGalleryRepository) FindAll(ctx context.Context, category string) ([]*model.GalleryRecord, error) {
	filter := bson.M{}
	if category != "" {
		filter["categoria"] = category
	}
	return r.store.Find(ctx, filter, bson.D{{Key: "created_at", Value: -1}}, 0)
}

func (r *mongoGalleryRepository) FindByID(ctx context.Context, id string) (*model.GalleryRecord, error) {
	return r.store.FindByID(ctx, id)
}

func (r *mongoGalleryRepository) Create(ctx context.Context, item *model.GalleryRecord) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	id, err := r.store.Insert(ctx, item)
	if err != nil {
		return err
	}
	item.ID = id
	return nil
}

func (r *mongoGalleryRepository) Replace(ctx context.Context, item *model.GalleryRecord) error {
	return r.store.Replace(ctx, item.ID, item)
}

func (r *mongoGalleryRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}

func (r *mongoGalleryRepository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, nil)
}
