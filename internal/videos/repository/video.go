package repository

import (
	"context"
	"time"

	videoserrors "islatours/internal/videos/errors"
	"islatours/pkg/config"
	mongostore "islatours/pkg/db/mongo"
	"islatours/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "videos"

type VideoRepository interface {
	FindAll(ctx context.Context, activeOnly bool) ([]*model.Video, error)
	FindByID(ctx context.Context, id string) (*model.Video, error)
	Create(ctx context.Context, video *model.Video) error
	Replace(ctx context.Context, video *model.Video) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoVideoRepository struct {
	store *mongostore.Store[model.Video]
}

func NewVideoRepository(cfg *config.Config) VideoRepository {
	collection := cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(CollectionName)
	return NewVideoRepositoryWithCollection(collection, cfg)
}

func NewVideoRepositoryWithCollection(collection *mongo.Collection, cfg *config.Config) VideoRepository {
	return &mongoVideoRepository{
		store: mongostore.NewStore[model.Video](collection,
			mongostore.Sentinels{NotFound: videoserrors.ErrNotFound, InvalidID: videoserrors.ErrInvalidID},
			mongostore.Timeouts{Read: cfg.ReadTimeout, Write: cfg.WriteTimeout},
		),
	}
}

func (r *mongoVideoRepository) FindAll(ctx context.Context, activeOnly bool) ([]*model.Video, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	return r.store.Find(ctx, filter, bson.D{{Key: "sort_order", Value: 1}, {Key: "created_at", Value: -1}}, 0)
}

func (r *mongoVideoRepository) FindByID(ctx context.Context, id string) (*model.Video, error) {
	return r.store.FindByID(ctx, id)
}

func (r *mongoVideoRepository) Create(ctx context.Context, video *model.Video) error {
	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now().UTC()
	}
	id, err := r.store.Insert(ctx, video)
	if err != nil {
		return err
	}
	video.ID = id
	return nil
}

func (r *mongoVideoRepository) Replace(ctx context.Context, video *model.Video) error {
	return r.store.Replace(ctx, video.ID, video)
}

func (r *mongoVideoRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}

func (r *mongoVideoRepository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, nil)
}
