package repository

import (
	"context"

	meetingpointserrors "islatours/internal/meetingpoints/errors"
	"islatours/pkg/config"
	mongostore "islatours/pkg/db/mongo"
	"islatours/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "meeting_points"

type MeetingPointRepository interface {
	FindAll(ctx context.Context, activeOnly bool) ([]*model.MeetingPoint, error)
	FindByID(ctx context.Context, id string) (*model.MeetingPoint, error)
	Create(ctx context.Context, point *model.MeetingPoint) error
	Replace(ctx context.Context, point *model.MeetingPoint) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoMeetingPointRepository struct {
	store *mongostore.Store[model.MeetingPoint]
}

func NewMeetingPointRepository(cfg *config.Config) MeetingPointRepository {
	collection := cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(CollectionName)
	return NewMeetingPointRepositoryWithCollection(collection, cfg)
}

func NewMeetingPointRepositoryWithCollection(collection *mongo.Collection, cfg *config.Config) MeetingPointRepository {
	return &mongoMeetingPointRepository{
		store: mongostore.NewStore[model.MeetingPoint](collection,
			mongostore.Sentinels{NotFound: meetingpointserrors.ErrNotFound, InvalidID: meetingpointserrors.ErrInvalidID},
			mongostore.Timeouts{Read: cfg.ReadTimeout, Write: cfg.WriteTimeout},
		),
	}
}

func (r *mongoMeetingPointRepository) FindAll(ctx context.Context, activeOnly bool) ([]*model.MeetingPoint, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	return r.store.Find(ctx, filter, bson.D{{Key: "zone", Value: 1}, {Key: "title", Value: 1}}, 0)
}

func (r *mongoMeetingPointRepository) FindByID(ctx context.Context, id string) (*model.MeetingPoint, error) {
	return r.store.FindByID(ctx, id)
}

func (r *mongoMeetingPointRepository) Create(ctx context.Context, point *model.MeetingPoint) error {
	id, err := r.store.Insert(ctx, point)
	if err != nil {
		return err
	}
	point.ID = id
	return nil
}

func (r *mongoMeetingPointRepository) Replace(ctx context.Context, point *model.MeetingPoint) error {
	return r.store.Replace(ctx, point.ID, point)
}

func (r *mongoMeetingPointRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}

func (r *mongoMeetingPointRepository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, nil)
}
