package repository

import (
	"context"

	privatetourserrors "islatours/internal/privatetours/errors"
	"islatours/pkg/config"
	mongostore "islatours/pkg/db/mongo"
	"islatours/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OptionRepository interface {
	FindAll(ctx context.Context, activeOnly bool) ([]*model.TourOption, error)
	// FindByIDs skips ids that are malformed or missing.
	FindByIDs(ctx context.Context, ids []string) ([]*model.TourOption, error)
	FindByID(ctx context.Context, id string) (*model.TourOption, error)
	Create(ctx context.Context, option *model.TourOption) error
	Replace(ctx context.Context, option *model.TourOption) error
	Delete(ctx context.Context, id string) error
}

type mongoOptionRepository struct {
	store *mongostore.Store[model.TourOption]
}

func NewOptionRepository(cfg *config.Config) OptionRepository {
	collection := cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(OptionCollection)
	return NewOptionRepositoryWithCollection(collection, cfg)
}

func NewOptionRepositoryWithCollection(collection *mongo.Collection, cfg *config.Config) OptionRepository {
	return &mongoOptionRepository{
		store: mongostore.NewStore[model.TourOption](collection,
			mongostore.Sentinels{NotFound: privatetourserrors.ErrOptionNotFound, InvalidID: privatetourserrors.ErrInvalidID},
			timeouts(cfg),
		),
	}
}

var optionOrder = bson.D{{Key: "sort_order", Value: 1}, {Key: "name", Value: 1}}

func (r *mongoOptionRepository) FindAll(ctx context.Context, activeOnly bool) ([]*model.TourOption, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	return r.store.Find(ctx, filter, optionOrder, 0)
}

func (r *mongoOptionRepository) FindByIDs(ctx context.Context, ids []string) ([]*model.TourOption, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []*model.TourOption{}, nil
	}
	return r.store.Find(ctx, bson.M{"_id": bson.M{"$in": oids}}, optionOrder, 0)
}

func (r *mongoOptionRepository) FindByID(ctx context.Context, id string) (*model.TourOption, error) {
	return r.store.FindByID(ctx, id)
}

func (r *mongoOptionRepository) Create(ctx context.Context, option *model.TourOption) error {
	id, err := r.store.Insert(ctx, option)
	if err != nil {
		return err
	}
	option.ID = id
	return nil
}

func (r *mongoOptionRepository) Replace(ctx context.Context, option *model.TourOption) error {
	return r.store.Replace(ctx, option.ID, option)
}

func (r *mongoOptionRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}
