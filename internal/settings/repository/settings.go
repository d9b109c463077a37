package repository

import (
	"context"

	settingserrors "islatours/internal/settings/errors"
	"islatours/pkg/config"
	mongostore "islatours/pkg/db/mongo"
	"islatours/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName holds a single row with the site settings.
const CollectionName = "admin"

type SettingsRepository interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Create(ctx context.Context, settings *model.SiteSettings) error
	Replace(ctx context.Context, settings *model.SiteSettings) error
}

type mongoSettingsRepository struct {
	store *mongostore.Store[model.SiteSettings]
}

func NewSettingsRepository(cfg *config.Config) SettingsRepository {
	collection := cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(CollectionName)
	return NewSettingsRepositoryWithCollection(collection, cfg)
}

func NewSettingsRepositoryWithCollection(collection *mongo.Collection, cfg *config.Config) SettingsRepository {
	return &mongoSettingsRepository{
		store: mongostore.NewStore[model.SiteSettings](collection,
			mongostore.Sentinels{NotFound: settingserrors.ErrNotFound, InvalidID: settingserrors.ErrInvalidID},
			mongostore.Timeouts{Read: cfg.ReadTimeout, Write: cfg.WriteTimeout},
		),
	}
}

// Get returns the oldest row if more than one was ever written.
func (r *mongoSettingsRepository) Get(ctx context.Context) (*model.SiteSettings, error) {
	rows, err := r.store.Find(ctx, nil, bson.D{{Key: "_id", Value: 1}}, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, settingserrors.ErrNotFound
	}
	return rows[0], nil
}

func (r *mongoSettingsRepository) Create(ctx context.Context, settings *model.SiteSettings) error {
	id, err := r.store.Insert(ctx, settings)
	if err != nil {
		return err
	}
	settings.ID = id
	return nil
}

func (r *mongoSettingsRepository) Replace(ctx context.Context, settings *model.SiteSettings) error {
	return r.store.Replace(ctx, settings.ID, settings)
}
