package repository

import (
	"context"

	autherrors "islatours/internal/auth/errors"
	"islatours/pkg/config"
	mongostore "islatours/pkg/db/mongo"
	"islatours/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "admins"

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
}

type mongoAdminRepository struct {
	store *mongostore.Store[model.Admin]
}

func NewAdminRepository(cfg *config.Config) AdminRepository {
	collection := cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(CollectionName)
	return NewAdminRepositoryWithCollection(collection, cfg)
}

func NewAdminRepositoryWithCollection(collection *mongo.Collection, cfg *config.Config) AdminRepository {
	return &mongoAdminRepository{
		store: mongostore.NewStore[model.Admin](collection,
			mongostore.Sentinels{NotFound: autherrors.ErrNotFound, InvalidID: autherrors.ErrInvalidID},
			mongostore.Timeouts{Read: cfg.ReadTimeout, Write: cfg.WriteTimeout},
		),
	}
}

func (r *mongoAdminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	return r.store.FindOne(ctx, bson.M{"username": username})
}
