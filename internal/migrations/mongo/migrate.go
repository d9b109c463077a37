package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	authrepo "islatours/internal/auth/repository"
	authservice "islatours/internal/auth/service"
	galleryrepo "islatours/internal/gallery/repository"
	meetingrepo "islatours/internal/meetingpoints/repository"
	"islatours/internal/migrations/mongo/validators"
	privaterepo "islatours/internal/privatetours/repository"
	settingsrepo "islatours/internal/settings/repository"
	toursrepo "islatours/internal/tours/repository"
	videosrepo "islatours/internal/videos/repository"
	"islatours/pkg/logger"
)

type collectionDef struct {
	Indexes   []mongo.IndexModel
	Validator bson.M
}

var (
	ToursIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "categoria", Value: 1}}},
	}

	GalleryIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "categoria", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	VideosIndexes = []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "active", Value: 1},
			{Key: "sort_order", Value: 1},
			{Key: "created_at", Value: -1},
		}},
	}

	MeetingPointsIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "zone", Value: 1}, {Key: "title", Value: 1}}},
	}

	PrivateToursIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	TourOptionsIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "sort_order", Value: 1}, {Key: "name", Value: 1}}},
	}

	PrivateTourBookingsIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "private_tour_id", Value: 1}, {Key: "tour_date", Value: 1}}},
	}

	AdminsIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
)

// Collections lists every collection the site uses with its schema and indexes.
func Collections() map[string]collectionDef {
	return map[string]collectionDef{
		toursrepo.CollectionName:          {Indexes: ToursIndexes, Validator: validators.TourValidator},
		galleryrepo.CollectionName:        {Indexes: GalleryIndexes, Validator: validators.GalleryValidator},
		videosrepo.CollectionName:         {Indexes: VideosIndexes, Validator: validators.VideoValidator},
		meetingrepo.CollectionName:        {Indexes: MeetingPointsIndexes, Validator: validators.MeetingPointValidator},
		privaterepo.PrivateTourCollection: {Indexes: PrivateToursIndexes, Validator: validators.PrivateTourValidator},
		privaterepo.OptionCollection:      {Indexes: TourOptionsIndexes, Validator: validators.TourOptionValidator},
		privaterepo.BookingCollection:     {Indexes: PrivateTourBookingsIndexes, Validator: validators.PrivateTourBookingValidator},
		settingsrepo.CollectionName:       {Validator: validators.SiteSettingsValidator},
		authrepo.CollectionName:           {Indexes: AdminsIndexes, Validator: validators.AdminValidator},
	}
}

func RunMigration(ctx context.Context, db *mongo.Database, log *logger.Logger) error {
	log.Info("Running Mongo migrations", "database", db.Name())

	for name, def := range Collections() {
		if err := ensureCollection(ctx, db, name, def.Validator, log); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", name, err)
		}
		if err := ensureIndexes(ctx, db, name, def.Indexes, log); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", name, err)
		}
	}

	log.Info("All migrations applied successfully")
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M, log *logger.Logger) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		log.Info("Creating collection", "collection", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
		return nil
	}

	log.Info("Collection exists, updating validator", "collection", name)
	command := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	if err := db.RunCommand(ctx, command).Err(); err != nil {
		log.Warn("Failed updating validator", "collection", name, "error", err)
	}
	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel, log *logger.Logger) error {
	if len(models) == 0 {
		return nil
	}
	if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
		return err
	}
	log.Info("Ensured indexes", "collection", name, "count", len(models))
	return nil
}

// SeedAdmin creates the admin account or resets its password. The password
// is stored as a bcrypt hash.
func SeedAdmin(ctx context.Context, db *mongo.Database, username, password, name string, log *logger.Logger) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return errors.New("admin username and password are required")
	}

	hash, err := authservice.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	filter := bson.M{"username": username}
	update := bson.M{
		"$set":         bson.M{"password_hash": hash, "name": name},
		"$setOnInsert": bson.M{"username": username, "created_at": time.Now().UTC()},
	}
	res, err := db.Collection(authrepo.CollectionName).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	if res.UpsertedCount > 0 {
		log.Info("Admin account created", "username", username)
	} else {
		log.Info("Admin password updated", "username", username)
	}
	return nil
}
