package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sentinels lets each domain keep its own not-found and invalid-id errors.
type Sentinels struct {
	NotFound  error
	InvalidID error
}

type Timeouts struct {
	Read  time.Duration
	Write time.Duration
}

// Store is the typed collection helper behind every repository. T is the
// record type stored in the collection.
type Store[T any] struct {
	collection *mongo.Collection
	sentinels  Sentinels
	timeouts   Timeouts
}

func NewStore[T any](collection *mongo.Collection, sentinels Sentinels, timeouts Timeouts) *Store[T] {
	return &Store[T]{
		collection: collection,
		sentinels:  sentinels,
		timeouts:   timeouts,
	}
}

func (s *Store[T]) Collection() *mongo.Collection {
	return s.collection
}

// WithTimeout wraps the context with a timeout if not already in a transaction.
// A SessionContext is returned unchanged, since wrapping it breaks transaction semantics.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			return context.WithTimeout(ctx, remaining)
		}
	}
	return context.WithTimeout(ctx, timeout)
}

func (s *Store[T]) objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", s.sentinels.InvalidID, id)
	}
	return oid, nil
}

func (s *Store[T]) Find(ctx context.Context, filter bson.M, sort bson.D, limit int64) ([]*T, error) {
	ctx, cancel := WithTimeout(ctx, s.timeouts.Read)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", s.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	records := []*T{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.collection.Name(), err)
	}
	return records, nil
}

func (s *Store[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := WithTimeout(ctx, s.timeouts.Read)
	defer cancel()

	var record T
	err := s.collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, s.sentinels.NotFound
		}
		return nil, fmt.Errorf("failed to find %s: %w", s.collection.Name(), err)
	}
	return &record, nil
}

func (s *Store[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := s.objectID(id)
	if err != nil {
		return nil, err
	}
	record, err := s.FindOne(ctx, bson.M{"_id": oid})
	if errors.Is(err, s.sentinels.NotFound) {
		return nil, fmt.Errorf("%w: %s", s.sentinels.NotFound, id)
	}
	return record, err
}

// Insert stores record and returns the generated id as a hex string.
func (s *Store[T]) Insert(ctx context.Context, record *T) (string, error) {
	ctx, cancel := WithTimeout(ctx, s.timeouts.Write)
	defer cancel()

	result, err := s.collection.InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", s.collection.Name(), err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(result.InsertedID), nil
}

// Set applies a $set with an explicit field list.
func (s *Store[T]) Set(ctx context.Context, id string, fields bson.M) error {
	oid, err := s.objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := WithTimeout(ctx, s.timeouts.Write)
	defer cancel()

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", s.collection.Name(), err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", s.sentinels.NotFound, id)
	}
	return nil
}

func (s *Store[T]) Delete(ctx context.Context, id string) error {
	oid, err := s.objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := WithTimeout(ctx, s.timeouts.Write)
	defer cancel()

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", s.collection.Name(), err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", s.sentinels.NotFound, id)
	}
	return nil
}

func (s *Store[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := WithTimeout(ctx, s.timeouts.Read)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", s.collection.Name(), err)
	}
	return count, nil
}

// Replace overwrites every stored field of the record with the given id.
// The record's own _id is ignored so callers can pass a decoded row back in.
func (s *Store[T]) Replace(ctx context.Context, id string, record *T) error {
	oid, err := s.objectID(id)
	if err != nil {
		return err
	}

	raw, err := bson.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.collection.Name(), err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.collection.Name(), err)
	}
	delete(doc, "_id")

	ctx, cancel := WithTimeout(ctx, s.timeouts.Write)
	defer cancel()

	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("failed to replace in %s: %w", s.collection.Name(), err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", s.sentinels.NotFound, id)
	}
	return nil
}
