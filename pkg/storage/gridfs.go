package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	mongodb "islatours/pkg/db/mongo"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type gridFSBucket struct {
	db      *mongo.Database
	name    string
	timeout time.Duration
}

// NewGridFSBucket stores objects in the <name>.files / <name>.chunks collections.
func NewGridFSBucket(db *mongo.Database, name string, timeout time.Duration) Bucket {
	return &gridFSBucket{db: db, name: name, timeout: timeout}
}

func (b *gridFSBucket) Name() string {
	return b.name
}

// bucket builds a fresh handle per call because GridFS deadlines are set on
// the handle rather than passed per operation.
func (b *gridFSBucket) bucket(ctx context.Context) (*gridfs.Bucket, error) {
	bucket, err := gridfs.NewBucket(b.db, options.GridFSBucket().SetName(b.name))
	if err != nil {
		return nil, fmt.Errorf("opening bucket %s: %w", b.name, err)
	}
	deadline := time.Now().Add(b.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := bucket.SetReadDeadline(deadline); err != nil {
		return nil, err
	}
	if err := bucket.SetWriteDeadline(deadline); err != nil {
		return nil, err
	}
	return bucket, nil
}

func (b *gridFSBucket) Upload(ctx context.Context, objectPath string, r io.Reader, contentType string) error {
	bucket, err := b.bucket(ctx)
	if err != nil {
		return err
	}
	opts := options.GridFSUpload().SetMetadata(bson.D{{Key: "content_type", Value: contentType}})
	if _, err := bucket.UploadFromStream(objectPath, r, opts); err != nil {
		return fmt.Errorf("uploading %s/%s: %w", b.name, objectPath, err)
	}
	return nil
}

func (b *gridFSBucket) Remove(ctx context.Context, objectPath string) error {
	ctx, cancel := mongodb.WithTimeout(ctx, b.timeout)
	defer cancel()

	var file struct {
		ID any `bson:"_id"`
	}
	err := b.db.Collection(b.name+".files").FindOne(ctx, bson.M{"filename": objectPath}).Decode(&file)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("%w: %s/%s", ErrObjectNotFound, b.name, objectPath)
		}
		return fmt.Errorf("finding %s/%s: %w", b.name, objectPath, err)
	}

	bucket, err := b.bucket(ctx)
	if err != nil {
		return err
	}
	if err := bucket.Delete(file.ID); err != nil {
		return fmt.Errorf("removing %s/%s: %w", b.name, objectPath, err)
	}
	return nil
}

func (b *gridFSBucket) Open(ctx context.Context, objectPath string) (io.ReadCloser, *ObjectInfo, error) {
	bucket, err := b.bucket(ctx)
	if err != nil {
		return nil, nil, err
	}
	stream, err := bucket.OpenDownloadStreamByName(objectPath)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, fmt.Errorf("%w: %s/%s", ErrObjectNotFound, b.name, objectPath)
		}
		return nil, nil, fmt.Errorf("opening %s/%s: %w", b.name, objectPath, err)
	}

	file := stream.GetFile()
	info := &ObjectInfo{
		Path:       objectPath,
		Size:       file.Length,
		UploadedAt: file.UploadDate,
	}
	var meta struct {
		ContentType string `bson:"content_type"`
	}
	if len(file.Metadata) > 0 && bson.Unmarshal(file.Metadata, &meta) == nil {
		info.ContentType = meta.ContentType
	}
	return stream, info, nil
}
