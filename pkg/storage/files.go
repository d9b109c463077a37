package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	apperrors "islatours/pkg/errors"
	"islatours/pkg/logger"
	"islatours/pkg/media"
	"islatours/pkg/model"
)

// Upload is one file posted for a record column. An empty Kind accepts any
// allowed media.
type Upload struct {
	Field    string
	Filename string
	Content  io.Reader
	Kind     media.Kind
}

// Files manages the blobs behind a record's file columns inside one bucket.
type Files struct {
	bucket   Bucket
	urls     URLs
	prefix   string
	maxWidth int
	log      *logger.Logger
	now      func() time.Time
}

func NewFiles(bucket Bucket, urls URLs, prefix string, maxWidth int, log *logger.Logger) *Files {
	return &Files{
		bucket:   bucket,
		urls:     urls,
		prefix:   prefix,
		maxWidth: maxWidth,
		log:      log,
		now:      time.Now,
	}
}

// Store normalizes and uploads a single file, returning its public URL.
func (f *Files) Store(ctx context.Context, up Upload) (string, error) {
	file, err := media.Prepare(up.Content, up.Filename, f.maxWidth)
	if err != nil {
		return "", apperrors.InvalidInput(err.Error()).WithDetail("field", up.Field)
	}
	if up.Kind != "" && file.Kind != up.Kind {
		return "", apperrors.InvalidInput(fmt.Sprintf("%s only accepts %s files, got %s", up.Field, up.Kind, file.ContentType)).
			WithDetail("field", up.Field)
	}

	objectPath := NewObjectPath(f.prefix, file.Ext, f.now())
	if err := f.bucket.Upload(ctx, objectPath, bytes.NewReader(file.Data), file.ContentType); err != nil {
		return "", apperrors.UploadFailed(up.Field, err)
	}
	f.log.Info("File uploaded", "bucket", f.bucket.Name(), "path", objectPath, "field", up.Field, "size", len(file.Data))
	return f.urls.Public(f.bucket.Name(), objectPath), nil
}

// RemoveURL deletes the blob behind url. URLs that do not belong to the
// bucket are skipped and reported as not removed.
func (f *Files) RemoveURL(ctx context.Context, url string) (bool, error) {
	objectPath, ok := f.urls.PathFrom(f.bucket.Name(), url)
	if !ok {
		return false, nil
	}
	if err := f.bucket.Remove(ctx, objectPath); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveAll deletes every populated slot. Failures are logged and returned
// but never stop the remaining removals.
func (f *Files) RemoveAll(ctx context.Context, slots []model.FileSlot) []error {
	var errs []error
	for _, slot := range slots {
		url := slot.Value()
		if url == "" {
			continue
		}
		if _, err := f.RemoveURL(ctx, url); err != nil {
			f.log.Warn("Failed to remove file", "bucket", f.bucket.Name(), "field", slot.Field, "url", url, "error", err)
			errs = append(errs, err)
		}
	}
	return errs
}

// Changes tracks blobs written and superseded by Apply so the caller can
// commit or roll back once the row write is known.
type Changes struct {
	files      *Files
	added      []string
	superseded []string
}

// Apply uploads files into their slots and clears the slots named in clear.
// On an upload failure the blobs already written by this call are removed.
func (f *Files) Apply(ctx context.Context, slots []model.FileSlot, uploads []Upload, clear []string) (*Changes, error) {
	changes := &Changes{files: f}

	for _, field := range clear {
		slot, ok := model.FindSlot(slots, field)
		if !ok {
			continue
		}
		if old := slot.Value(); old != "" {
			changes.superseded = append(changes.superseded, old)
		}
		slot.Set("")
	}

	for _, up := range uploads {
		slot, ok := model.FindSlot(slots, up.Field)
		if !ok {
			changes.Rollback(ctx)
			return nil, apperrors.InvalidInput("unknown file field: " + up.Field)
		}
		up.Kind = slot.Kind
		url, err := f.Store(ctx, up)
		if err != nil {
			changes.Rollback(ctx)
			return nil, err
		}
		if old := slot.Value(); old != "" {
			changes.superseded = append(changes.superseded, old)
		}
		slot.Set(url)
		changes.added = append(changes.added, url)
	}
	return changes, nil
}

// Commit removes the blobs replaced or cleared by Apply.
func (c *Changes) Commit(ctx context.Context) {
	c.remove(ctx, c.superseded, "Failed to remove replaced file")
}

// Rollback removes the blobs uploaded by Apply after a failed row write.
func (c *Changes) Rollback(ctx context.Context) {
	c.remove(ctx, c.added, "Failed to remove orphaned upload")
}

func (c *Changes) remove(ctx context.Context, urls []string, msg string) {
	for _, url := range urls {
		if _, err := c.files.RemoveURL(ctx, url); err != nil {
			c.files.log.Warn(msg, "bucket", c.files.bucket.Name(), "url", url, "error", err)
		}
	}
}

// RemoveSuffix marks a form field asking to clear a file column, e.g. "imagen2_remove".
const RemoveSuffix = "_remove"

// UploadsFromForm collects the file parts and clear flags matching slots.
// The returned closer releases the opened parts.
func UploadsFromForm(form *multipart.Form, slots []model.FileSlot) ([]Upload, []string, func(), error) {
	var (
		uploads []Upload
		clear   []string
		opened  []multipart.File
	)
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	if form == nil {
		return nil, nil, closeAll, nil
	}

	for _, slot := range slots {
		if headers := form.File[slot.Field]; len(headers) > 0 {
			f, err := headers[0].Open()
			if err != nil {
				closeAll()
				return nil, nil, func() {}, apperrors.InvalidInput("Cannot read file " + slot.Field)
			}
			opened = append(opened, f)
			uploads = append(uploads, Upload{Field: slot.Field, Filename: headers[0].Filename, Content: f, Kind: slot.Kind})
			continue
		}
		if values := form.Value[slot.Field+RemoveSuffix]; len(values) > 0 && values[0] == "true" {
			clear = append(clear, slot.Field)
		}
	}
	return uploads, clear, closeAll, nil
}

// KeepSlots fills empty incoming slots from the stored record and returns the
// stored URLs that the incoming record replaces with a different value.
func KeepSlots(stored, incoming []model.FileSlot) []string {
	var replaced []string
	for _, in := range incoming {
		old, ok := model.FindSlot(stored, in.Field)
		if !ok {
			continue
		}
		switch current := in.Value(); {
		case current == "":
			in.Set(old.Value())
		case old.Value() != "" && old.Value() != current:
			replaced = append(replaced, old.Value())
		}
	}
	return replaced
}

// Supersede schedules extra URLs for removal on Commit.
func (c *Changes) Supersede(urls ...string) {
	c.superseded = append(c.superseded, urls...)
}

// Save applies uploads and clears to incoming, then runs write. stored holds
// the slots of the existing row and is nil for inserts. When write fails the
// new blobs are removed; otherwise the blobs no longer referenced are.
func (f *Files) Save(ctx context.Context, stored, incoming []model.FileSlot, uploads []Upload, clear []string, write func() error) error {
	replaced := KeepSlots(stored, incoming)

	changes, err := f.Apply(ctx, incoming, uploads, clear)
	if err != nil {
		return err
	}
	if err := write(); err != nil {
		changes.Rollback(ctx)
		return err
	}
	changes.Supersede(replaced...)
	changes.Commit(ctx)
	return nil
}
