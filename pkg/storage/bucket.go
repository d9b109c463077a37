package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	BucketGallery  = "galery"
	BucketPackages = "paquetes"

	RoutePrefix = "/storage/"
)

var ErrObjectNotFound = errors.New("object not found")

type ObjectInfo struct {
	Path        string
	Size        int64
	ContentType string
	UploadedAt  time.Time
}

// Bucket is a named blob store addressed by path.
type Bucket interface {
	Name() string
	Upload(ctx context.Context, objectPath string, r io.Reader, contentType string) error
	Remove(ctx context.Context, objectPath string) error
	Open(ctx context.Context, objectPath string) (io.ReadCloser, *ObjectInfo, error)
}

// NewObjectPath builds <prefix>/<unix_ms>_<uuid><ext>.
func NewObjectPath(prefix, ext string, now time.Time) string {
	name := fmt.Sprintf("%d_%s%s", now.UnixMilli(), uuid.NewString(), strings.ToLower(ext))
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// URLs maps object paths to the public URLs served by Handler and back.
type URLs struct {
	BaseURL string
}

func (u URLs) Public(bucket, objectPath string) string {
	return strings.TrimRight(u.BaseURL, "/") + RoutePrefix + bucket + "/" + strings.TrimLeft(objectPath, "/")
}

// PathFrom returns the object path of a URL produced by Public for bucket.
// URLs pointing anywhere else (pasted links, other buckets) report false.
func (u URLs) PathFrom(bucket, publicURL string) (string, bool) {
	prefix := strings.TrimRight(u.BaseURL, "/") + RoutePrefix + bucket + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}
	p := strings.TrimPrefix(publicURL, prefix)
	if p == "" || strings.Contains(p, "..") {
		return "", false
	}
	return p, true
}
