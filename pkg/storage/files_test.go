package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "islatours/pkg/errors"
	"islatours/pkg/logger"
	"islatours/pkg/model"

	"github.com/julienschmidt/httprouter"
)

var testURLs = URLs{BaseURL: "https://islatours.test"}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newTestFiles(bucket *MemoryBucket) *Files {
	f := NewFiles(bucket, testURLs, "gallery", 1920, logger.Discard())
	f.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return f
}

func TestNewObjectPath(t *testing.T) {
	p := NewObjectPath("tours", ".JPG", time.UnixMilli(1700000000123))
	if !strings.HasPrefix(p, "tours/1700000000123_") || !strings.HasSuffix(p, ".jpg") {
		t.Errorf("unexpected path %q", p)
	}
}

func TestURLs_RoundTrip(t *testing.T) {
	url := testURLs.Public(BucketGallery, "gallery/1_a.jpg")
	if url != "https://islatours.test/storage/galery/gallery/1_a.jpg" {
		t.Fatalf("Public() = %q", url)
	}
	p, ok := testURLs.PathFrom(BucketGallery, url)
	if !ok || p != "gallery/1_a.jpg" {
		t.Errorf("PathFrom() = %q, %v", p, ok)
	}
	if _, ok := testURLs.PathFrom(BucketPackages, url); ok {
		t.Error("URL from another bucket must not resolve")
	}
	if _, ok := testURLs.PathFrom(BucketGallery, "https://youtube.com/watch?v=1"); ok {
		t.Error("foreign URL must not resolve")
	}
}

func TestApply_ReplaceThenCommit(t *testing.T) {
	bucket := NewMemoryBucket(BucketGallery)
	files := newTestFiles(bucket)
	ctx := context.Background()

	oldURL, err := files.Store(ctx, Upload{Field: "imagen_portada", Filename: "a.png", Content: bytes.NewReader(pngBytes(t))})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	record := &model.GalleryRecord{ImagenPortada: &oldURL}
	changes, err := files.Apply(ctx, record.FileSlots(), []Upload{
		{Field: "imagen_portada", Filename: "b.png", Content: bytes.NewReader(pngBytes(t))},
	}, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if *record.ImagenPortada == oldURL {
		t.Fatal("slot should point at the new upload")
	}
	if bucket.Len() != 2 {
		t.Fatalf("expected old and new blob before commit, got %d", bucket.Len())
	}

	changes.Commit(ctx)
	if bucket.Len() != 1 {
		t.Errorf("expected only the new blob after commit, got %d", bucket.Len())
	}
}

func TestApply_Rollback(t *testing.T) {
	bucket := NewMemoryBucket(BucketGallery)
	files := newTestFiles(bucket)
	ctx := context.Background()

	record := &model.GalleryRecord{}
	changes, err := files.Apply(ctx, record.FileSlots(), []Upload{
		{Field: "imagen2", Filename: "b.png", Content: bytes.NewReader(pngBytes(t))},
	}, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	changes.Rollback(ctx)
	if bucket.Len() != 0 {
		t.Errorf("rollback should remove the new blob, %d left", bucket.Len())
	}
}

func TestApply_BadUploadRemovesEarlierOnes(t *testing.T) {
	bucket := NewMemoryBucket(BucketGallery)
	files := newTestFiles(bucket)

	record := &model.GalleryRecord{}
	_, err := files.Apply(context.Background(), record.FileSlots(), []Upload{
		{Field: "imagen2", Filename: "ok.png", Content: bytes.NewReader(pngBytes(t))},
		{Field: "imagen3", Filename: "bad.png", Content: strings.NewReader("plain text")},
	}, nil)
	if err == nil {
		t.Fatal("expected error for unsupported upload")
	}
	if bucket.Len() != 0 {
		t.Errorf("expected earlier upload to be removed, %d left", bucket.Len())
	}
}

// mp4Bytes is an ftyp box with an mp42 brand, enough for content sniffing.
func mp4Bytes() []byte {
	box := []byte{0x00, 0x00, 0x00, 0x18}
	box = append(box, "ftypmp42"...)
	box = append(box, 0x00, 0x00, 0x00, 0x00)
	box = append(box, "mp42isom"...)
	return append(box, make([]byte, 64)...)
}

func TestApply_RejectsWrongKindForSlot(t *testing.T) {
	tests := []struct {
		name   string
		slots  func() []model.FileSlot
		upload Upload
	}{
		{
			name:   "image posted as video",
			slots:  func() []model.FileSlot { return (&model.Video{}).FileSlots() },
			upload: Upload{Field: "video_url", Filename: "clip.png", Content: bytes.NewReader(pngBytes(t))},
		},
		{
			name:   "video posted as logo",
			slots:  func() []model.FileSlot { return (&model.SiteSettings{}).FileSlots() },
			upload: Upload{Field: "logo_url", Filename: "logo.mp4", Content: bytes.NewReader(mp4Bytes())},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket := NewMemoryBucket(BucketGallery)
			files := newTestFiles(bucket)

			_, err := files.Apply(context.Background(), tt.slots(), []Upload{tt.upload}, nil)
			if !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
			if appErr := apperrors.AsAppError(err); appErr.Details["field"] != tt.upload.Field {
				t.Errorf("expected field detail %q, got %v", tt.upload.Field, appErr.Details)
			}
			if bucket.Len() != 0 {
				t.Errorf("rejected upload must not be stored, %d blobs", bucket.Len())
			}
		})
	}
}

func TestApply_ImageIntoThumbnailSlot(t *testing.T) {
	bucket := NewMemoryBucket(BucketGallery)
	files := newTestFiles(bucket)

	video := &model.Video{}
	if _, err := files.Apply(context.Background(), video.FileSlots(), []Upload{
		{Field: "thumbnail_url", Filename: "thumb.png", Content: bytes.NewReader(pngBytes(t))},
	}, nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if video.ThumbnailURL == nil {
		t.Error("thumbnail slot should be set")
	}
}

func TestApply_Clear(t *testing.T) {
	bucket := NewMemoryBucket(BucketGallery)
	files := newTestFiles(bucket)
	ctx := context.Background()

	url, _ := files.Store(ctx, Upload{Field: "imagen2", Filename: "a.png", Content: bytes.NewReader(pngBytes(t))})
	record := &model.GalleryRecord{Imagen2: &url}

	changes, err := files.Apply(ctx, record.FileSlots(), nil, []string{"imagen2"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if record.Imagen2 != nil {
		t.Error("cleared slot should be nil")
	}
	changes.Commit(ctx)
	if bucket.Len() != 0 {
		t.Error("cleared blob should be removed on commit")
	}
}

func TestRemoveAll_ContinuesAfterFailure(t *testing.T) {
	bucket := NewMemoryBucket(BucketGallery)
	files := newTestFiles(bucket)
	ctx := context.Background()

	first, _ := files.Store(ctx, Upload{Field: "imagen_portada", Filename: "a.png", Content: bytes.NewReader(pngBytes(t))})
	second, _ := files.Store(ctx, Upload{Field: "imagen2", Filename: "b.png", Content: bytes.NewReader(pngBytes(t))})
	firstPath, _ := testURLs.PathFrom(BucketGallery, first)
	bucket.FailRemove[firstPath] = errors.New("storage offline")

	record := &model.GalleryRecord{ImagenPortada: &first, Imagen2: &second}
	errs := files.RemoveAll(ctx, record.FileSlots())

	if len(errs) != 1 {
		t.Fatalf("expected one failure, got %v", errs)
	}
	secondPath, _ := testURLs.PathFrom(BucketGallery, second)
	if bucket.Has(secondPath) {
		t.Error("second blob should still be removed")
	}
}

func TestHandler_Serve(t *testing.T) {
	bucket := NewMemoryBucket(BucketPackages)
	_ = bucket.Upload(context.Background(), "tours/1_x.png", bytes.NewReader([]byte("png-bytes")), "image/png")

	router := httprouter.New()
	NewHandler(logger.Discard(), bucket).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/storage/paquetes/tours/1_x.png", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "png-bytes" {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Content-Type") != "image/png" {
		t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/storage/paquetes/missing.png", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing object status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/storage/other/tours/1_x.png", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown bucket status = %d", rec.Code)
	}
}

func TestSave_WriteFailureRemovesNewBlob(t *testing.T) {
	bucket := NewMemoryBucket(BucketGallery)
	files := newTestFiles(bucket)
	ctx := context.Background()

	record := &model.GalleryRecord{}
	err := files.Save(ctx, nil, record.FileSlots(), []Upload{
		{Field: "imagen_portada", Filename: "a.png", Content: bytes.NewReader(pngBytes(t))},
	}, nil, func() error { return errors.New("insert failed") })

	if err == nil || err.Error() != "insert failed" {
		t.Fatalf("expected write error, got %v", err)
	}
	if bucket.Len() != 0 {
		t.Errorf("orphaned upload left behind: %d blobs", bucket.Len())
	}
}

func TestSave_UpdateKeepsStoredSlotsAndDropsReplaced(t *testing.T) {
	bucket := NewMemoryBucket(BucketGallery)
	files := newTestFiles(bucket)
	ctx := context.Background()

	cover, _ := files.Store(ctx, Upload{Field: "imagen_portada", Filename: "a.png", Content: bytes.NewReader(pngBytes(t))})
	second, _ := files.Store(ctx, Upload{Field: "imagen2", Filename: "b.png", Content: bytes.NewReader(pngBytes(t))})
	stored := &model.GalleryRecord{ImagenPortada: &cover, Imagen2: &second}

	incoming := &model.GalleryRecord{Titulo: "Reef"}
	written := false
	err := files.Save(ctx, stored.FileSlots(), incoming.FileSlots(), []Upload{
		{Field: "imagen2", Filename: "c.png", Content: bytes.NewReader(pngBytes(t))},
	}, nil, func() error {
		written = true
		return nil
	})
	if err != nil || !written {
		t.Fatalf("Save: %v written=%v", err, written)
	}

	if incoming.ImagenPortada == nil || *incoming.ImagenPortada != cover {
		t.Error("untouched slot should keep the stored URL")
	}
	if incoming.Imagen2 == nil || *incoming.Imagen2 == second {
		t.Error("uploaded slot should hold the new URL")
	}
	secondPath, _ := testURLs.PathFrom(BucketGallery, second)
	if bucket.Has(secondPath) {
		t.Error("replaced blob should be removed")
	}
	if bucket.Len() != 2 {
		t.Errorf("expected cover and new blob, got %d", bucket.Len())
	}
}
