package storage

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	apperrors "islatours/pkg/errors"
	httputil "islatours/pkg/http"
	"islatours/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

// Handler serves public objects at /storage/:bucket/*path.
type Handler struct {
	buckets map[string]Bucket
	log     *logger.Logger
}

func NewHandler(log *logger.Logger, buckets ...Bucket) *Handler {
	m := make(map[string]Bucket, len(buckets))
	for _, b := range buckets {
		m[b.Name()] = b
	}
	return &Handler{buckets: m, log: log}
}

func (h *Handler) Serve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bucket, ok := h.buckets[ps.ByName("bucket")]
	objectPath := strings.TrimPrefix(ps.ByName("path"), "/")
	if !ok || objectPath == "" || strings.Contains(objectPath, "..") {
		if err := httputil.WriteError(w, apperrors.NotFound("File")); err != nil {
			h.log.Error("failed to write error response", "handler", "Serve", "operation", "WriteError", "error", err)
		}
		return
	}

	body, info, err := bucket.Open(r.Context(), objectPath)
	if err != nil {
		var appErr error = apperrors.Internal("Failed to read file", err)
		if errors.Is(err, ErrObjectNotFound) {
			appErr = apperrors.NotFound("File")
		} else {
			h.log.Error("Failed to open stored file", "bucket", bucket.Name(), "path", objectPath, "error", err)
		}
		if writeErr := httputil.WriteError(w, appErr); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Serve", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	defer body.Close()

	if info.ContentType != "" {
		w.Header().Set("Content-Type", info.ContentType)
	}
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		h.log.Warn("Failed to stream file", "bucket", bucket.Name(), "path", objectPath, "error", err)
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/storage/:bucket/*path", h.Serve)
}
