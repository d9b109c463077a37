package handler

import (
	"net/http"

	"islatours/internal/videos/service"
	"islatours/pkg/contracts"
	httputil "islatours/pkg/http"
	"islatours/pkg/logger"
	"islatours/pkg/model"
	"islatours/pkg/storage"

	"github.com/julienschmidt/httprouter"
)

type VideoHandler struct {
	service   service.VideoService
	guard     contracts.Guard
	maxMemory int64
	log       *logger.Logger
}

func NewVideoHandler(service service.VideoService, guard contracts.Guard, maxMemory int64, log *logger.Logger) *VideoHandler {
	return &VideoHandler{
		service:   service,
		guard:     guard,
		maxMemory: maxMemory,
		log:       log,
	}
}

func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	videos := h.service.List(r.Context())
	if err := httputil.WriteList(w, videos, int64(len(videos))); err != nil {
		h.log.Error("failed to write list response", "handler", "List", "operation", "WriteList", "error", err)
	}
}

func (h *VideoHandler) AdminList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	videos, err := h.service.AdminList(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AdminList", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteList(w, videos, int64(len(videos))); err != nil {
		h.log.Error("failed to write list response", "handler", "AdminList", "operation", "WriteList", "error", err)
	}
}

func (h *VideoHandler) AdminGet(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	video, err := h.service.AdminGet(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AdminGet", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, video); err != nil {
		h.log.Error("failed to write success response", "handler", "AdminGet", "operation", "WriteSuccess", "error", err)
	}
}

// Save takes video_url and thumbnail_url either as links in the JSON record
// or as uploaded file parts.
func (h *VideoHandler) Save(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var video model.Video
	files, err := storage.DecodeRecord(r, &video, h.maxMemory)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Save", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	defer files.Close()

	created := video.ID == ""
	if err := h.service.Save(r.Context(), &video, files); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Save", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if created {
		if err := httputil.WriteCreated(w, video); err != nil {
			h.log.Error("failed to write created response", "handler", "Save", "operation", "WriteCreated", "error", err)
		}
		return
	}
	if err := httputil.WriteSuccess(w, video); err != nil {
		h.log.Error("failed to write success response", "handler", "Save", "operation", "WriteSuccess", "error", err)
	}
}

func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	httputil.WriteNoContent(w)
}

func (h *VideoHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/videos", h.List)

	router.GET("/api/v1/admin/videos", h.guard(h.AdminList))
	router.GET("/api/v1/admin/videos/:id", h.guard(h.AdminGet))
	router.POST("/api/v1/admin/videos", h.guard(h.Save))
	router.DELETE("/api/v1/admin/videos/:id", h.guard(h.Delete))
}
