package handler

import (
	"net/http"

	"islatours/internal/gallery/service"
	"islatours/pkg/contracts"
	httputil "islatours/pkg/http"
	"islatours/pkg/logger"
	"islatours/pkg/model"
	"islatours/pkg/storage"

	"github.com/julienschmidt/httprouter"
)

type GalleryHandler struct {
	service   service.GalleryService
	guard     contracts.Guard
	maxMemory int64
	log       *logger.Logger
}

func NewGalleryHandler(service service.GalleryService, guard contracts.Guard, maxMemory int64, log *logger.Logger) *GalleryHandler {
	return &GalleryHandler{
		service:   service,
		guard:     guard,
		maxMemory: maxMemory,
		log:       log,
	}
}

func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	items := h.service.List(r.Context(), r.URL.Query().Get("category"))
	if err := httputil.WriteList(w, items, int64(len(items))); err != nil {
		h.log.Error("failed to write list response", "handler", "List", "operation", "WriteList", "error", err)
	}
}

func (h *GalleryHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	item, err := h.service.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Get", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, item); err != nil {
		h.log.Error("failed to write success response", "handler", "Get", "operation", "WriteSuccess", "error", err)
	}
}

// Viewer serves the lightbox: ?index=<current>&action=next|prev|first|last.
// Keyboard keys (ArrowLeft, ArrowRight, Home, End) are accepted as actions too.
func (h *GalleryHandler) Viewer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	index, err := httputil.QueryInt(r, "index", 0)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Viewer", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	view, err := h.service.View(r.Context(), ps.ByName("id"), index, r.URL.Query().Get("action"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Viewer", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, view); err != nil {
		h.log.Error("failed to write success response", "handler", "Viewer", "operation", "WriteSuccess", "error", err)
	}
}

func (h *GalleryHandler) AdminList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	items, err := h.service.AdminList(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AdminList", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteList(w, items, int64(len(items))); err != nil {
		h.log.Error("failed to write list response", "handler", "AdminList", "operation", "WriteList", "error", err)
	}
}

func (h *GalleryHandler) AdminGet(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	item, err := h.service.AdminGet(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AdminGet", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, item); err != nil {
		h.log.Error("failed to write success response", "handler", "AdminGet", "operation", "WriteSuccess", "error", err)
	}
}

func (h *GalleryHandler) Save(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var item model.GalleryRecord
	files, err := storage.DecodeRecord(r, &item, h.maxMemory)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Save", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	defer files.Close()

	created := item.ID == ""
	if err := h.service.Save(r.Context(), &item, files); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Save", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if created {
		if err := httputil.WriteCreated(w, item); err != nil {
			h.log.Error("failed to write created response", "handler", "Save", "operation", "WriteCreated", "error", err)
		}
		return
	}
	if err := httputil.WriteSuccess(w, item); err != nil {
		h.log.Error("failed to write success response", "handler", "Save", "operation", "WriteSuccess", "error", err)
	}
}

func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	httputil.WriteNoContent(w)
}

func (h *GalleryHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/gallery", h.List)
	router.GET("/api/v1/gallery/:id", h.Get)
	router.GET("/api/v1/gallery/:id/viewer", h.Viewer)

	router.GET("/api/v1/admin/gallery", h.guard(h.AdminList))
	router.GET("/api/v1/admin/gallery/:id", h.guard(h.AdminGet))
	router.POST("/api/v1/admin/gallery", h.guard(h.Save))
	router.DELETE("/api/v1/admin/gallery/:id", h.guard(h.Delete))
}
