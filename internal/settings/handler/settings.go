package handler

import (
	"net/http"

	"islatours/internal/settings/service"
	"islatours/pkg/contracts"
	httputil "islatours/pkg/http"
	"islatours/pkg/logger"
	"islatours/pkg/model"
	"islatours/pkg/storage"

	"github.com/julienschmidt/httprouter"
)

type SettingsHandler struct {
	service   service.SettingsService
	guard     contracts.Guard
	maxMemory int64
	log       *logger.Logger
}

func NewSettingsHandler(service service.SettingsService, guard contracts.Guard, maxMemory int64, log *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		service:   service,
		guard:     guard,
		maxMemory: maxMemory,
		log:       log,
	}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.Get(r.Context())); err != nil {
		h.log.Error("failed to write success response", "handler", "Get", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var settings model.SiteSettings
	files, err := storage.DecodeRecord(r, &settings, h.maxMemory)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Save", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	defer files.Close()

	if err := h.service.Save(r.Context(), &settings, files); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Save", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, settings); err != nil {
		h.log.Error("failed to write success response", "handler", "Save", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SettingsHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/settings", h.Get)

	router.GET("/api/v1/admin/settings", h.guard(h.Get))
	router.POST("/api/v1/admin/settings", h.guard(h.Save))
	router.PUT("/api/v1/admin/settings", h.guard(h.Save))
}
