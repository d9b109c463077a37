package handler

import (
	"net/http"

	"islatours/internal/tours/service"
	"islatours/pkg/contracts"
	httputil "islatours/pkg/http"
	"islatours/pkg/logger"
	"islatours/pkg/model"
	"islatours/pkg/storage"

	"github.com/julienschmidt/httprouter"
)

type TourHandler struct {
	service   service.TourService
	guard     contracts.Guard
	maxMemory int64
	log       *logger.Logger
}

func NewTourHandler(service service.TourService, guard contracts.Guard, maxMemory int64, log *logger.Logger) *TourHandler {
	return &TourHandler{
		service:   service,
		guard:     guard,
		maxMemory: maxMemory,
		log:       log,
	}
}

func (h *TourHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tours := h.service.List(r.Context())
	if err := httputil.WriteList(w, tours, int64(len(tours))); err != nil {
		h.log.Error("failed to write list response", "handler", "List", "operation", "WriteList", "error", err)
	}
}

func (h *TourHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tour, err := h.service.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Get", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, tour); err != nil {
		h.log.Error("failed to write success response", "handler", "Get", "operation", "WriteSuccess", "error", err)
	}
}

func (h *TourHandler) AdminList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tours, err := h.service.AdminList(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AdminList", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteList(w, tours, int64(len(tours))); err != nil {
		h.log.Error("failed to write list response", "handler", "AdminList", "operation", "WriteList", "error", err)
	}
}

func (h *TourHandler) AdminGet(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tour, err := h.service.AdminGet(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AdminGet", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, tour); err != nil {
		h.log.Error("failed to write success response", "handler", "AdminGet", "operation", "WriteSuccess", "error", err)
	}
}

// Save accepts JSON or multipart with a "data" part plus imagenN file parts.
func (h *TourHandler) Save(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var tour model.TourRecord
	files, err := storage.DecodeRecord(r, &tour, h.maxMemory)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Save", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	defer files.Close()

	created := tour.ID == ""
	if err := h.service.Save(r.Context(), &tour, files); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Save", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if created {
		if err := httputil.WriteCreated(w, tour); err != nil {
			h.log.Error("failed to write created response", "handler", "Save", "operation", "WriteCreated", "error", err)
		}
		return
	}
	if err := httputil.WriteSuccess(w, tour); err != nil {
		h.log.Error("failed to write success response", "handler", "Save", "operation", "WriteSuccess", "error", err)
	}
}

func (h *TourHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	httputil.WriteNoContent(w)
}

func (h *TourHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/tours", h.List)
	router.GET("/api/v1/tours/:id", h.Get)

	router.GET("/api/v1/admin/tours", h.guard(h.AdminList))
	router.GET("/api/v1/admin/tours/:id", h.guard(h.AdminGet))
	router.POST("/api/v1/admin/tours", h.guard(h.Save))
	router.DELETE("/api/v1/admin/tours/:id", h.guard(h.Delete))
}
