package handler

import (
	"net/http"

	"islatours/internal/privatetours/service"
	"islatours/pkg/contracts"
	httputil "islatours/pkg/http"
	"islatours/pkg/logger"
	"islatours/pkg/model"
	"islatours/pkg/storage"

	"github.com/julienschmidt/httprouter"
)

type PrivateTourHandler struct {
	service   service.PrivateTourService
	options   service.OptionService
	guard     contracts.Guard
	maxMemory int64
	log       *logger.Logger
}

func NewPrivateTourHandler(service service.PrivateTourService, options service.OptionService, guard contracts.Guard, maxMemory int64, log *logger.Logger) *PrivateTourHandler {
	return &PrivateTourHandler{
		service:   service,
		options:   options,
		guard:     guard,
		maxMemory: maxMemory,
		log:       log,
	}
}

func (h *PrivateTourHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tours := h.service.List(r.Context())
	if err := httputil.WriteList(w, tours, int64(len(tours))); err != nil {
		h.log.Error("failed to write list response", "handler", "List", "operation", "WriteList", "error", err)
	}
}

func (h *PrivateTourHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tour, err := h.service.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "Get", err)
		return
	}
	if err := httputil.WriteSuccess(w, tour); err != nil {
		h.log.Error("failed to write success response", "handler", "Get", "operation", "WriteSuccess", "error", err)
	}
}

func (h *PrivateTourHandler) ListOptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	options := h.options.List(r.Context())
	if err := httputil.WriteList(w, options, int64(len(options))); err != nil {
		h.log.Error("failed to write list response", "handler", "ListOptions", "operation", "WriteList", "error", err)
	}
}

func (h *PrivateTourHandler) AdminList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tours, err := h.service.AdminList(r.Context())
	if err != nil {
		h.writeError(w, "AdminList", err)
		return
	}
	if err := httputil.WriteList(w, tours, int64(len(tours))); err != nil {
		h.log.Error("failed to write list response", "handler", "AdminList", "operation", "WriteList", "error", err)
	}
}

func (h *PrivateTourHandler) AdminGet(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tour, err := h.service.AdminGet(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "AdminGet", err)
		return
	}
	if err := httputil.WriteSuccess(w, tour); err != nil {
		h.log.Error("failed to write success response", "handler", "AdminGet", "operation", "WriteSuccess", "error", err)
	}
}

func (h *PrivateTourHandler) Save(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var tour model.PrivateTourRecord
	files, err := storage.DecodeRecord(r, &tour, h.maxMemory)
	if err != nil {
		h.writeError(w, "Save", err)
		return
	}
	defer files.Close()

	created := tour.ID == ""
	if err := h.service.Save(r.Context(), &tour, files); err != nil {
		h.writeError(w, "Save", err)
		return
	}
	h.writeSaved(w, "Save", created, tour)
}

func (h *PrivateTourHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "Delete", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *PrivateTourHandler) AdminListOptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	options, err := h.options.AdminList(r.Context())
	if err != nil {
		h.writeError(w, "AdminListOptions", err)
		return
	}
	if err := httputil.WriteList(w, options, int64(len(options))); err != nil {
		h.log.Error("failed to write list response", "handler", "AdminListOptions", "operation", "WriteList", "error", err)
	}
}

func (h *PrivateTourHandler) SaveOption(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var option model.TourOption
	if err := httputil.DecodeJSON(r, &option); err != nil {
		h.writeError(w, "SaveOption", err)
		return
	}

	created := option.ID == ""
	if err := h.options.Save(r.Context(), &option); err != nil {
		h.writeError(w, "SaveOption", err)
		return
	}
	h.writeSaved(w, "SaveOption", created, option)
}

func (h *PrivateTourHandler) DeleteOption(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.options.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "DeleteOption", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *PrivateTourHandler) writeSaved(w http.ResponseWriter, handler string, created bool, data any) {
	if created {
		if err := httputil.WriteCreated(w, data); err != nil {
			h.log.Error("failed to write created response", "handler", handler, "operation", "WriteCreated", "error", err)
		}
		return
	}
	if err := httputil.WriteSuccess(w, data); err != nil {
		h.log.Error("failed to write success response", "handler", handler, "operation", "WriteSuccess", "error", err)
	}
}

func (h *PrivateTourHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *PrivateTourHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/private-tours", h.List)
	router.GET("/api/v1/private-tours/:id", h.Get)
	router.GET("/api/v1/tour-options", h.ListOptions)

	router.GET("/api/v1/admin/private-tours", h.guard(h.AdminList))
	router.GET("/api/v1/admin/private-tours/:id", h.guard(h.AdminGet))
	router.POST("/api/v1/admin/private-tours", h.guard(h.Save))
	router.DELETE("/api/v1/admin/private-tours/:id", h.guard(h.Delete))

	router.GET("/api/v1/admin/tour-options", h.guard(h.AdminListOptions))
	router.POST("/api/v1/admin/tour-options", h.guard(h.SaveOption))
	router.DELETE("/api/v1/admin/tour-options/:id", h.guard(h.DeleteOption))
}
