package handler

import (
	"net/http"

	"islatours/internal/meetingpoints/service"
	"islatours/pkg/contracts"
	httputil "islatours/pkg/http"
	"islatours/pkg/logger"
	"islatours/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type MeetingPointHandler struct {
	service service.MeetingPointService
	guard   contracts.Guard
	log     *logger.Logger
}

func NewMeetingPointHandler(service service.MeetingPointService, guard contracts.Guard, log *logger.Logger) *MeetingPointHandler {
	return &MeetingPointHandler{
		service: service,
		guard:   guard,
		log:     log,
	}
}

func (h *MeetingPointHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	points := h.service.List(r.Context())
	if err := httputil.WriteList(w, points, int64(len(points))); err != nil {
		h.log.Error("failed to write list response", "handler", "List", "operation", "WriteList", "error", err)
	}
}

func (h *MeetingPointHandler) AdminList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	points, err := h.service.AdminList(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AdminList", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteList(w, points, int64(len(points))); err != nil {
		h.log.Error("failed to write list response", "handler", "AdminList", "operation", "WriteList", "error", err)
	}
}

func (h *MeetingPointHandler) AdminGet(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	point, err := h.service.AdminGet(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AdminGet", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, point); err != nil {
		h.log.Error("failed to write success response", "handler", "AdminGet", "operation", "WriteSuccess", "error", err)
	}
}

func (h *MeetingPointHandler) Save(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var point model.MeetingPoint
	if err := httputil.DecodeJSON(r, &point); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Save", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	created := point.ID == ""
	if err := h.service.Save(r.Context(), &point); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Save", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if created {
		if err := httputil.WriteCreated(w, point); err != nil {
			h.log.Error("failed to write created response", "handler", "Save", "operation", "WriteCreated", "error", err)
		}
		return
	}
	if err := httputil.WriteSuccess(w, point); err != nil {
		h.log.Error("failed to write success response", "handler", "Save", "operation", "WriteSuccess", "error", err)
	}
}

func (h *MeetingPointHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	httputil.WriteNoContent(w)
}

func (h *MeetingPointHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/meeting-points", h.List)

	router.GET("/api/v1/admin/meeting-points", h.guard(h.AdminList))
	router.GET("/api/v1/admin/meeting-points/:id", h.guard(h.AdminGet))
	router.POST("/api/v1/admin/meeting-points", h.guard(h.Save))
	router.DELETE("/api/v1/admin/meeting-points/:id", h.guard(h.Delete))
}
