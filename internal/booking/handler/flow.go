package handler

import (
	"net/http"

	"islatours/internal/booking/service"
	httputil "islatours/pkg/http"
	"islatours/pkg/i18n"
	"islatours/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type FlowHandler struct {
	service     service.FlowService
	defaultLang string
	log         *logger.Logger
}

func NewFlowHandler(service service.FlowService, defaultLang string, log *logger.Logger) *FlowHandler {
	return &FlowHandler{service: service, defaultLang: defaultLang, log: log}
}

func (h *FlowHandler) Advance(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req service.FlowRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Advance", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	resp, err := h.service.Advance(r.Context(), &req, i18n.Resolve(r, h.defaultLang))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Advance", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "Advance", "operation", "WriteSuccess", "error", err)
	}
}

func (h *FlowHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/booking-flow", h.Advance)
}
