package handler

import (
	"net/http"

	"islatours/internal/reviews/service"
	httputil "islatours/pkg/http"
	"islatours/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type ReviewHandler struct {
	service service.ReviewService
	log     *logger.Logger
}

func NewReviewHandler(service service.ReviewService, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{service: service, log: log}
}

func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	max, err := httputil.QueryInt(r, "max", 0)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Get", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	reviews, err := h.service.Get(r.Context(), r.URL.Query().Get("url"), max)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Get", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteList(w, reviews, int64(len(reviews))); err != nil {
		h.log.Error("failed to write list response", "handler", "Get", "operation", "WriteList", "error", err)
	}
}

func (h *ReviewHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/reviews", h.Get)
}
