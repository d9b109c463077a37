package handler

import (
	"net/http"
	"strings"

	"islatours/internal/privatetours/service"
	"islatours/pkg/contracts"
	httputil "islatours/pkg/http"
	"islatours/pkg/logger"
	"islatours/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	guard   contracts.Guard
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, guard contracts.Guard, log *logger.Logger) *BookingHandler {
	return &BookingHandler{service: service, guard: guard, log: log}
}

func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "Quote", err)
		return
	}
	quote, err := h.service.Quote(r.Context(), &req)
	if err != nil {
		h.writeError(w, "Quote", err)
		return
	}
	if err := httputil.WriteSuccess(w, quote); err != nil {
		h.log.Error("failed to write success response", "handler", "Quote", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "Book", err)
		return
	}
	confirmation, err := h.service.Book(r.Context(), &req)
	if err != nil {
		h.writeError(w, "Book", err)
		return
	}
	if err := httputil.WriteCreated(w, confirmation); err != nil {
		h.log.Error("failed to write created response", "handler", "Book", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) Confirmation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	receipt, err := h.service.Confirmation(r.Context(), ps.ByName("token"))
	if err != nil {
		h.writeError(w, "Confirmation", err)
		return
	}
	if err := httputil.WriteSuccess(w, receipt); err != nil {
		h.log.Error("failed to write success response", "handler", "Confirmation", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Receipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	pdf, err := h.service.Receipt(r.Context(), ps.ByName("token"))
	if err != nil {
		h.writeError(w, "Receipt", err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=booking-receipt.pdf")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		h.log.Error("failed to write receipt", "handler", "Receipt", "operation", "Write", "error", err)
	}
}

func (h *BookingHandler) AdminList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.List(r.Context(), strings.TrimSpace(r.URL.Query().Get("status")))
	if err != nil {
		h.writeError(w, "AdminList", err)
		return
	}
	if err := httputil.WriteList(w, bookings, int64(len(bookings))); err != nil {
		h.log.Error("failed to write list response", "handler", "AdminList", "operation", "WriteList", "error", err)
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req statusRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}
	if err := h.service.UpdateStatus(r.Context(), ps.ByName("id"), strings.TrimSpace(req.Status)); err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *BookingHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/private-tour-bookings", h.Book)
	router.POST("/api/v1/private-tour-bookings/quote", h.Quote)
	router.GET("/api/v1/private-tour-bookings/confirmation/:token", h.Confirmation)
	router.GET("/api/v1/private-tour-bookings/confirmation/:token/pdf", h.Receipt)

	router.GET("/api/v1/admin/private-tour-bookings", h.guard(h.AdminList))
	router.PUT("/api/v1/admin/private-tour-bookings/:id/status", h.guard(h.UpdateStatus))
}
