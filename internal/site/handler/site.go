package handler

import (
	"net/http"
	"strings"

	"islatours/internal/site/service"
	"islatours/pkg/contracts"
	apperrors "islatours/pkg/errors"
	httputil "islatours/pkg/http"
	"islatours/pkg/i18n"
	"islatours/pkg/logger"
	"islatours/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type SiteHandler struct {
	service       service.SiteService
	guard         contracts.Guard
	defaultLang   string
	secureCookies bool
	log           *logger.Logger
}

func NewSiteHandler(service service.SiteService, guard contracts.Guard, defaultLang string, secureCookies bool, log *logger.Logger) *SiteHandler {
	return &SiteHandler{
		service:       service,
		guard:         guard,
		defaultLang:   defaultLang,
		secureCookies: secureCookies,
		log:           log,
	}
}

type translationsResponse struct {
	Lang      string            `json:"lang"`
	Languages []string          `json:"languages"`
	Messages  map[string]string `json:"messages"`
}

type languageRequest struct {
	Lang string `json:"lang"`
}

func (h *SiteHandler) Home(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeSuccess(w, "Home", h.service.Home(r.Context()))
}

func (h *SiteHandler) ControlHero(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.HeroControl
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "ControlHero", err)
		return
	}
	state, err := h.service.ControlHero(req)
	if err != nil {
		h.writeError(w, "ControlHero", err)
		return
	}
	h.writeSuccess(w, "ControlHero", state)
}

func (h *SiteHandler) Contact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeSuccess(w, "Contact", h.service.Contact(r.Context()))
}

func (h *SiteHandler) ContactQR(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	png, err := h.service.ContactQR(r.Context())
	if err != nil {
		h.writeError(w, "ContactQR", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.log.Error("failed to write QR code", "handler", "ContactQR", "operation", "Write", "error", err)
	}
}

func (h *SiteHandler) Policy(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeSuccess(w, "Policy", h.service.Policy(i18n.Resolve(r, h.defaultLang)))
}

func (h *SiteHandler) Translations(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	lang, messages := h.service.Translations(strings.ToLower(ps.ByName("lang")))
	h.writeSuccess(w, "Translations", translationsResponse{Lang: lang, Languages: i18n.Languages(), Messages: messages})
}

// SetLanguage stores the visitor's choice in the lang cookie.
func (h *SiteHandler) SetLanguage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req languageRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "SetLanguage", err)
		return
	}
	lang := strings.ToLower(strings.TrimSpace(req.Lang))
	if !i18n.Supported(lang) {
		h.writeError(w, "SetLanguage", apperrors.FieldValidation("Unsupported language", map[string]string{
			"lang": "must be one of " + strings.Join(i18n.Languages(), ", "),
		}))
		return
	}

	http.SetCookie(w, i18n.PreferenceCookie(lang, h.secureCookies))
	_, messages := h.service.Translations(lang)
	h.writeSuccess(w, "SetLanguage", translationsResponse{Lang: lang, Languages: i18n.Languages(), Messages: messages})
}

func (h *SiteHandler) Categories(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	categories, err := h.service.Categories(ps.ByName("kind"))
	if err != nil {
		h.writeError(w, "Categories", err)
		return
	}
	if err := httputil.WriteList(w, categories, int64(len(categories))); err != nil {
		h.log.Error("failed to write list response", "handler", "Categories", "operation", "WriteList", "error", err)
	}
}

func (h *SiteHandler) Dashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeSuccess(w, "Dashboard", h.service.Dashboard(r.Context()))
}

func (h *SiteHandler) writeSuccess(w http.ResponseWriter, handler string, data any) {
	if err := httputil.WriteSuccess(w, data); err != nil {
		h.log.Error("failed to write success response", "handler", handler, "operation", "WriteSuccess", "error", err)
	}
}

func (h *SiteHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *SiteHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/home", h.Home)
	router.POST("/api/v1/home/hero", h.ControlHero)
	router.GET("/api/v1/contact", h.Contact)
	router.GET("/api/v1/contact/qr.png", h.ContactQR)
	router.GET("/api/v1/policy", h.Policy)
	router.GET("/api/v1/i18n/:lang", h.Translations)
	router.PUT("/api/v1/preferences/language", h.SetLanguage)
	router.GET("/api/v1/categories/:kind", h.Categories)

	router.GET("/api/v1/admin/dashboard", h.guard(h.Dashboard))
}
