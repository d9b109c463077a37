package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"islatours/internal/auth/service"
	"islatours/internal/auth/session"
	apperrors "islatours/pkg/errors"
	httputil "islatours/pkg/http"
	"islatours/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const (
	LoginPath = "/admin/login"

	// ReturnToHeader lets the admin UI name the screen it was on, which is
	// what the login page should send the user back to.
	ReturnToHeader = "X-Return-To"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthHandler struct {
	service service.AuthService
	log     *logger.Logger
}

func NewAuthHandler(service service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Login", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	result, err := h.service.Login(r.Context(), strings.TrimSpace(req.Username), req.Password, httputil.ClientIP(r))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Login", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "Login", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.service.Logout(r.Context(), bearerToken(r)); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Logout", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	httputil.WriteNoContent(w)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, SessionFromContext(r.Context())); err != nil {
		h.log.Error("failed to write success response", "handler", "Me", "operation", "WriteSuccess", "error", err)
	}
}

// RequireAdmin rejects requests without a live admin session. The 401 body
// carries the login redirect with the requested path as next.
func (h *AuthHandler) RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		token := bearerToken(r)
		if token == "" {
			h.reject(w, r, apperrors.Unauthorized("Authentication required"))
			return
		}

		sess, err := h.service.Authenticate(r.Context(), token)
		if err != nil {
			h.reject(w, r, err)
			return
		}

		next(w, r.WithContext(withSession(r.Context(), sess)), ps)
	}
}

func (h *AuthHandler) reject(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperrors.AsAppError(err)
	if appErr.StatusCode() == http.StatusUnauthorized {
		appErr = appErr.WithDetail("redirect", LoginRedirect(returnTo(r)))
	}
	if writeErr := httputil.WriteError(w, appErr); writeErr != nil {
		h.log.Error("failed to write error response", "handler", "RequireAdmin", "operation", "WriteError", "error", writeErr)
	}
}

// LoginRedirect builds /admin/login?next=<path>. Only same-site paths are kept.
func LoginRedirect(path string) string {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		path = "/admin"
	}
	return LoginPath + "?next=" + url.QueryEscape(path)
}

func returnTo(r *http.Request) string {
	if p := r.Header.Get(ReturnToHeader); p != "" {
		return p
	}
	return r.URL.RequestURI()
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

type sessionKey struct{}

func withSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the admin session set by RequireAdmin, or nil.
func SessionFromContext(ctx context.Context) *session.Session {
	s, _ := ctx.Value(sessionKey{}).(*session.Session)
	return s
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/auth/login", h.Login)
	router.POST("/api/v1/auth/logout", h.Logout)
	router.GET("/api/v1/auth/me", h.RequireAdmin(h.Me))
}
