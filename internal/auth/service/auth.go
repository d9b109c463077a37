package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	autherrors "islatours/internal/auth/errors"
	"islatours/internal/auth/repository"
	"islatours/internal/auth/session"
	"islatours/pkg/config"
	apperrors "islatours/pkg/errors"
	"islatours/pkg/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid credentials"

var bcryptPattern = regexp.MustCompile(`^\$2[aby]\$\d{2}\$`)

// IsBcryptHash reports whether a stored credential has a bcrypt prefix.
func IsBcryptHash(stored string) bool {
	return bcryptPattern.MatchString(stored)
}

type LoginResult struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Session   *session.Session `json:"session"`
}

type Claims struct {
	SessionID string `json:"sid"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(ctx context.Context, username, password, clientIP string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*session.Session, error)
}

type authService struct {
	repo     repository.AdminRepository
	sessions session.Store
	cfg      *config.Config
	secret   []byte
	now      func() time.Time
	throttle *LoginThrottle
}

func NewAuthService(repo repository.AdminRepository, sessions session.Store, throttle *LoginThrottle, cfg *config.Config) AuthService {
	return &authService{
		repo:     repo,
		sessions: sessions,
		cfg:      cfg,
		secret:   []byte(cfg.JWTSecret),
		now:      time.Now,
		throttle: throttle,
	}
}

func (s *authService) Login(ctx context.Context, username, password, clientIP string) (*LoginResult, error) {
	if !s.throttle.Allow(clientIP) {
		s.cfg.Log.Warn("Login throttled", "client_ip", clientIP)
		return nil, apperrors.TooManyRequests("Too many login attempts, try again later")
	}
	if username == "" || password == "" {
		return nil, apperrors.Unauthorized(invalidCredentials)
	}

	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, autherrors.ErrNotFound) {
			s.cfg.Log.Info("Login failed", "reason", "unknown user", "client_ip", clientIP)
			return nil, apperrors.Unauthorized(invalidCredentials)
		}
		s.cfg.Log.Error("Failed to load admin", "error", err)
		return nil, apperrors.Internal("Failed to check credentials", err)
	}

	if !s.verify(admin, password) {
		s.cfg.Log.Info("Login failed", "reason", "password mismatch", "client_ip", clientIP)
		return nil, apperrors.Unauthorized(invalidCredentials)
	}

	now := s.now().UTC()
	sess := &session.Session{
		ID:        uuid.NewString(),
		AdminID:   admin.ID,
		Username:  admin.Username,
		Name:      admin.Name,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.cfg.Log.Error("Failed to save session", "error", err)
		return nil, apperrors.Internal("Failed to start session", err)
	}

	token, err := s.sign(sess)
	if err != nil {
		return nil, apperrors.Internal("Failed to sign session token", err)
	}

	s.cfg.Log.Info("Admin logged in", "admin_id", admin.ID, "session_id", sess.ID)
	return &LoginResult{Token: token, ExpiresAt: sess.ExpiresAt, Session: sess}, nil
}

// verify only accepts bcrypt hashes; any other stored value is rejected.
func (s *authService) verify(admin *model.Admin, password string) bool {
	if !IsBcryptHash(admin.PasswordHash) {
		s.cfg.Log.Warn("Stored credential is not a bcrypt hash; login refused", "admin_id", admin.ID)
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil
}

func (s *authService) sign(sess *session.Session) (string, error) {
	claims := Claims{
		SessionID: sess.ID,
		Username:  sess.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.AdminID,
			IssuedAt:  jwt.NewNumericDate(sess.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
			Issuer:    "islatours",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *authService) parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer("islatours"),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || claims.SessionID == "" {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*session.Session, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, apperrors.Unauthorized("Session expired or invalid")
	}

	sess, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, autherrors.ErrSessionNotFound) {
			return nil, apperrors.Unauthorized("Session expired or invalid")
		}
		s.cfg.Log.Error("Failed to load session", "session_id", claims.SessionID, "error", err)
		return nil, apperrors.Unavailable("Session store")
	}
	if sess.AdminID != claims.Subject {
		return nil, apperrors.Unauthorized("Session expired or invalid")
	}
	return sess, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		s.cfg.Log.Error("Failed to delete session", "session_id", claims.SessionID, "error", err)
		return apperrors.Internal("Failed to end session", err)
	}
	s.cfg.Log.Info("Admin logged out", "admin_id", claims.Subject, "session_id", claims.SessionID)
	return nil
}

// HashPassword is used when seeding admins.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
