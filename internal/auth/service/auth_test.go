package service

import (
	"context"
	"testing"
	"time"

	autherrors "islatours/internal/auth/errors"
	"islatours/internal/auth/session"
	"islatours/pkg/config"
	apperrors "islatours/pkg/errors"
	"islatours/pkg/logger"
	"islatours/pkg/model"

	"golang.org/x/crypto/bcrypt"
)

type mockAdminRepository struct {
	findByUsernameFunc func(ctx context.Context, username string) (*model.Admin, error)
}

func (m *mockAdminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return nil, autherrors.ErrNotFound
}

func testConfig() *config.Config {
	return &config.Config{
		Log:             logger.Discard(),
		JWTSecret:       "0123456789abcdef0123456789abcdef",
		SessionTTL:      time.Hour,
		LoginRatePerMin: 100,
	}
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

func repoWith(admin *model.Admin) *mockAdminRepository {
	return &mockAdminRepository{
		findByUsernameFunc: func(ctx context.Context, username string) (*model.Admin, error) {
			if username == admin.Username {
				return admin, nil
			}
			return nil, autherrors.ErrNotFound
		},
	}
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	admin := &model.Admin{ID: "a1", Username: "captain", PasswordHash: hashed(t, "reef-2026")}
	svc := NewAuthService(repoWith(admin), session.NewMemoryStore(), NewLoginThrottle(100), testConfig())

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "captain", "wrong"},
		{"unknown user", "nobody", "reef-2026"},
		{"empty password", "captain", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.username, tt.password, "10.0.0.1")
			appErr := apperrors.AsAppError(err)
			if appErr.Code != apperrors.CodeUnauthorized {
				t.Fatalf("expected UNAUTHORIZED, got %v", err)
			}
			if appErr.Message != "Invalid credentials" {
				t.Errorf("message leaks detail: %q", appErr.Message)
			}
		})
	}
}

func TestLogin_BcryptHashVerified(t *testing.T) {
	admin := &model.Admin{ID: "a1", Username: "captain", PasswordHash: hashed(t, "reef-2026")}
	svc := NewAuthService(repoWith(admin), session.NewMemoryStore(), NewLoginThrottle(100), testConfig())

	result, err := svc.Login(context.Background(), "captain", "reef-2026", "10.0.0.1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" || result.Session.AdminID != "a1" {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestLogin_PlaintextStoredValueRejected(t *testing.T) {
	admin := &model.Admin{ID: "a1", Username: "captain", PasswordHash: "reef-2026"}
	svc := NewAuthService(repoWith(admin), session.NewMemoryStore(), NewLoginThrottle(100), testConfig())

	if _, err := svc.Login(context.Background(), "captain", "reef-2026", "10.0.0.1"); err == nil {
		t.Fatal("plaintext stored credential must never match")
	}
}

func TestAuthenticateAndLogout(t *testing.T) {
	admin := &model.Admin{ID: "a1", Username: "captain", PasswordHash: hashed(t, "reef-2026")}
	svc := NewAuthService(repoWith(admin), session.NewMemoryStore(), NewLoginThrottle(100), testConfig())
	ctx := context.Background()

	result, err := svc.Login(ctx, "captain", "reef-2026", "10.0.0.1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	sess, err := svc.Authenticate(ctx, result.Token)
	if err != nil || sess.Username != "captain" {
		t.Fatalf("Authenticate: %v %+v", err, sess)
	}

	if err := svc.Logout(ctx, result.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Authenticate(ctx, result.Token); !apperrors.HasCode(err, apperrors.CodeUnauthorized) {
		t.Errorf("token should be revoked after logout, got %v", err)
	}
}

func TestAuthenticate_RejectsForeignToken(t *testing.T) {
	svc := NewAuthService(&mockAdminRepository{}, session.NewMemoryStore(), NewLoginThrottle(100), testConfig())

	other := testConfig()
	other.JWTSecret = "another-secret-another-secret-xx"
	admin := &model.Admin{ID: "a1", Username: "captain", PasswordHash: hashed(t, "pw")}
	foreign := NewAuthService(repoWith(admin), session.NewMemoryStore(), NewLoginThrottle(100), other)
	result, err := foreign.Login(context.Background(), "captain", "pw", "1.1.1.1")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Authenticate(context.Background(), result.Token); !apperrors.HasCode(err, apperrors.CodeUnauthorized) {
		t.Errorf("expected unauthorized, got %v", err)
	}
}

func TestLogin_Throttled(t *testing.T) {
	cfg := testConfig()
	cfg.LoginRatePerMin = 2
	svc := NewAuthService(&mockAdminRepository{}, session.NewMemoryStore(), NewLoginThrottle(cfg.LoginRatePerMin), cfg)

	for i := 0; i < 2; i++ {
		_, _ = svc.Login(context.Background(), "x", "y", "10.0.0.9")
	}
	_, err := svc.Login(context.Background(), "x", "y", "10.0.0.9")
	if !apperrors.HasCode(err, apperrors.CodeTooManyRequests) {
		t.Errorf("expected throttling, got %v", err)
	}
	_, err = svc.Login(context.Background(), "x", "y", "10.0.0.10")
	if apperrors.HasCode(err, apperrors.CodeTooManyRequests) {
		t.Error("other clients must not be throttled")
	}
}

func TestIsBcryptHash(t *testing.T) {
	tests := map[string]bool{
		"$2a$10$abcdefghijklmnopqrstuv": true,
		"$2b$12$abcdefghijklmnopqrstuv": true,
		"$2y$10$abcdefghijklmnopqrstuv": true,
		"plaintext":                     false,
		"$argon2id$v=19$m=65536":        false,
	}
	for in, want := range tests {
		if got := IsBcryptHash(in); got != want {
			t.Errorf("IsBcryptHash(%q) = %v", in, got)
		}
	}
}
