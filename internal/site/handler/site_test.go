package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"islatours/pkg/contracts"
	"islatours/pkg/i18n"
	"islatours/pkg/logger"
	"islatours/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockSiteService struct {
	policyLang string
	heroCtl    model.HeroControl
}

func (m *mockSiteService) Home(ctx context.Context) *model.HomePage { return &model.HomePage{} }

func (m *mockSiteService) Contact(ctx context.Context) *model.ContactInfo {
	return &model.ContactInfo{}
}

func (m *mockSiteService) ContactQR(ctx context.Context) ([]byte, error) {
	return []byte("\x89PNG"), nil
}

func (m *mockSiteService) Policy(lang string) *model.Policy {
	m.policyLang = lang
	return &model.Policy{Lang: lang}
}

func (m *mockSiteService) Translations(lang string) (string, map[string]string) {
	return lang, map[string]string{"nav.home": "Inicio"}
}

func (m *mockSiteService) Categories(kind string) ([]model.Category, error) {
	return []model.Category{}, nil
}

func (m *mockSiteService) ControlHero(ctl model.HeroControl) (model.HeroState, error) {
	m.heroCtl = ctl
	return model.HeroState{Index: ctl.Index, Paused: ctl.Action == "pause"}, nil
}

func (m *mockSiteService) Dashboard(ctx context.Context) *model.Dashboard {
	return &model.Dashboard{Counts: map[string]int64{"tours": 3}}
}

func newRouter(svc *mockSiteService, guard contracts.Guard) *httprouter.Router {
	router := httprouter.New()
	NewSiteHandler(svc, guard, "en", true, logger.Discard()).RegisterRoutes(router)
	return router
}

func TestSetLanguage_SetsCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences/language", strings.NewReader(`{"lang":"ES"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newRouter(&mockSiteService{}, contracts.Open).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != i18n.CookieName || cookies[0].Value != "es" || !cookies[0].Secure {
		t.Errorf("unexpected cookies %+v", cookies)
	}
}

func TestSetLanguage_RejectsUnsupported(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences/language", strings.NewReader(`{"lang":"fr"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newRouter(&mockSiteService{}, contracts.Open).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("rejected language must not set a cookie")
	}
}

func TestPolicy_UsesLanguageCookie(t *testing.T) {
	svc := &mockSiteService{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/policy", nil)
	req.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: "es"})
	rec := httptest.NewRecorder()
	newRouter(svc, contracts.Open).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || svc.policyLang != "es" {
		t.Errorf("expected es policy, got %d / %q", rec.Code, svc.policyLang)
	}
}

func TestContactQR_ServesPNG(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/contact/qr.png", nil)
	rec := httptest.NewRecorder()
	newRouter(&mockSiteService{}, contracts.Open).ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected image/png, got %q", ct)
	}
}

func TestDashboard_Guarded(t *testing.T) {
	denied := func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			w.WriteHeader(http.StatusUnauthorized)
		}
	}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	newRouter(&mockSiteService{}, denied).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestControlHero_PassesViewerState(t *testing.T) {
	svc := &mockSiteService{}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/home/hero", strings.NewReader(`{"index":1,"paused":false,"action":"pause"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newRouter(svc, contracts.Open).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.heroCtl.Index != 1 || svc.heroCtl.Action != "pause" {
		t.Errorf("unexpected control %+v", svc.heroCtl)
	}
	if !strings.Contains(rec.Body.String(), `"paused":true`) {
		t.Errorf("expected paused state in body: %s", rec.Body.String())
	}
}

func TestControlHero_OldSharedRoutesGone(t *testing.T) {
	for _, path := range []string{"/api/v1/home/hero/pause", "/api/v1/home/hero/resume"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()
		newRouter(&mockSiteService{}, contracts.Open).ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, rec.Code)
		}
	}
}
