package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"islatours/pkg/contracts"
	apperrors "islatours/pkg/errors"
	httputil "islatours/pkg/http"
	"islatours/pkg/logger"
	"islatours/pkg/model"
	"islatours/pkg/storage"

	"github.com/julienschmidt/httprouter"
)

type mockTourService struct {
	listFunc func(ctx context.Context) []model.Tour
	saveFunc func(ctx context.Context, tour *model.TourRecord, files *storage.SaveRequest) error
}

func (m *mockTourService) List(ctx context.Context) []model.Tour {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []model.Tour{}
}

func (m *mockTourService) Get(ctx context.Context, id string) (*model.Tour, error) {
	return nil, apperrors.NotFoundWithID("Tour", id)
}

func (m *mockTourService) AdminList(ctx context.Context) ([]*model.TourRecord, error) {
	return []*model.TourRecord{}, nil
}

func (m *mockTourService) AdminGet(ctx context.Context, id string) (*model.TourRecord, error) {
	return nil, apperrors.NotFoundWithID("Tour", id)
}

func (m *mockTourService) Save(ctx context.Context, tour *model.TourRecord, files *storage.SaveRequest) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, tour, files)
	}
	return nil
}

func (m *mockTourService) Delete(ctx context.Context, id string) error {
	return nil
}

func (m *mockTourService) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func newRouter(svc *mockTourService, guard contracts.Guard) *httprouter.Router {
	router := httprouter.New()
	NewTourHandler(svc, guard, 1<<20, logger.Discard()).RegisterRoutes(router)
	return router
}

func TestList(t *testing.T) {
	svc := &mockTourService{
		listFunc: func(ctx context.Context) []model.Tour {
			return []model.Tour{{ID: "1", Name: "Reef", Price: 45}}
		},
	}
	rec := httptest.NewRecorder()
	newRouter(svc, contracts.Open).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tours", nil))

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"total_count":1`) {
		t.Errorf("unexpected %d %s", rec.Code, rec.Body.String())
	}
}

func TestGet_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(&mockTourService{}, contracts.Open).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tours/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestSave_InsertOrUpdate(t *testing.T) {
	svc := &mockTourService{
		saveFunc: func(ctx context.Context, tour *model.TourRecord, files *storage.SaveRequest) error {
			if tour.ID == "" {
				tour.ID = "new-id"
			}
			return nil
		},
	}
	router := newRouter(svc, contracts.Open)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"insert without id", `{"nombre":"Reef"}`, http.StatusCreated},
		{"update with id", `{"id":"65f1c0ffee0000000000aaaa","nombre":"Reef"}`, http.StatusOK},
		{"unknown field", `{"nombre":"Reef","bogus":1}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/tours", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestAdminRoutesAreGuarded(t *testing.T) {
	deny := func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
			_ = httputil.WriteError(w, apperrors.Unauthorized("Authentication required"))
		}
	}
	router := newRouter(&mockTourService{}, deny)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/admin/tours"},
		{http.MethodPost, "/api/v1/admin/tours"},
		{http.MethodDelete, "/api/v1/admin/tours/abc"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d", route.method, route.path, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tours", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("public list should stay open, got %d", rec.Code)
	}
}
