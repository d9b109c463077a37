package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"islatours/internal/booking/service"
	apperrors "islatours/pkg/errors"
	"islatours/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type mockFlowService struct {
	advanceFunc func(ctx context.Context, req *service.FlowRequest, lang string) (*service.FlowResponse, error)
}

func (m *mockFlowService) Advance(ctx context.Context, req *service.FlowRequest, lang string) (*service.FlowResponse, error) {
	return m.advanceFunc(ctx, req, lang)
}

func serve(svc service.FlowService, target, body string, header http.Header) *httptest.ResponseRecorder {
	router := httprouter.New()
	NewFlowHandler(svc, "en", logger.Discard()).RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAdvance_ResolvesLanguage(t *testing.T) {
	tests := []struct {
		name   string
		target string
		header http.Header
		want   string
	}{
		{"default", "/api/v1/booking-flow", nil, "en"},
		{"query", "/api/v1/booking-flow?lang=es", nil, "es"},
		{"accept language", "/api/v1/booking-flow", http.Header{"Accept-Language": {"es-HN,es;q=0.9"}}, "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			svc := &mockFlowService{
				advanceFunc: func(ctx context.Context, req *service.FlowRequest, lang string) (*service.FlowResponse, error) {
					got = lang
					return &service.FlowResponse{Step: req.Step + 1}, nil
				},
			}

			rec := serve(svc, tt.target, `{"step":1,"action":"next","form":{"tour_id":"t1","people":2}}`, tt.header)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if got != tt.want {
				t.Errorf("expected lang %q, got %q", tt.want, got)
			}
			if !strings.Contains(rec.Body.String(), `"step":2`) {
				t.Errorf("unexpected body %s", rec.Body.String())
			}
		})
	}
}

func TestAdvance_BadRequest(t *testing.T) {
	svc := &mockFlowService{
		advanceFunc: func(ctx context.Context, req *service.FlowRequest, lang string) (*service.FlowResponse, error) {
			return nil, apperrors.InvalidInput("Action must be next, back or send")
		},
	}

	if rec := serve(svc, "/api/v1/booking-flow", `{"step":1,"action":"jump"}`, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if rec := serve(svc, "/api/v1/booking-flow", `{"unknown":true}`, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown field, got %d", rec.Code)
	}
}
