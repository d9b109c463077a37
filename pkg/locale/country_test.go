package locale

import (
	"testing"
	"time"
)

func TestInferCountryFromPhone(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		wantCode string
		wantNil  bool
	}{
		{name: "Honduras", phone: "+50494567890", wantCode: "HN"},
		{name: "United States", phone: "+12125551234", wantCode: "US"},
		{name: "United Kingdom", phone: "+442071234567", wantCode: "GB"},
		{name: "unknown region", phone: "+97226221234", wantNil: true},
		{name: "garbage", phone: "hello", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferCountryFromPhone(tt.phone)
			if tt.wantNil {
				if got != nil {
					t.Errorf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil || got.Code != tt.wantCode {
				t.Errorf("InferCountryFromPhone(%q) = %+v, want %s", tt.phone, got, tt.wantCode)
			}
		})
	}
}

func TestTomorrow(t *testing.T) {
	// 2026-03-10 23:30 on the island is 05:30 UTC on the 11th.
	now := time.Date(2026, 3, 11, 5, 30, 0, 0, time.UTC)
	if got := Tomorrow(now); got != "2026-03-11" {
		t.Errorf("Tomorrow() = %q, want 2026-03-11", got)
	}
}
