package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		cookie   string
		accept   string
		fallback string
		want     string
	}{
		{"query wins", "/?lang=es", "en", "en-US", "en", "es"},
		{"cookie over header", "/", "es", "en-US", "en", "es"},
		{"accept language region tag", "/", "", "es-HN,es;q=0.9,en;q=0.8", "en", "es"},
		{"unsupported query ignored", "/?lang=fr", "", "", "es", "es"},
		{"default", "/", "", "de-DE", "en", "en"},
		{"bad default falls back to english", "/", "", "", "xx", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			if got := Resolve(r, tt.fallback); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslator_Fallback(t *testing.T) {
	tables["en"]["test.only_en"] = "English only"
	defer delete(tables["en"], "test.only_en")

	tr := New(Spanish, English)
	if got := tr.T("test.only_en"); got != "English only" {
		t.Errorf("missing spanish key should fall back to english, got %q", got)
	}
	if got := tr.T("booking.people"); got != "Personas" {
		t.Errorf("T(booking.people) = %q", got)
	}
	if got := tr.T("no.such.key"); got != "no.such.key" {
		t.Errorf("unknown key should echo, got %q", got)
	}
}

func TestNew_UnsupportedLanguage(t *testing.T) {
	tr := New("fr", Spanish)
	if tr.Lang() != Spanish {
		t.Errorf("Lang() = %q, want es", tr.Lang())
	}
}

func TestTables_HaveSameKeys(t *testing.T) {
	for key := range en {
		if _, ok := es[key]; !ok {
			t.Errorf("key %q missing from es table", key)
		}
	}
	for key := range es {
		if _, ok := en[key]; !ok {
			t.Errorf("key %q missing from en table", key)
		}
	}
}
