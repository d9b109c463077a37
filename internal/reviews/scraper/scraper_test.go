package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	reviewserrors "islatours/internal/reviews/errors"
	"islatours/pkg/client"
	"islatours/pkg/model"
)

func parseFixture(t *testing.T, name string, max int) []model.Review {
	t.Helper()
	f, err := os.Open("testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	reviews, err := Parse(f, max)
	if err != nil {
		t.Fatal(err)
	}
	return reviews
}

func TestParse_ReviewCards(t *testing.T) {
	reviews := parseFixture(t, "reviews.html", 10)
	if len(reviews) != 3 {
		t.Fatalf("expected 3 reviews (empty card skipped), got %d: %+v", len(reviews), reviews)
	}

	want := []model.Review{
		{
			Author: "Marta K",
			Rating: 5,
			Title:  "Best snorkel of our trip",
			Text:   "The crew picked us up at the cruise dock and the reef was full of turtles.",
			Date:   "Written March 2, 2026",
		},
		{Author: "JD Travels", Rating: 4, Title: "Great sunset sail", Text: "Drinks were cold, views were better."},
		{Author: "Sam", Rating: 0, Title: "Fishing day", Text: "Caught a wahoo."},
	}
	for i, w := range want {
		if reviews[i] != w {
			t.Errorf("review %d:\n got %+v\nwant %+v", i, reviews[i], w)
		}
	}
}

func TestParse_LegacyLayout(t *testing.T) {
	reviews := parseFixture(t, "legacy.html", 10)
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(reviews))
	}
	want := model.Review{
		Author: "Carlos R",
		Rating: 4,
		Title:  "Good value",
		Text:   "Friendly guides and a fair price.",
		Date:   "Reviewed 3 weeks ago",
	}
	if reviews[0] != want {
		t.Errorf("got %+v\nwant %+v", reviews[0], want)
	}
}

func TestParse_RespectsMax(t *testing.T) {
	if got := len(parseFixture(t, "reviews.html", 2)); got != 2 {
		t.Errorf("expected 2 reviews, got %d", got)
	}
	if got := len(parseFixture(t, "reviews.html", 0)); got != 0 {
		t.Errorf("expected no reviews for max 0, got %d", got)
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://www.tripadvisor.com/Attraction_Review-g292019", true},
		{"http://example.com/reviews", true},
		{"ftp://example.com/reviews", false},
		{"/relative/path", false},
		{"", false},
	}
	for _, tt := range tests {
		err := ValidateURL(tt.url)
		if (err == nil) != tt.valid {
			t.Errorf("ValidateURL(%q) = %v, want valid=%v", tt.url, err, tt.valid)
		}
	}
}

func TestFetch(t *testing.T) {
	page, err := os.ReadFile("testdata/reviews.html")
	if err != nil {
		t.Fatal(err)
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("expected a User-Agent header")
		}
		w.Write(page)
	}))
	defer server.Close()

	s := New(client.NewHttpClient(5 * time.Second))

	reviews, err := s.Fetch(context.Background(), server.URL+"/reviews", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(reviews) != 1 || reviews[0].Author != "Marta K" {
		t.Errorf("unexpected reviews %+v", reviews)
	}

	if _, err := s.Fetch(context.Background(), server.URL+"/missing", 5); !errors.Is(err, reviewserrors.ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
	if _, err := s.Fetch(context.Background(), "notaurl", 5); !errors.Is(err, reviewserrors.ErrInvalidURL) {
		t.Errorf("expected ErrInvalidURL, got %v", err)
	}
}
