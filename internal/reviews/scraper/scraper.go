// Package scraper reads guest reviews from a public review page. Each call
// validates the URL, fetches the page and maps the review cards into
// model.Review values with goquery selectors.
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	reviewserrors "islatours/internal/reviews/errors"
	"islatours/pkg/client"
	"islatours/pkg/model"

	"github.com/PuerkitoBio/goquery"
)

// Card layouts seen on review pages, newest first.
var cardSelectors = []string{
	"[data-automation='reviewCard']",
	"div.review-container",
	"[itemprop='review']",
}

var ratingPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:of|de|/)\s*5`)
var bubblePattern = regexp.MustCompile(`bubble_(\d{2})`)

type Scraper struct {
	http *client.HttpClient
}

func New(http *client.HttpClient) *Scraper {
	return &Scraper{http: http}
}

// Fetch returns at most max reviews from the page at rawURL.
func (s *Scraper) Fetch(ctx context.Context, rawURL string, max int) ([]model.Review, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	resp, err := s.http.Get(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reviewserrors.ErrUpstream, err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("%w: status %d", reviewserrors.ErrUpstream, resp.StatusCode)
	}

	return Parse(bytes.NewReader(resp.Body), max)
}

func ValidateURL(rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return reviewserrors.ErrInvalidURL
	}
	return nil
}

// Parse maps review cards to reviews. Cards without any text are skipped.
func Parse(r io.Reader, max int) ([]model.Review, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reviewserrors.ErrUnparseable, err)
	}

	reviews := []model.Review{}
	if max <= 0 {
		return reviews, nil
	}
	for _, selector := range cardSelectors {
		doc.Find(selector).EachWithBreak(func(_ int, card *goquery.Selection) bool {
			review := parseCard(card)
			if review.Text != "" || review.Title != "" {
				reviews = append(reviews, review)
			}
			return len(reviews) < max
		})
		if len(reviews) > 0 {
			break
		}
	}
	return reviews, nil
}

func parseCard(card *goquery.Selection) model.Review {
	return model.Review{
		Author: firstText(card, "[itemprop='author']", ".info_text div", "a[href*='/Profile/']", ".username"),
		Rating: parseRating(card),
		Title:  firstText(card, "[data-test-target='review-title']", "[itemprop='name']", ".noQuotes", ".title"),
		Text:   firstText(card, "[itemprop='reviewBody']", "q", ".partial_entry", ".review-text"),
		Date:   firstText(card, "[itemprop='datePublished']", ".ratingDate", ".review-date"),
	}
}

func firstText(card *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		if text := clean(card.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// parseRating reads "4.0 of 5 bubbles" style labels, then legacy bubble_40
// classes. Unknown ratings are 0.
func parseRating(card *goquery.Selection) float64 {
	for _, sel := range []string{"[itemprop='ratingValue']", "svg title", "[aria-label*='5']"} {
		node := card.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		if v, ok := node.Attr("content"); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		label := node.Text()
		if aria, ok := node.Attr("aria-label"); ok {
			label = aria
		}
		if m := ratingPattern.FindStringSubmatch(label); m != nil {
			if f, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64); err == nil {
				return f
			}
		}
	}

	if class, ok := card.Find("[class*='bubble_']").First().Attr("class"); ok {
		if m := bubblePattern.FindStringSubmatch(class); m != nil {
			n, _ := strconv.Atoi(m[1])
			return float64(n) / 10
		}
	}
	return 0
}
