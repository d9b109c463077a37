package i18n

import (
	"net/http"
	"sort"
	"strings"
	"time"
)

const (
	English = "en"
	Spanish = "es"

	CookieName = "lang"
	QueryParam = "lang"
)

var tables = map[string]map[string]string{
	English: en,
	Spanish: es,
}

func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

func Languages() []string {
	langs := make([]string, 0, len(tables))
	for l := range tables {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

// Translator resolves keys for one language, falling back to the default
// language and finally to the key itself.
type Translator struct {
	lang     string
	fallback string
}

func New(lang, fallback string) *Translator {
	if !Supported(fallback) {
		fallback = English
	}
	if !Supported(lang) {
		lang = fallback
	}
	return &Translator{lang: lang, fallback: fallback}
}

func (t *Translator) Lang() string {
	return t.lang
}

func (t *Translator) T(key string) string {
	if v, ok := tables[t.lang][key]; ok {
		return v
	}
	if v, ok := tables[t.fallback][key]; ok {
		return v
	}
	return key
}

// Table returns a copy of the merged table for the translator's language.
func (t *Translator) Table() map[string]string {
	out := make(map[string]string, len(tables[t.fallback]))
	for k, v := range tables[t.fallback] {
		out[k] = v
	}
	for k, v := range tables[t.lang] {
		out[k] = v
	}
	return out
}

// Resolve picks the request language from the query, then the lang cookie,
// then Accept-Language, then the default.
func Resolve(r *http.Request, defaultLang string) string {
	if lang := normalize(r.URL.Query().Get(QueryParam)); Supported(lang) {
		return lang
	}
	if c, err := r.Cookie(CookieName); err == nil {
		if lang := normalize(c.Value); Supported(lang) {
			return lang
		}
	}
	for _, part := range strings.Split(r.Header.Get("Accept-Language"), ",") {
		tag := strings.TrimSpace(strings.Split(part, ";")[0])
		if lang := normalize(tag); Supported(lang) {
			return lang
		}
	}
	if Supported(defaultLang) {
		return defaultLang
	}
	return English
}

func FromRequest(r *http.Request, defaultLang string) *Translator {
	return New(Resolve(r, defaultLang), defaultLang)
}

func normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	return tag
}

// PreferenceCookie persists the chosen language for a year.
func PreferenceCookie(lang string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    lang,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: false,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
