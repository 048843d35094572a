package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nesaranaeem/qr-box/pkg/i18n"
)

func TestMatcher(t *testing.T) {
	t.Parallel()
	m := i18n.NewMatcher("en", "bn")

	tests := []struct {
		name  string
		prefs []string
		want  string
	}{
		{name: "no preference", want: "en"},
		{name: "exact", prefs: []string{"bn"}, want: "bn"},
		{name: "regional variant", prefs: []string{"bn-BD"}, want: "bn"},
		{name: "accept-language header", prefs: []string{"fr-FR,bn;q=0.9,en;q=0.8"}, want: "bn"},
		{name: "quality order", prefs: []string{"en;q=0.5,bn;q=0.9"}, want: "bn"},
		{name: "unsupported", prefs: []string{"fr"}, want: "en"},
		{name: "garbage", prefs: []string{"!!!"}, want: "en"},
		{name: "first confident preference wins", prefs: []string{"", "fr", "bn", "en"}, want: "bn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, m.Match(tt.prefs...))
		})
	}
}

func TestNewMatcherDefaults(t *testing.T) {
	t.Parallel()

	m := i18n.NewMatcher("not a tag!!")
	assert.Equal(t, i18n.DefaultLanguage, m.Default())
	assert.Equal(t, []string{i18n.DefaultLanguage}, m.Supported())
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := i18n.Middleware(i18n.DefaultLangExtractor(i18n.NewMatcher("en", "bn"), i18n.WithCookieName("lang")))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = i18n.Language(r.Context())
		}),
	)

	tests := []struct {
		name   string
		target string
		header string
		cookie string
		want   string
	}{
		{name: "default", target: "/", want: "en"},
		{name: "query", target: "/?lang=bn", header: "en", want: "bn"},
		{name: "unsupported query falls through to header", target: "/?lang=de", header: "bn-BD", want: "bn"},
		{name: "cookie", target: "/", cookie: "bn", want: "bn"},
		{name: "header", target: "/", header: "bn,en;q=0.5", want: "bn"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.target, nil)
		if tt.header != "" {
			req.Header.Set("Accept-Language", tt.header)
		}
		if tt.cookie != "" {
			req.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, tt.want, got, tt.name)
		assert.Equal(t, tt.want, rec.Header().Get("Content-Language"), tt.name)
		assert.Equal(t, "Accept-Language", rec.Header().Get("Vary"), tt.name)
	}

	i18n.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.Language(r.Context())
	})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?lang=bn", nil))
	assert.Equal(t, i18n.DefaultLanguage, got)
}
