package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/painel/i18n"
)

func TestPrefs_LanguageResolution(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		cookie string
		accept string
		want   string
	}{
		{"default", "", "", "", "pt"},
		{"accept header", "", "", "en-US,en;q=0.9", "en"},
		{"cookie beats header", "", "pt", "en-US", "pt"},
		{"query beats cookie", "?lang=en", "pt", "", "en"},
		{"unsupported query ignored", "?lang=de", "", "en", "en"},
		{"unsupported cookie ignored", "", "fr", "", "pt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			var got string
			Prefs(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = LangFrom(r)
			})).ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlash_RoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	Flash(rec, NoticeSuccess, "clients.delete_success")

	req := httptest.NewRequest(http.MethodGet, "/clientes", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	n, ok := TakeFlash(rec2, req)
	require.True(t, ok)
	assert.Equal(t, Notice{Kind: NoticeSuccess, Code: "clients.delete_success"}, n)

	cleared := rec2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Less(t, cleared[0].MaxAge, 0)
}

func TestTakeFlash_RejectsJunk(t *testing.T) {
	for _, v := range []string{"", "nocolon", "shout%3Ahello", "error%3A"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "flash", Value: v})
		_, ok := TakeFlash(httptest.NewRecorder(), req)
		assert.False(t, ok, v)
	}
}

func TestLogging_SetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	h := Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		LoggerFrom(r.Context()).Info("inside")
		w.WriteHeader(http.StatusCreated)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/clientes/cadastrar", nil))

	id := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), id)
	assert.Contains(t, buf.String(), `"status":201`)
	assert.Contains(t, buf.String(), `"msg":"inside"`)

	known := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, known)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, known, rec.Header().Get(RequestIDHeader))
}

func TestRecover(t *testing.T) {
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") }))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(i18n.WithLang(req.Context(), "en"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
}
