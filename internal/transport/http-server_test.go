package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Rogue-Bear-Innovations/starwars-back/internal/db"
	"github.com/Rogue-Bear-Innovations/starwars-back/internal/service"
)

func newTestServer(t *testing.T, logger *zap.SugaredLogger) *HTTPServer {
	t.Helper()

	gormDB, err := db.NewTestClient()
	require.NoError(t, err)

	return New(service.NewGeneral(gormDB, logger), logger)
}

func doRequest(s *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestCensorBody(t *testing.T) {
	b := `{
		"email": "email@email.com",
		"password": "123456789123"
	}`

	got := censorBody([]byte(b))
	assert.JSONEq(t, `{
		"email": "email@email.com",
		"password": "$censored"
	}`, string(got))
}

func TestCensorBodyPassThrough(t *testing.T) {
	for _, b := range []string{`{"name": "Luke"}`, `not json`, `[1, 2]`} {
		assert.Equal(t, b, string(censorBody([]byte(b))))
	}
}

func TestBodyLoggerCensorsPassword(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := newTestServer(t, zap.New(core).Sugar())

	rec := doRequest(s, http.MethodPost, "/users", `{"email": "luke@rebels.org", "password": "usetheforce"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	entries := logs.FilterMessage("request body").All()
	require.Len(t, entries, 1)
	body := entries[0].ContextMap()["body"].(string)
	assert.NotContains(t, body, "usetheforce")
	assert.Contains(t, body, censored)
}

func TestPing(t *testing.T) {
	s := newTestServer(t, zap.NewNop().Sugar())

	rec := doRequest(s, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t, zap.NewNop().Sugar())

	rec := doRequest(s, http.MethodGet, "/ping", "")
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestErrorShape(t *testing.T) {
	s := newTestServer(t, zap.NewNop().Sugar())

	t.Run("unknown route", func(t *testing.T) {
		rec := doRequest(s, http.MethodGet, "/starships", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message": "Not Found", "status_code": 404}`, rec.Body.String())
	})

	t.Run("bad path param", func(t *testing.T) {
		rec := doRequest(s, http.MethodDelete, "/person/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message": "invalid path param 'id'", "status_code": 400}`, rec.Body.String())
	})

	t.Run("id out of range", func(t *testing.T) {
		cases := []struct {
			method, path, body, message string
		}{
			{http.MethodDelete, "/person/18446744073709551615", "", "Person not found"},
			{http.MethodGet, "/person/9223372036854775808", "", "Person not found"},
			{http.MethodPut, "/planet/9223372036854775808", `{"name": "Hoth"}`, "Planet not found"},
			{http.MethodDelete, "/favorites/18446744073709551615", "", "Favorite not found"},
			{http.MethodGet, "/users/18446744073709551615/favorites", "", "User not found"},
			{http.MethodDelete, "/planet/9223372036854775807", "", "Planet not found"},
		}
		for _, tc := range cases {
			rec := doRequest(s, tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusNotFound, rec.Code, tc.path)
			assert.JSONEq(t, `{"message": "`+tc.message+`", "status_code": 404}`, rec.Body.String(), tc.path)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doRequest(s, http.MethodPost, "/planet", `{"name": `)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message": "invalid request body", "status_code": 400}`, rec.Body.String())
	})
}

func TestSitemap(t *testing.T) {
	s := newTestServer(t, zap.NewNop().Sugar())

	t.Run("html", func(t *testing.T) {
		rec := doRequest(s, http.MethodGet, "/", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
		assert.Contains(t, rec.Body.String(), `<a href="/person">/person</a>`)
		assert.Contains(t, rec.Body.String(), "DELETE /person/:id")
		assert.NotContains(t, rec.Body.String(), `<a href="/person/:id">`)
	})

	t.Run("json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `{"method":"POST","path":"/favorites"}`)
		assert.Contains(t, rec.Body.String(), `{"method":"GET","path":"/users/:id/favorites"}`)
		assert.NotContains(t, rec.Body.String(), `"path":"/"}`)
	})
}
