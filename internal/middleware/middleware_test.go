package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"reporting-srv/config"
	"reporting-srv/pkg/encrypter"
	"reporting-srv/pkg/log"
	"reporting-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEncrypterKey = "0123456789abcdef0123456789abcdef"

type fakeManager struct {
	tokens map[string]scope.Payload
}

func (f fakeManager) Verify(token string) (scope.Payload, error) {
	p, ok := f.tokens[token]
	if !ok {
		return scope.Payload{}, errors.New("invalid token")
	}
	return p, nil
}

func (f fakeManager) CreateToken(scope.Payload) (string, error) {
	return "", errors.New("not supported")
}

func newTestMiddleware() Middleware {
	gin.SetMode(gin.TestMode)
	mgr := fakeManager{tokens: map[string]scope.Payload{
		"good": {UserID: "7", Username: "mifos", Role: "ADMIN"},
	}}
	return New(log.NewNop(), mgr, config.CookieConfig{Name: "mifos_auth_token"},
		config.InternalConfig{ServiceKeys: map[string]string{"scheduler": "s3cret"}},
		encrypter.New(testEncrypterKey))
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.UserID)
	})
	r.GET("/x", handlers...)
	return r
}

func TestAuth(t *testing.T) {
	mw := newTestMiddleware()
	r := newEngine(mw.Auth())

	tests := []struct {
		name     string
		header   string
		cookie   string
		wantCode int
		wantBody string
	}{
		{name: "bearer", header: "Bearer good", wantCode: http.StatusOK, wantBody: "7"},
		{name: "raw header", header: "good", wantCode: http.StatusOK, wantBody: "7"},
		{name: "cookie", cookie: "good", wantCode: http.StatusOK, wantBody: "7"},
		{name: "bad token", header: "Bearer bad", wantCode: http.StatusUnauthorized},
		{name: "missing", wantCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "mifos_auth_token", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestServiceAuth(t *testing.T) {
	mw := newTestMiddleware()
	r := newEngine(mw.ServiceAuth())
	enc := encrypter.New(testEncrypterKey)

	seal := func(s string) string {
		v, err := enc.Encrypt(s)
		require.NoError(t, err)
		return v
	}

	tests := []struct {
		name     string
		key      string
		wantCode int
	}{
		{name: "valid", key: seal("scheduler:s3cret"), wantCode: http.StatusOK},
		{name: "wrong key", key: seal("scheduler:nope"), wantCode: http.StatusUnauthorized},
		{name: "unknown service", key: seal("billing:s3cret"), wantCode: http.StatusUnauthorized},
		{name: "no separator", key: seal("scheduler"), wantCode: http.StatusUnauthorized},
		{name: "not encrypted", key: "scheduler:s3cret", wantCode: http.StatusUnauthorized},
		{name: "missing", key: "", wantCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.key != "" {
				req.Header.Set(ServiceKeyHeader, tt.key)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(DefaultCORSConfig("development")))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.OPTIONS("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "Content-Disposition", w.Header().Get("Access-Control-Expose-Headers"))
}

func TestCORS_ProductionRejectsLocalhost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newEngine(CORS(DefaultCORSConfig("production")))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newEngine(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}
