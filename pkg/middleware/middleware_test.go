package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotours/pkg/utils"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/health", ok)
	r.GET("/api/places/", ok)
	r.POST("/api/upload/", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			utils.HandleServiceError(c, utils.BindingError(err))
			return
		}
		c.String(http.StatusOK, "ok")
	})
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAllowedHosts(t *testing.T) {
	r := newEngine(AllowedHosts([]string{"api.example.com", ".echotours.lk"}, "/health"))

	cases := []struct {
		host string
		path string
		want int
	}{
		{"api.example.com", "/api/places/", http.StatusOK},
		{"API.EXAMPLE.COM:8080", "/api/places/", http.StatusOK},
		{"echotours.lk", "/api/places/", http.StatusOK},
		{"admin.echotours.lk", "/api/places/", http.StatusOK},
		{"evil.com", "/api/places/", http.StatusBadRequest},
		{"notechotours.lk", "/api/places/", http.StatusBadRequest},
		{"evil.com", "/health", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		req.Host = tc.host
		assert.Equal(t, tc.want, serve(r, req).Code, tc.host+tc.path)
	}

	open := newEngine(AllowedHosts([]string{"*"}))
	req := httptest.NewRequest(http.MethodGet, "/api/places/", nil)
	req.Host = "whatever.test"
	assert.Equal(t, http.StatusOK, serve(open, req).Code)
}

func TestSecurityHeaders_Redirect(t *testing.T) {
	r := newEngine(SecurityHeaders(SecurityOptions{SSLRedirect: true, HSTSSeconds: 3600, Exempt: []string{"/health"}}))

	req := httptest.NewRequest(http.MethodGet, "/api/places/?page=2", nil)
	req.Host = "api.example.com"
	rec := serve(r, req)
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "https://api.example.com/api/places/?page=2", rec.Header().Get("Location"))

	rec = serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))

	req = httptest.NewRequest(http.MethodGet, "/api/places/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec = serve(r, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "max-age=3600; includeSubDomains; preload", rec.Header().Get("Strict-Transport-Security"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestBodyLimit(t *testing.T) {
	r := newEngine(BodyLimit(8))

	rec := serve(r, httptest.NewRequest(http.MethodPost, "/api/upload/", strings.NewReader("small")))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(r, httptest.NewRequest(http.MethodPost, "/api/upload/", strings.NewReader("far too large")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	// unknown length, cut off while reading
	req := httptest.NewRequest(http.MethodPost, "/api/upload/", io.NopCloser(strings.NewReader("far too large")))
	req.ContentLength = -1
	rec = serve(r, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestJWTMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtManager := utils.NewJWTManager("secret", time.Hour)
	adminToken, err := jwtManager.CreateToken(3, "admin")
	require.NoError(t, err)
	customerToken, err := jwtManager.CreateToken(4, "customer")
	require.NoError(t, err)

	r := gin.New()
	who := func(c *gin.Context) {
		p, ok := utils.PrincipalFromContext(c.Request.Context())
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, "%d:%s", p.UserID, p.Role)
	}
	r.GET("/admin", JWTAuthMiddleware(jwtManager), RoleMiddleware("admin"), who)
	r.GET("/optional", OptionalJWTMiddleware(jwtManager), who)

	get := func(path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return serve(r, req)
	}

	assert.Equal(t, http.StatusUnauthorized, get("/admin", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get("/admin", "garbage").Code)
	assert.Equal(t, http.StatusForbidden, get("/admin", customerToken).Code)

	rec := get("/admin", adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3:admin", rec.Body.String())

	assert.Equal(t, "anonymous", get("/optional", "").Body.String())
	assert.Equal(t, "anonymous", get("/optional", "garbage").Body.String())
	assert.Equal(t, "4:customer", get("/optional", customerToken).Body.String())
}
