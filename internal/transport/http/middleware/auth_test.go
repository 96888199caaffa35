package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AlexHopeIT/notes-servise-test/internal/token"
	"github.com/AlexHopeIT/notes-servise-test/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testKey = "middleware-test-secret-32-chars!!"

func init() {
	gin.SetMode(gin.TestMode)
}

// newEngine builds a minimal gin engine with the Auth middleware protecting
// GET /protected. The handler writes the username from context so we can
// assert it was set.
func newEngine() *gin.Engine {
	r := gin.New()
	svc := token.NewService([]byte(testKey), time.Hour)
	r.GET("/protected", middleware.Auth(svc), func(c *gin.Context) {
		c.String(http.StatusOK, "%s", c.GetString("username"))
	})
	return r
}

func get(t *testing.T, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	newEngine().ServeHTTP(w, req)
	return w
}

func TestAuth_MissingHeader_Returns401(t *testing.T) {
	w := get(t, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if w.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Errorf("WWW-Authenticate = %q, want Bearer", w.Header().Get("WWW-Authenticate"))
	}
}

func TestAuth_NonBearerScheme_Returns401(t *testing.T) {
	if w := get(t, "Basic dXNlcjpwYXNz"); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuth_InvalidToken_Returns401(t *testing.T) {
	if w := get(t, "Bearer not.a.jwt"); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuth_ExpiredToken_Returns401(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(-time.Hour).Unix(),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte(testKey))
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}

	if w := get(t, "Bearer "+signed); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuth_WrongSigningKey_Returns401(t *testing.T) {
	other := token.NewService([]byte("different-key-that-is-32-chars!!"), time.Hour)
	signed, err := other.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if w := get(t, "Bearer "+signed); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuth_ValidToken_PassesAndSetsUsername(t *testing.T) {
	svc := token.NewService([]byte(testKey), time.Hour)
	signed, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := get(t, "Bearer "+signed)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != "alice" {
		t.Errorf("body = %q, want %q", got, "alice")
	}
}
