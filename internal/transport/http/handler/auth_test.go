package handler_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/AlexHopeIT/notes-servise-test/internal/domain"
	"github.com/AlexHopeIT/notes-servise-test/internal/transport/http/handler"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuthUsecase implements the unexported authUsecaser interface via
// method matching.
type fakeAuthUsecase struct {
	register func(ctx context.Context, username, password string) (*domain.User, error)
	login    func(ctx context.Context, username, password string) (string, error)
}

func (f *fakeAuthUsecase) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return f.register(ctx, username, password)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, username, password string) (string, error) {
	return f.login(ctx, username, password)
}

func newAuthEngine(uc *fakeAuthUsecase) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	h := handler.NewAuthHandler(uc, logger)

	r := gin.New()
	r.POST("/register/", h.Register)
	r.POST("/token", h.Token)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func postForm(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

// ---- Register ----

func TestRegister_InvalidJSON_Returns400(t *testing.T) {
	w := postJSON(t, newAuthEngine(&fakeAuthUsecase{}), "/register/", `{bad json}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRegister_MissingPassword_Returns400(t *testing.T) {
	w := postJSON(t, newAuthEngine(&fakeAuthUsecase{}), "/register/", `{"username":"alice"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRegister_Success_Returns201WithMsg(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, username, _ string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: username}, nil
		},
	}

	w := postJSON(t, newAuthEngine(uc), "/register/", `{"username":"alice","password":"pw1"}`)
	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
	if !strings.Contains(w.Body.String(), "User created successfully") {
		t.Errorf("body = %s, want creation message", w.Body.String())
	}
}

func TestRegister_DuplicateUsername_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, _, _ string) (*domain.User, error) {
			return nil, domain.ErrDuplicateUsername
		},
	}

	w := postJSON(t, newAuthEngine(uc), "/register/", `{"username":"alice","password":"pw2"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Username already registered") {
		t.Errorf("body = %s, want duplicate message", w.Body.String())
	}
}

func TestRegister_UsecaseError_Returns500(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, _, _ string) (*domain.User, error) {
			return nil, errors.New("db down")
		},
	}

	w := postJSON(t, newAuthEngine(uc), "/register/", `{"username":"alice","password":"pw1"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

// ---- Token ----

func TestToken_MissingFields_Returns400(t *testing.T) {
	w := postForm(t, newAuthEngine(&fakeAuthUsecase{}), "/token", "username=alice")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestToken_BadCredentials_Returns401WithChallenge(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}

	w := postForm(t, newAuthEngine(uc), "/token", "username=alice&password=wrong")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if got := w.Header().Get("WWW-Authenticate"); got != "Bearer" {
		t.Errorf("WWW-Authenticate = %q, want Bearer", got)
	}
	if !strings.Contains(w.Body.String(), "Incorrect username or password") {
		t.Errorf("body = %s, want generic credentials message", w.Body.String())
	}
}

func TestToken_Success_ReturnsBearerToken(t *testing.T) {
	const fakeJWT = "header.payload.signature"
	var gotUser, gotPass string
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, username, password string) (string, error) {
			gotUser, gotPass = username, password
			return fakeJWT, nil
		},
	}

	w := postForm(t, newAuthEngine(uc), "/token", "username=alice&password=pw1")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if gotUser != "alice" || gotPass != "pw1" {
		t.Errorf("form fields parsed as %q/%q, want alice/pw1", gotUser, gotPass)
	}
	if !strings.Contains(w.Body.String(), fakeJWT) {
		t.Errorf("body %q does not contain token", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"token_type":"bearer"`) {
		t.Errorf("body %q missing token_type", w.Body.String())
	}
}

func TestToken_UsecaseError_Returns500(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, error) {
			return "", errors.New("db down")
		},
	}

	w := postForm(t, newAuthEngine(uc), "/token", "username=alice&password=pw1")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
