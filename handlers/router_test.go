package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/certitrack/backend/auth"
	"github.com/certitrack/backend/models"
	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

// M is shorthand for JSON request bodies.
type M = map[string]interface{}

// testServer wires handlers onto a router the same way main does, with
// fake stores underneath.
type testServer struct {
	router  *gin.Engine
	users   *fakeUserStore
	records *fakeRecordStore
	events  *fakeEvents
	tokens  *auth.TokenIssuer
}

func newTestServer(t *testing.T, openRegistration bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		users:   newFakeUserStore(),
		records: newFakeRecordStore(),
		events:  &fakeEvents{},
		tokens:  auth.NewTokenIssuer([]byte(testSecret), time.Hour),
	}

	authHandler := &AuthHandler{Users: ts.users, Tokens: ts.tokens}
	usersHandler := &UsersHandler{Users: ts.users}
	recordsHandler := &RecordsHandler{Records: ts.records, Events: ts.events}

	router := gin.New()
	authRequired := AuthMiddleware(ts.tokens)

	if openRegistration {
		router.POST("/register", authHandler.Register)
	} else {
		router.POST("/register", authRequired, RequireAdmin(), authHandler.Register)
	}
	router.POST("/login", authHandler.Login)

	protected := router.Group("/", authRequired)
	{
		protected.GET("/me", authHandler.Me)
		protected.POST("/update-password", authHandler.UpdatePassword)

		usersGroup := protected.Group("/users", RequireAdmin())
		{
			usersGroup.GET("", usersHandler.List)
			usersGroup.GET("/:id", usersHandler.Get)
			usersGroup.PUT("/:id", usersHandler.Update)
			usersGroup.DELETE("/:id", usersHandler.Delete)
		}

		qr := protected.Group("/qr")
		{
			qr.POST("", recordsHandler.Create)
			qr.GET("", recordsHandler.List)
			qr.GET("/:id", recordsHandler.Get)
			qr.PUT("/:id", recordsHandler.Update)
			qr.DELETE("/:id", recordsHandler.Delete)
		}
	}

	ts.router = router
	return ts
}

// seedUser inserts a user directly into the fake store and returns it.
func (ts *testServer) seedUser(t *testing.T, name, email, password, role string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	user := &models.User{Name: name, Email: email, PasswordHash: hash, Role: role}
	if err := ts.users.Create(user); err != nil {
		t.Fatalf("seed user error: %v", err)
	}
	return user
}

// tokenFor mints a valid token for a user.
func (ts *testServer) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	tok, err := ts.tokens.Issue(user.ID, user.Role)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	return tok
}

// newExpiredToken mints a token that is already past its expiry.
func newExpiredToken(t *testing.T, user *models.User) string {
	t.Helper()
	tok, err := auth.NewTokenIssuer([]byte(testSecret), -time.Minute).Issue(user.ID, user.Role)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	return tok
}

// do performs a request and returns the recorder. A non-empty token is sent
// as a bearer header.
func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body error: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response error: %v (body: %s)", err, w.Body.String())
	}
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status mismatch: got %d want %d (body: %s)", w.Code, want, w.Body.String())
	}
}
