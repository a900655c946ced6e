package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/marqspnosa/shopwise/internal/access"
	"github.com/marqspnosa/shopwise/internal/db"
	"github.com/marqspnosa/shopwise/internal/events"
	"github.com/marqspnosa/shopwise/internal/hash"
	authmw "github.com/marqspnosa/shopwise/internal/middleware/auth"
	"github.com/marqspnosa/shopwise/internal/models"
	"github.com/marqspnosa/shopwise/internal/repo"
	"github.com/marqspnosa/shopwise/internal/service"
	"github.com/marqspnosa/shopwise/internal/tokens"
)

func init() {
	hash.Cost = 4
}

const testOrigin = "http://frontend.test"

type testServer struct {
	e      *echo.Echo
	db     *gorm.DB
	tokens *tokens.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gdb, err := db.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })

	r := repo.New(gdb)
	ts := tokens.NewService([]byte("http-test-secret"), time.Hour)
	pub := events.NopPublisher{}

	e := NewServer(&Deps{
		DB:             gdb,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		FrontendOrigin: testOrigin,
		Auth:           authmw.New(access.NewGuard(ts, r)),
		AuthHandler:    &AuthHTTP{Svc: &service.AuthService{Repo: r, Tokens: ts, Events: pub}},
		ProductHandler: &ProductHTTP{Svc: &service.CatalogService{Repo: r, Events: pub}},
	})
	return &testServer{e: e, db: gdb, tokens: ts}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rdr = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			rdr = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) register(t *testing.T, email, username, password string) {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": email, "username": username, "password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *testServer) login(t *testing.T, username, password string) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.AccessToken
}

// promote sets the role directly in the store; there is no endpoint for it.
func (s *testServer) promote(t *testing.T, username string) {
	t.Helper()
	require.NoError(t, s.db.Model(&models.User{}).
		Where("username = ?", username).
		Update("role", models.RoleAdmin).Error)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

type detail struct {
	Detail string `json:"detail"`
}

func serve(s *testServer, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}
