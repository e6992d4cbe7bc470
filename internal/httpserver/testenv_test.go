package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wheelmart/internal/db"
	"wheelmart/internal/repo"
	"wheelmart/internal/service"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvStatic(t, "")
}

func newTestEnvStatic(t *testing.T, staticDir string) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormRepo := &repo.GormRepo{DB: gdb}

	e := echo.New()
	Register(e, &Deps{
		AuthHandler:    &AuthHTTP{Svc: &service.AuthService{Repo: gormRepo, JWTSecret: testSecret}},
		CatalogHandler: &CatalogHTTP{Svc: &service.CatalogService{Repo: gormRepo}},
		OrderHandler:   &OrderHTTP{Svc: &service.OrderService{Repo: gormRepo}},
		JWTSecret:      testSecret,
		StaticDir:      staticDir,
	})

	return &testEnv{T: t, E: e, DB: gdb}
}

func (env *testEnv) doJSON(method, path string, body any, token string) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func register(t *testing.T, env *testEnv, username, email, password string) {
	t.Helper()
	rec := env.doJSON(http.MethodPost, "/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
		"address":  "1 Test Street",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
}

func login(t *testing.T, env *testEnv, email, password string) string {
	t.Helper()
	rec := env.doJSON(http.MethodPost, "/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func registerAndLogin(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	register(t, env, "user_"+email, email, "password")
	return login(t, env, email, "password")
}
