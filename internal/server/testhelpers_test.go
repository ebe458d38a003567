package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devconnector/internal/config"
	"devconnector/internal/database"
	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache DB keeps all pooled connections on the same
	// in-memory database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test_secret",
		JWTExpiryHours: 1,
		Port:           "0",
		GithubAPIBase:  "https://api.github.com",
		Env:            "test",
	}
}

func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	srv, err := NewServerWithDeps(testConfig(), db, nil)
	require.NoError(t, err)
	return srv, srv.App(), db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Avatar:   "https://www.gravatar.com/avatar/x?s=200&r=pg&d=mm",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func tokenFor(t *testing.T, srv *Server, userID uint) string {
	t.Helper()

	token, err := srv.generateToken(userID)
	require.NoError(t, err)
	return token
}

// doJSON issues a request with an optional JSON body and auth token and
// returns the response plus its decoded body bytes.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	return resp, raw
}

// doJSONBearer hits GET /api/auth using an Authorization Bearer header
// instead of x-auth-token.
func doJSONBearer(t *testing.T, app *fiber.App, token string) (*http.Response, []byte) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	return resp, raw
}

// firstErrorMsg extracts errors[0].msg from a validation failure body.
func firstErrorMsg(t *testing.T, raw []byte) string {
	t.Helper()

	var body struct {
		Errors []struct {
			Msg string `json:"msg"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.NotEmpty(t, body.Errors)
	return body.Errors[0].Msg
}

// msgOf extracts the msg field from a {"msg": ...} body.
func msgOf(t *testing.T, raw []byte) string {
	t.Helper()

	var body struct {
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body.Msg
}
