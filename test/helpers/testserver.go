package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"careerpilot_backend/internal/app"
	"careerpilot_backend/internal/auth"
	"careerpilot_backend/internal/config"
	"careerpilot_backend/internal/logger"
	"careerpilot_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestServer wraps an httptest server bound to an in-memory database.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer builds the full router on top of a fresh SQLite database.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	// Env-driven config so LoadConfig skips config.yaml. The DSN value is
	// unused: the router runs on the handle from NewTestDB.
	os.Setenv("DATABASE_URL", "file::memory:")
	os.Setenv("SERVER_ENV", "test")
	os.Setenv("JWT_SECRET", "test-jwt-secret")
	os.Setenv("PAYMENT_WEBHOOK_SECRET", "test-webhook-secret")

	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	db := NewTestDB(t)
	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

// Close shuts the server down. Safe to defer from a TestMain.
func (ts *TestServer) Close() {
	ts.Server.Close()
}

// CreateAndLoginUser inserts a user and mints a bearer token for it.
func CreateAndLoginUser(t *testing.T, db *gorm.DB, user *models.User) (string, *models.User) {
	t.Helper()

	user = CreateUser(t, db, user)
	token, err := auth.GenerateToken(user.ClerkUserID)
	require.NoError(t, err, "failed to mint test token")
	return token, user
}

// SendRequest performs an HTTP call against the test server and returns
// the response together with its body.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "failed to encode request body")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err, "failed to build HTTP request")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err, "failed to send HTTP request")

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err, "failed to read response body")
	res.Body.Close()

	return res, string(resBody)
}
