//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/coursetrack-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/coursetrack-backend/internal/app"
	"github.com/heartmarshall/coursetrack-backend/internal/auth"
	"github.com/heartmarshall/coursetrack-backend/internal/config"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

const (
	testJWTSecret = "e2e-test-secret-that-is-long-enough-for-hs256"
	testJWTIssuer = "coursetrack-e2e"
)

// testServer holds everything needed for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

// setupTestServer creates a test HTTP server wired exactly like the
// production binary, minus the Redis cache and the rate limiter.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      testJWTSecret,
			JWTIssuer:      testJWTIssuer,
			AccessTokenTTL: 15 * time.Minute,
		},
		Ledger: config.LedgerConfig{
			EngagementThreshold:   600 * time.Second,
			CertificateThreshold:  90,
			DoubtQueryMaxLength:   2000,
			DoubtListDefaultLimit: 50,
			DoubtListMaxLimit:     200,
			DashboardConcurrency:  4,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
	}

	handler, stop := app.NewHTTPHandler(cfg, logger, pool, nil)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    auth.NewJWTManager(testJWTSecret, testJWTIssuer, 15*time.Minute),
	}
}

// token issues an access token the way the auth collaborator would.
func (ts *testServer) token(t *testing.T, userID uuid.UUID, role domain.UserRole) string {
	t.Helper()
	tok, err := ts.jwt.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return tok
}

// learnerToken returns a fresh learner id with a matching token.
func (ts *testServer) learnerToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, ts.token(t, id, domain.UserRoleLearner)
}

// mentorToken returns a fresh mentor id with a matching token.
func (ts *testServer) mentorToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, ts.token(t, id, domain.UserRoleMentor)
}

// doJSON sends a request with an optional JSON body and bearer token and
// decodes the JSON response into a generic map.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	}
	return resp.StatusCode, result
}

// number reads a JSON number field as int.
func number(t *testing.T, m map[string]any, key string) int {
	t.Helper()
	v, ok := m[key].(float64)
	require.True(t, ok, "expected number %q in %v", key, m)
	return int(v)
}

// object reads a nested JSON object field.
func object(t *testing.T, m map[string]any, key string) map[string]any {
	t.Helper()
	v, ok := m[key].(map[string]any)
	require.True(t, ok, "expected object %q in %v", key, m)
	return v
}

// list reads a JSON array field.
func list(t *testing.T, m map[string]any, key string) []any {
	t.Helper()
	v, ok := m[key].([]any)
	require.True(t, ok, "expected array %q in %v", key, m)
	return v
}

func topicPath(courseID, topicID uuid.UUID) string {
	return "/v1/courses/" + courseID.String() + "/topics/" + topicID.String()
}

func coursePath(courseID uuid.UUID) string {
	return "/v1/courses/" + courseID.String()
}
