// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-draw/auth"
	"github.com/danielhkuo/quickly-draw/cliparse"
	"github.com/danielhkuo/quickly-draw/db"
	"github.com/danielhkuo/quickly-draw/draw"
	"github.com/danielhkuo/quickly-draw/models"
	"github.com/danielhkuo/quickly-draw/store"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// The connection is closed when the test ends.
func SetupTestDB(t *testing.T, exclusive bool) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, exclusive); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             3318,
		DatabaseType:     db.TypeSQLite,
		DatabaseURL:      ":memory:",
		Policy:           models.PolicyBalanced,
		AdminUser:        "admin",
		AdminPassword:    "test-password",
		AdminTokenSecret: "test-token-secret",
		AdminTokenTTL:    time.Hour,
	}
}

// NewTestEngine returns an engine over a fresh database for the given policy
// with the default overrides.
func NewTestEngine(t *testing.T, policy draw.Policy, opts ...draw.Option) (*draw.Engine, *sql.DB) {
	t.Helper()

	conn := SetupTestDB(t, policy.Exclusive())
	engine := draw.NewEngine(store.New(conn), policy, draw.DefaultOverrides(), opts...)
	return engine, conn
}

// AddTestItem adds an item to the catalog and returns it
func AddTestItem(t *testing.T, engine *draw.Engine, name string) models.Item {
	t.Helper()

	item, err := engine.AddItem(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create test item %q: %v", name, err)
	}
	return item
}

// AdminToken issues a valid admin token for cfg
func AdminToken(t *testing.T, cfg cliparse.Config) string {
	t.Helper()

	token, _, err := auth.IssueAdminToken(cfg.AdminTokenSecret, cfg.AdminTokenTTL, time.Now())
	if err != nil {
		t.Fatalf("Failed to issue admin token: %v", err)
	}
	return token
}

// AdminHeaders returns the Authorization header for an admin request
func AdminHeaders(t *testing.T, cfg cliparse.Config) map[string]string {
	t.Helper()
	return map[string]string{"Authorization": "Bearer " + AdminToken(t, cfg)}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
