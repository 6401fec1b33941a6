package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() Config {
	return Config{
		AppPort:        ":4001",
		DatabaseDriver: "sqlite",
		DatabaseDSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String()),
		JWTSecret:      "test_jwt_secret",
		RabbitMQURL:    "",
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := loadConfig()
	assert.Equal(t, ":4000", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Empty(t, cfg.RabbitMQURL)
}

func TestNewAppLiveness(t *testing.T) {
	cfg := testConfig()
	db, err := openDatabase(cfg)
	assert.NoError(t, err)

	app := newApp(db, nil, cfg)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "running")
}

func TestNewAppHealthCheck(t *testing.T) {
	cfg := testConfig()
	db, err := openDatabase(cfg)
	assert.NoError(t, err)

	app := newApp(db, nil, cfg)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health["status"])
}

func TestNewAppProtectedRoutesRequireAuth(t *testing.T) {
	cfg := testConfig()
	db, err := openDatabase(cfg)
	assert.NoError(t, err)

	app := newApp(db, nil, cfg)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/orders", nil), -1)
	assert.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The catalog stays public.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/products", nil), -1)
	assert.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
