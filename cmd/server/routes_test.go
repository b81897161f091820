package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/minaret/internal/config"
	"github.com/Nixie-Tech-LLC/minaret/internal/db"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
	"github.com/Nixie-Tech-LLC/minaret/internal/redis"
	"github.com/Nixie-Tech-LLC/minaret/internal/storage"
)

func setupRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, api.RegisterValidators())

	cfg := &config.Config{
		SecretKey: "supersecret",
		City:      "COLOMBO",
		Timezone:  "UTC",
		UploadDir: t.TempDir(),
	}

	r := gin.New()
	RegisterRoutes(r, cfg, Services{
		Store:    db.NewMemoryStore(),
		Provider: prayer.NewProvider(prayer.DefaultTable),
		Limiter:  redis.NoopLimiter{},
		Storage:  storage.NewLocalStorage(cfg.UploadDir, uploadsPrefix),
	})
	return r, cfg
}

func request(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminTimetableChangesPublicSchedule(t *testing.T) {
	r, _ := setupRouter(t)

	w := request(r, http.MethodPost, "/api/admin/auth/signup", "", gin.H{
		"email":    "test@example.com",
		"password": "12345678",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var signup struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))

	w = request(r, http.MethodPut, "/api/admin/timetable", "", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(r, http.MethodPut, "/api/admin/timetable", signup.Token, gin.H{
		"fajr": "05:15", "sunrise": "06:00", "dhuhr": "12:30",
		"asr": "16:00", "maghrib": "18:15", "isha": "19:30",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = request(r, http.MethodGet, "/api/site/prayer/today?date=2025-03-20", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var today struct {
		Prayers []struct {
			Label string `json:"label"`
			Time  string `json:"time"`
		} `json:"prayers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &today))
	require.Len(t, today.Prayers, 5)
	assert.Equal(t, "Dhuhr", today.Prayers[1].Label)
	assert.Equal(t, "12:29 PM", today.Prayers[1].Time)
	assert.Equal(t, "3:59 PM", today.Prayers[2].Time)
}

func TestHealthAndPages(t *testing.T) {
	r, _ := setupRouter(t)

	w := request(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"OK"`)

	w = request(r, http.MethodGet, "/integrations/athan", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "COLOMBO")

	w = request(r, http.MethodGet, "/integrations/calendar", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUploadsServed(t *testing.T) {
	r, cfg := setupRouter(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.UploadDir, "eid.jpg"), []byte("jpeg"), 0o644))

	w := request(r, http.MethodGet, "/uploads/eid.jpg", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpeg", w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/site/forms/member", nil)
	req.Header.Set("Origin", "https://mosque.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://mosque.example.org", w.Header().Get("Access-Control-Allow-Origin"))
}
