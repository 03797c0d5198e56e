package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawtrol/internal/officer/service"
	"pawtrol/internal/officer/store"
	"pawtrol/pkg/platform/middleware/admin"
	"pawtrol/pkg/platform/middleware/request"
)

const adminToken = "test-admin-token"

func newOfficerRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(store.NewInMemory(), service.WithLogger(logger))
	h := New(svc, logger)

	r := chi.NewRouter()
	r.Use(request.RequestID)
	h.RegisterPublic(r)
	h.Register(r)
	r.Group(func(r chi.Router) {
		r.Use(admin.RequireToken(adminToken, logger))
		h.RegisterAdmin(r)
	})
	return r
}

func registerPayload() []byte {
	body, _ := json.Marshal(map[string]string{
		"name":            "Dana Reyes",
		"badge_number":    "AC-1204",
		"department":      "Springfield Animal Control",
		"department_type": "animal_control",
		"jurisdiction":    "Springfield County",
		"email":           "dreyes@springfield.gov",
		"phone":           "555-0170",
	})
	return body
}

func TestRegisterOfficer(t *testing.T) {
	router := newOfficerRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/officers", bytes.NewReader(registerPayload()))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp OfficerResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.ID)
	assert.False(t, resp.Verified)
	assert.False(t, resp.ReviewRequired)

	// Contact details never appear in the directory projection.
	assert.NotContains(t, rec.Body.String(), "dreyes@springfield.gov")

	t.Run("duplicate badge conflicts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/officers", bytes.NewReader(registerPayload()))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown department type rejected", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"name":            "Sam Chen",
			"department":      "Somewhere",
			"department_type": "navy",
			"email":           "schen@somewhere.gov",
		})
		req := httptest.NewRequest(http.MethodPost, "/officers", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestVerifyOfficer(t *testing.T) {
	router := newOfficerRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/officers", bytes.NewReader(registerPayload()))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created OfficerResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))

	t.Run("admin token required", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/officers/"+created.ID+"/verify", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("verify flips the flag", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/officers/"+created.ID+"/verify", nil)
		req.Header.Set("X-Admin-Token", adminToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp OfficerResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Verified)
	})

	t.Run("second verify conflicts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/officers/"+created.ID+"/verify", nil)
		req.Header.Set("X-Admin-Token", adminToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown officer not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/officers/8e5a0a05-64cd-4c83-a9a3-bd34b8b8937c/verify", nil)
		req.Header.Set("X-Admin-Token", adminToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetOfficer(t *testing.T) {
	router := newOfficerRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/officers", bytes.NewReader(registerPayload()))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created OfficerResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))

	req = httptest.NewRequest(http.MethodGet, "/officers/"+created.ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/officers/not-a-uuid", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
