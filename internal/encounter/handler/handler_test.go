package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawtrol/internal/disclosure"
	"pawtrol/internal/encounter/service"
	encounterstore "pawtrol/internal/encounter/store"
	officerservice "pawtrol/internal/officer/service"
	officerstore "pawtrol/internal/officer/store"
	kafkaproducer "pawtrol/internal/platform/kafka/producer"
	"pawtrol/internal/ranking"
	"pawtrol/internal/registry"
	id "pawtrol/pkg/domain"
	auditpublisher "pawtrol/pkg/platform/audit/publisher"
	auditmemory "pawtrol/pkg/platform/audit/store/memory"
	"pawtrol/pkg/platform/middleware/auth"
	"pawtrol/pkg/platform/middleware/request"
)

const signingKey = "test-signing-key"

// rankerFunc adapts a function to the ranking client interface so tests can
// script collaborator behavior per case.
type rankerFunc func(ctx context.Context, req ranking.Request) ([]ranking.Candidate, error)

func (f rankerFunc) Rank(ctx context.Context, req ranking.Request) ([]ranking.Candidate, error) {
	return f(ctx, req)
}

type testEnv struct {
	router   http.Handler
	officers *officerservice.Service
	contacts *registry.InMemoryStore
	ranker   rankerFunc
}

func newTestEnv(t *testing.T, ranker rankerFunc) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	auditPub := auditpublisher.New(auditmemory.New(), kafkaproducer.NewNoopProducer(), logger)
	officerSvc := officerservice.New(officerstore.NewInMemory(),
		officerservice.WithLogger(logger),
	)
	contacts := registry.NewInMemoryStore()
	encounterSvc := service.New(
		encounterstore.NewInMemoryStore(),
		officerSvc,
		ranker,
		contacts,
		service.WithLogger(logger),
		service.WithAuditPublisher(auditPub),
		service.WithDisclosurePolicy(disclosure.New(disclosure.DefaultThreshold)),
	)

	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(auth.NewValidator(signingKey), logger))
		New(encounterSvc, logger).Register(r)
	})

	return &testEnv{router: r, officers: officerSvc, contacts: contacts, ranker: ranker}
}

// registerVerifiedOfficer creates a directory entry and flips its verified
// flag, returning the officer id and a session token for it.
func registerVerifiedOfficer(t *testing.T, env *testEnv) (id.OfficerID, string) {
	t.Helper()
	officer, err := env.officers.Register(context.Background(), officerservice.RegisterCommand{
		Name:           "Dana Reyes",
		BadgeNumber:    "AC-1204",
		Department:     "Springfield Animal Control",
		DepartmentType: "animal_control",
		Email:          "dreyes@springfield.gov",
	})
	require.NoError(t, err)
	_, err = env.officers.MarkVerified(context.Background(), officer.ID)
	require.NoError(t, err)
	return officer.ID, sessionToken(t, officer.ID)
}

func sessionToken(t *testing.T, officerID id.OfficerID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		OfficerID: officerID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(signingKey))
	require.NoError(t, err)
	return signed
}

func scanBody(t *testing.T, withPhoto, withLocation bool) *bytes.Reader {
	t.Helper()
	payload := map[string]any{
		"mime_type":   "image/jpeg",
		"animal_type": "dog",
	}
	if withPhoto {
		payload["photo_base64"] = base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))
	}
	if withLocation {
		payload["latitude"] = 40.7
		payload["longitude"] = -73.9
		payload["address"] = "5th and Main"
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func doRequest(env *testEnv, method, path, token string, body *bytes.Reader) *httptest.ResponseRecorder {
	if body == nil {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitScan_RequiresSession(t *testing.T) {
	env := newTestEnv(t, func(context.Context, ranking.Request) ([]ranking.Candidate, error) {
		return nil, nil
	})

	rec := doRequest(env, http.MethodPost, "/scans", "", scanBody(t, true, true))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitScan_UnverifiedOfficerForbidden(t *testing.T) {
	env := newTestEnv(t, func(context.Context, ranking.Request) ([]ranking.Candidate, error) {
		t.Fatal("ranking collaborator must not be called for an unverified officer")
		return nil, nil
	})

	officer, err := env.officers.Register(context.Background(), officerservice.RegisterCommand{
		Name:           "New Hire",
		BadgeNumber:    "AC-9999",
		Department:     "Springfield Animal Control",
		DepartmentType: "animal_control",
		Email:          "newhire@springfield.gov",
	})
	require.NoError(t, err)

	rec := doRequest(env, http.MethodPost, "/scans", sessionToken(t, officer.ID), scanBody(t, true, true))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "unverified_officer")
}

func TestSubmitScan_MissingInputs(t *testing.T) {
	env := newTestEnv(t, func(context.Context, ranking.Request) ([]ranking.Candidate, error) {
		t.Fatal("ranking collaborator must not be called without a photo and location")
		return nil, nil
	})
	_, token := registerVerifiedOfficer(t, env)

	t.Run("no photo", func(t *testing.T) {
		rec := doRequest(env, http.MethodPost, "/scans", token, scanBody(t, false, true))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "photo_missing")
	})

	t.Run("no location", func(t *testing.T) {
		rec := doRequest(env, http.MethodPost, "/scans", token, scanBody(t, true, false))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "location_unavailable")
	})
}

func TestScanThenRTOJourney(t *testing.T) {
	petID := id.PetID("pet-00421")
	env := newTestEnv(t, func(context.Context, ranking.Request) ([]ranking.Candidate, error) {
		return []ranking.Candidate{
			{PetID: petID, Confidence: 93, Name: "Mochi", Species: "dog"},
			{PetID: "pet-00099", Confidence: 41},
		}, nil
	})
	_, token := registerVerifiedOfficer(t, env)

	require.NoError(t, env.contacts.Upsert(context.Background(), &registry.OwnerContact{
		PetID:     petID,
		OwnerName: "J. Alvarez",
		Phone:     "555-0142",
	}))

	rec := doRequest(env, http.MethodPost, "/scans", token, scanBody(t, true, true))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var scan struct {
		EncounterID         string `json:"encounter_id"`
		MatchesFound        int    `json:"matches_found"`
		HighConfidenceMatch bool   `json:"high_confidence_match"`
		OwnerContact        *struct {
			OwnerName string `json:"owner_name"`
		} `json:"owner_contact"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&scan))
	assert.Equal(t, 2, scan.MatchesFound)
	assert.True(t, scan.HighConfidenceMatch)
	require.NotNil(t, scan.OwnerContact)
	assert.Equal(t, "J. Alvarez", scan.OwnerContact.OwnerName)

	outcome, err := json.Marshal(map[string]any{
		"outcome":            "rto",
		"owner_id_verified":  true,
		"signature_captured": true,
	})
	require.NoError(t, err)

	rec = doRequest(env, http.MethodPost, "/encounters/"+scan.EncounterID+"/outcome", token, bytes.NewReader(outcome))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var closed EncounterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&closed))
	assert.Equal(t, "closed", closed.Status)
	assert.Equal(t, "rto", closed.Outcome)

	// A second close attempt conflicts.
	rec = doRequest(env, http.MethodPost, "/encounters/"+scan.EncounterID+"/outcome", token, bytes.NewReader(outcome))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "encounter_already_closed")

	// The audit trail shows scan, disclosure, and outcome without contact data.
	rec = doRequest(env, http.MethodGet, "/encounters/"+scan.EncounterID+"/audit", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	trail := rec.Body.String()
	assert.Contains(t, trail, "scan_submitted")
	assert.Contains(t, trail, "contact_disclosed")
	assert.Contains(t, trail, "outcome_recorded")
	assert.NotContains(t, trail, "555-0142")
	assert.NotContains(t, trail, "J. Alvarez")
}

func TestSubmitScan_BelowThresholdNoContact(t *testing.T) {
	env := newTestEnv(t, func(context.Context, ranking.Request) ([]ranking.Candidate, error) {
		return []ranking.Candidate{{PetID: "pet-00007", Confidence: 84, Name: "Biscuit"}}, nil
	})
	_, token := registerVerifiedOfficer(t, env)

	rec := doRequest(env, http.MethodPost, "/scans", token, scanBody(t, true, true))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "pet-00007")
	assert.NotContains(t, body, "owner_contact")

	var scan struct {
		EncounterID         string `json:"encounter_id"`
		HighConfidenceMatch bool   `json:"high_confidence_match"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &scan))
	assert.False(t, scan.HighConfidenceMatch)

	// RTO is not available without a disclosed contact.
	outcome, _ := json.Marshal(map[string]any{
		"outcome":            "rto",
		"owner_id_verified":  true,
		"signature_captured": true,
	})
	rec = doRequest(env, http.MethodPost, "/encounters/"+scan.EncounterID+"/outcome", token, bytes.NewReader(outcome))
	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	assert.Contains(t, rec.Body.String(), "rto_precondition_failed")
}

func TestListEncounters_OwnerOnly(t *testing.T) {
	env := newTestEnv(t, func(context.Context, ranking.Request) ([]ranking.Candidate, error) {
		return nil, nil
	})
	officerID, token := registerVerifiedOfficer(t, env)

	rec := doRequest(env, http.MethodPost, "/scans", token, scanBody(t, true, true))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(env, http.MethodGet, "/officers/"+officerID.String()+"/encounters", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var encs []EncounterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&encs))
	assert.Len(t, encs, 1)

	// Another verified officer cannot read the first officer's list.
	other, err := env.officers.Register(context.Background(), officerservice.RegisterCommand{
		Name:           "Sam Chen",
		BadgeNumber:    "AC-2000",
		Department:     "Springfield Animal Control",
		DepartmentType: "animal_control",
		Email:          "schen@springfield.gov",
	})
	require.NoError(t, err)
	_, err = env.officers.MarkVerified(context.Background(), other.ID)
	require.NoError(t, err)

	rec = doRequest(env, http.MethodGet, "/officers/"+officerID.String()+"/encounters", sessionToken(t, other.ID), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
