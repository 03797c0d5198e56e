// Package e2e drives a running pawtrol server (plus the mock ranking
// service) through its HTTP API with godog scenarios.
package e2e

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TestContext holds per-scenario state: the officer session, the last HTTP
// response, and the encounter under test.
type TestContext struct {
	baseURL    string
	signingKey string
	adminToken string
	client     *http.Client

	officerID    string
	sessionToken string
	encounterID  string

	lastStatus int
	lastRaw    []byte
	lastBody   map[string]interface{}
}

// NewTestContext creates a fresh context bound to a running server.
func NewTestContext(baseURL, signingKey, adminToken string) *TestContext {
	return &TestContext{
		baseURL:    baseURL,
		signingKey: signingKey,
		adminToken: adminToken,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

// POST sends a JSON body. The officer session token is attached when present.
func (tc *TestContext) POST(path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, tc.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if tc.sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.sessionToken)
	}
	return tc.do(req)
}

// GET sends a request with the given extra headers. The officer session token
// is attached when present.
func (tc *TestContext) GET(path string, headers map[string]string) error {
	req, err := http.NewRequest(http.MethodGet, tc.baseURL+path, nil)
	if err != nil {
		return err
	}
	if tc.sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.sessionToken)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return tc.do(req)
}

func (tc *TestContext) do(req *http.Request) error {
	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	tc.lastStatus = resp.StatusCode
	tc.lastRaw = raw
	tc.lastBody = nil
	if len(raw) > 0 {
		var decoded map[string]interface{}
		if err := json.Unmarshal(raw, &decoded); err == nil {
			tc.lastBody = decoded
		}
	}
	return nil
}

// Status returns the status code of the last response.
func (tc *TestContext) Status() int { return tc.lastStatus }

// RawBody returns the last response body as a string.
func (tc *TestContext) RawBody() string { return string(tc.lastRaw) }

// GetResponseField returns a top-level field from the last JSON response.
func (tc *TestContext) GetResponseField(field string) (interface{}, error) {
	if tc.lastBody == nil {
		return nil, fmt.Errorf("last response was not a JSON object: %s", tc.lastRaw)
	}
	value, ok := tc.lastBody[field]
	if !ok {
		return nil, fmt.Errorf("field %q not present in response: %s", field, tc.lastRaw)
	}
	return value, nil
}

// ResponseContains reports whether the last JSON response has the field.
func (tc *TestContext) ResponseContains(field string) bool {
	_, ok := tc.lastBody[field]
	return ok
}

// SetEncounterID remembers the encounter under test.
func (tc *TestContext) SetEncounterID(encounterID string) { tc.encounterID = encounterID }

// GetEncounterID returns the remembered encounter ID.
func (tc *TestContext) GetEncounterID() string { return tc.encounterID }

// EncodePhoto returns a small base64 JPEG-ish payload for scan submissions.
func (tc *TestContext) EncodePhoto() string {
	return base64.StdEncoding.EncodeToString([]byte("e2e-photo-bytes"))
}

// RegisterOfficer registers a new officer with a unique badge and remembers
// its ID. It does not verify the officer or open a session.
func (tc *TestContext) RegisterOfficer() error {
	badge := uuid.NewString()[:8]
	if err := tc.POST("/officers", map[string]interface{}{
		"name":            "E2E Officer " + badge,
		"badge_number":    badge,
		"department":      "Springfield Animal Control",
		"department_type": "animal_control",
		"jurisdiction":    "Springfield",
		"email":           "officer-" + badge + "@springfield.gov",
		"phone":           "555-0100",
	}); err != nil {
		return err
	}
	if tc.lastStatus != http.StatusCreated {
		return fmt.Errorf("register officer returned %d: %s", tc.lastStatus, tc.lastRaw)
	}
	officerID, err := tc.GetResponseField("id")
	if err != nil {
		return err
	}
	tc.officerID = officerID.(string)
	return nil
}

// VerifyOfficer marks the remembered officer verified via the admin endpoint.
func (tc *TestContext) VerifyOfficer() error {
	req, err := http.NewRequest(http.MethodPost, tc.baseURL+"/admin/officers/"+tc.officerID+"/verify", nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Admin-Token", tc.adminToken)
	if err := tc.do(req); err != nil {
		return err
	}
	if tc.lastStatus != http.StatusOK {
		return fmt.Errorf("verify officer returned %d: %s", tc.lastStatus, tc.lastRaw)
	}
	return nil
}

// OpenSession mints a session token for the remembered officer using the
// shared signing key, standing in for the session collaborator.
func (tc *TestContext) OpenSession() error {
	claims := jwt.MapClaims{
		"officer_id": tc.officerID,
		"exp":        time.Now().Add(time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(tc.signingKey))
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}
	tc.sessionToken = token
	return nil
}
