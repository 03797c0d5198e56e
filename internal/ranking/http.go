package ranking

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPClient calls the ranking collaborator over HTTP JSON. One attempt per
// scan; retry policy belongs to the caller (the officer resubmits the scan).
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient builds a ranking client against the given base URL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// rankRequest is the wire shape sent to the collaborator.
type rankRequest struct {
	PhotoBase64 string  `json:"photo_base64"`
	MimeType    string  `json:"mime_type"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address,omitempty"`
}

// rankResponse is the wire shape returned by the collaborator.
type rankResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Rank submits the photo and location and returns the normalized candidate
// list. A zero-candidate response is a valid result, not an error.
func (c *HTTPClient) Rank(ctx context.Context, req Request) ([]Candidate, error) {
	body, err := json.Marshal(rankRequest{
		PhotoBase64: base64.StdEncoding.EncodeToString(req.Photo),
		MimeType:    req.MimeType,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal rank request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rank", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build rank request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call ranking service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ranking service returned status %d", resp.StatusCode)
	}

	var decoded rankResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode rank response: %w", err)
	}

	return Normalize(decoded.Candidates), nil
}
