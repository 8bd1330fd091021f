// Package fmcsa provides a thin HTTP client for the FMCSA QCMobile
// carrier registry.
package fmcsa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the production QCMobile services endpoint.
const DefaultBaseURL = "https://mobile.fmcsa.dot.gov/qc/services"

// ErrCarrierNotFound is returned when the registry has no record for the
// requested MC number (upstream 404).
var ErrCarrierNotFound = errors.New("carrier not found in FMCSA registry")

// StatusError reports an unexpected response status from the registry.
// The body is kept verbatim for diagnostics.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fmcsa: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Carrier mirrors the content.carrier object of a registry response.
// Fields not surfaced by this service are omitted.
type Carrier struct {
	LegalName        string      `json:"legalName"`
	DBAName          string      `json:"dbaName"`
	DOTNumber        json.Number `json:"dotNumber"`
	AllowedToOperate string      `json:"allowedToOperate"`
	SafetyRating     string      `json:"safetyRating"`
	SafetyRatingDate string      `json:"safetyRatingDate"`
	StatusCode       string      `json:"statusCode"`
	PhyState         string      `json:"phyState"`
}

type carrierEnvelope struct {
	Content struct {
		Carrier Carrier `json:"carrier"`
	} `json:"content"`
}

// Client queries the FMCSA registry over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a registry client. The timeout bounds the whole
// request including body read; the upstream has no SLA, so callers must
// not run without one.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Carrier fetches the registry record for a normalized (digits-only) MC
// number. The webKey credential is passed as a query parameter, which is
// how QCMobile authenticates requests.
func (c *Client) Carrier(ctx context.Context, mcNumber, webKey string) (*Carrier, error) {
	u := fmt.Sprintf("%s/carriers/%s?webKey=%s", c.baseURL, url.PathEscape(mcNumber), url.QueryEscape(webKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrCarrierNotFound
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var envelope carrierEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding registry response: %w", err)
	}

	return &envelope.Content.Carrier, nil
}
