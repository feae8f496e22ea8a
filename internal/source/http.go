package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/ampere07/operationmobileapp-sub006/internal/record"
)

// HTTP fetches records from the console API: GET <base>/<scope> returning a
// JSON array (or data envelope) of records.
type HTTP struct {
	base   *url.URL
	client *http.Client
	log    zerolog.Logger
}

// NewHTTP builds an HTTP source for the given API base URL.
func NewHTTP(baseURL string, log zerolog.Logger) (*HTTP, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	return &HTTP{
		base:   u,
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log.With().Str("component", "source.http").Logger(),
	}, nil
}

// Fetch implements Source.
func (h *HTTP) Fetch(ctx context.Context, scope string) ([]record.R, error) {
	u := h.base.JoinPath(scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", scope, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", scope, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: read body: %w", scope, err)
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", scope, err)
	}

	h.log.Debug().
		Str("scope", scope).
		Int("records", len(records)).
		Dur("elapsed", time.Since(start)).
		Msg("fetched records")

	return records, nil
}
