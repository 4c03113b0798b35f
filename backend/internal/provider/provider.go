// Package provider holds the plumbing shared by the third-party API clients.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mateoroldos/personal-blog/shared/domain"
	apperrors "github.com/mateoroldos/personal-blog/shared/errors"
)

// response bodies are only kept for logs
const maxResponseBody = 64 << 10

// Credential is an API secret resolved at startup.
type Credential interface {
	Reveal() string
}

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// PostJSON sends payload as JSON and reports the provider's answer.
// A transport failure is returned as an error wrapping errors.ErrUpstreamUnavailable;
// a non-2xx answer is not an error, it comes back with OK unset.
func PostJSON(ctx context.Context, client HTTPDoer, name, url string, headers http.Header, payload any) (domain.ProviderResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.ProviderResult{}, fmt.Errorf("%s: failed to marshal request: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return domain.ProviderResult{}, fmt.Errorf("%s: failed to create request: %w", name, err)
	}
	for k, values := range headers {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return Do(client, name, req)
}

// Do executes req and reads a bounded copy of the response body.
func Do(client HTTPDoer, name string, req *http.Request) (domain.ProviderResult, error) {
	resp, err := client.Do(req)
	if err != nil {
		return domain.ProviderResult{}, apperrors.Unavailable(name, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return domain.ProviderResult{}, apperrors.Unavailable(name, fmt.Errorf("reading response: %w", err))
	}

	return domain.ProviderResult{
		OK:         resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}
