// Package resend sends transactional email through the Resend HTTP API.
package resend

import (
	"context"
	"net/http"
	"strings"

	"github.com/mateoroldos/personal-blog/backend/internal/provider"
	"github.com/mateoroldos/personal-blog/shared/domain"
)

const (
	DefaultBaseURL = "https://api.resend.com"
	providerName   = "resend"
)

type Client struct {
	baseURL    string
	apiKey     provider.Credential
	httpClient provider.HTTPDoer
}

func New(baseURL string, apiKey provider.Credential, httpClient provider.HTTPDoer) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// SendEmail posts msg to /emails. A non-2xx answer is reported through the
// returned result; only transport failures are errors.
func (c *Client) SendEmail(ctx context.Context, msg domain.OutgoingEmail) (domain.ProviderResult, error) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.apiKey.Reveal())

	return provider.PostJSON(ctx, c.httpClient, providerName, c.baseURL+"/emails", headers, msg)
}
