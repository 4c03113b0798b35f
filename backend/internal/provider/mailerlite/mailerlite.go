// Package mailerlite adds newsletter subscribers through the MailerLite v2 API.
package mailerlite

import (
	"context"
	"net/http"
	"strings"

	"github.com/mateoroldos/personal-blog/backend/internal/provider"
	"github.com/mateoroldos/personal-blog/shared/domain"
)

const (
	DefaultBaseURL = "https://api.mailerlite.com"
	providerName   = "mailerlite"
	apiKeyHeader   = "X-MailerLite-ApiKey"
)

type subscriberRequest struct {
	Email       string   `json:"email"`
	Resubscribe bool     `json:"resubscribe"`
	Groups      []string `json:"groups"`
}

type Client struct {
	baseURL    string
	groupID    string
	apiKey     provider.Credential
	httpClient provider.HTTPDoer
}

func New(baseURL, groupID string, apiKey provider.Credential, httpClient provider.HTTPDoer) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		groupID:    groupID,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Subscribe adds s to the configured group, re-activating unsubscribed addresses.
func (c *Client) Subscribe(ctx context.Context, s domain.Subscription) (domain.ProviderResult, error) {
	headers := http.Header{}
	headers.Set(apiKeyHeader, c.apiKey.Reveal())

	payload := subscriberRequest{
		Email:       s.Email,
		Resubscribe: true,
		Groups:      []string{c.groupID},
	}
	return provider.PostJSON(ctx, c.httpClient, providerName, c.baseURL+"/api/v2/subscribers", headers, payload)
}
