// Package github reads repository metadata from the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/mateoroldos/personal-blog/backend/internal/provider"
	apperrors "github.com/mateoroldos/personal-blog/shared/errors"
)

const (
	DefaultBaseURL = "https://api.github.com"
	providerName   = "github"
)

type repository struct {
	StargazersCount *int `json:"stargazers_count"`
}

type Client struct {
	baseURL    string
	httpClient provider.HTTPDoer
}

// NewHTTPClient returns a client authenticating with token, or an anonymous
// one when token is empty. Anonymous calls share GitHub's low per-IP limit.
func NewHTTPClient(token string, timeout time.Duration) *http.Client {
	if token == "" {
		return &http.Client{Timeout: timeout}
	}
	c := oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	c.Timeout = timeout
	return c
}

func New(baseURL string, httpClient provider.HTTPDoer) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Stars returns the stargazer count of user/repo. A missing count reads as 0.
func (c *Client) Stars(ctx context.Context, user, repo string) (int, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, url.PathEscape(user), url.PathEscape(repo))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("github: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	res, err := provider.Do(c.httpClient, providerName, req)
	if err != nil {
		return 0, err
	}
	if !res.OK {
		return 0, apperrors.Rejected(providerName, res.StatusCode, res.Body)
	}

	var repoInfo repository
	if err := json.Unmarshal(res.Body, &repoInfo); err != nil {
		return 0, fmt.Errorf("github: failed to decode %s/%s: %w", user, repo, err)
	}
	if repoInfo.StargazersCount == nil {
		return 0, nil
	}
	return *repoInfo.StargazersCount, nil
}
