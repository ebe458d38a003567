// Package github proxies repository listings from the GitHub API.
package github

import (
	"fmt"
	"net/url"

	"devconnector/internal/models"
	"devconnector/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// Client fetches a user's public repositories. No caching, no retries; the
// raw upstream payload is relayed to the caller.
type Client struct {
	baseURL string
}

// NewClient returns a Client talking to baseURL (https://api.github.com in
// production, an httptest server in tests).
func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

// Repos returns the raw JSON list of the five most recent repositories for
// username. A non-200 upstream response maps to NotFound so an unknown
// username renders as a 404, not a server error.
func (c *Client) Repos(username string) ([]byte, error) {
	uri := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc",
		c.baseURL, url.PathEscape(username))

	agent := fiber.Get(uri)
	agent.Set("User-Agent", "devconnector")
	agent.Set("Accept", "application/vnd.github.v3+json")

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		observability.GithubUpstreamFailures.Inc()
		return nil, models.NewInternalError(errs[0])
	}
	if code != fiber.StatusOK {
		observability.GithubUpstreamFailures.Inc()
		return nil, models.NewNotFoundError("No Github profile found")
	}
	return body, nil
}
