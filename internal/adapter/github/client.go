// Package github builds contributor records from github repository statistics.
package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/avatargrid/internal/app"
)

const (
	defaultStatsPollInterval = 5 * time.Second
	defaultStatsPollAttempts = 7
	defaultStatsMaxBytes     = 30 << 20
)

// ErrStatsNotReady is returned when github keeps computing repository statistics
// after all poll attempts.
var ErrStatsNotReady = errors.New("github statistics not ready")

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client reads contributor statistics from github rest api.
// It implements app.ContributorsSource.
type Client struct {
	doer    HTTPDoer
	baseURL string
	token   string

	pollInterval time.Duration
	pollAttempts int
	maxBytes     int64
}

var _ app.ContributorsSource = &Client{}

// NewClient creates github client for api under baseURL, eg. https://api.github.com.
// Token is optional, anonymous calls have lower rate limit.
func NewClient(doer HTTPDoer, baseURL string, token string) *Client {
	return &Client{
		doer:    doer,
		baseURL: baseURL,
		token:   token,

		pollInterval: defaultStatsPollInterval,
		pollAttempts: defaultStatsPollAttempts,
		maxBytes:     defaultStatsMaxBytes,
	}
}

// ContributorsByRepo returns contributors of given repository with their total commits count.
// Contributors with deleted accounts are skipped.
func (c *Client) ContributorsByRepo(ctx context.Context, repo app.Repo) ([]app.Contributor, error) {
	if repo.Owner == "" {
		return nil, app.InvalidRequestError("repository owner cannot be empty")
	}
	if repo.Name == "" {
		return nil, app.InvalidRequestError("repository name cannot be empty")
	}

	body, err := c.pollStats(ctx, path.Join("repos", repo.Owner, repo.Name, "stats", "contributors"))
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return []app.Contributor{}, nil
	}

	var stats statsResponse
	if err := jsoniter.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("decoding %s statistics: %w", repo, err)
	}

	return stats.ToContributors(), nil
}

// pollStats calls statistics endpoint until github stops answering with 202 Accepted,
// which means statistics are still being computed.
func (c *Client) pollStats(ctx context.Context, endpoint string) ([]byte, error) {
	for attempt := 1; ; attempt++ {
		req, err := c.newRequest(ctx, endpoint)
		if err != nil {
			return nil, err
		}

		status, body, err := c.do(req)
		if err != nil {
			return nil, err
		}
		if status != http.StatusAccepted {
			return body, nil
		}
		if attempt >= c.pollAttempts {
			return nil, fmt.Errorf("%w after %d attempts", ErrStatsNotReady, attempt)
		}

		t := time.NewTimer(c.pollInterval)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		}
	}
}

func (c *Client) newRequest(ctx context.Context, endpoint string) (*http.Request, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}
	u.Path = path.Join("/", u.Path, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	return req, nil
}

// do executes request and returns response status with body.
// Body is empty for 202 and 204 responses.
func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.doer.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("calling github api: %w", err)
	}
	// Drain before close so the connection can be reused.
	defer func() {
		_, _ = io.CopyN(ioutil.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusAccepted, resp.StatusCode == http.StatusNoContent:
		return resp.StatusCode, nil, nil
	case rateLimitExceeded(resp):
		return resp.StatusCode, nil, app.TooManyRequestsError("github rate limit exceeded")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return resp.StatusCode, nil, fmt.Errorf("unexpected github response status: %d", resp.StatusCode)
	}

	body, err := ioutil.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading github response: %w", err)
	}
	if int64(len(body)) > c.maxBytes {
		return resp.StatusCode, nil, fmt.Errorf("github response exceeds %d bytes", c.maxBytes)
	}

	return resp.StatusCode, body, nil
}

func rateLimitExceeded(resp *http.Response) bool {
	if resp.StatusCode != http.StatusForbidden && resp.StatusCode != http.StatusTooManyRequests {
		return false
	}
	remaining, err := strconv.Atoi(resp.Header.Get("X-RateLimit-Remaining"))

	return err == nil && remaining == 0
}
