// Package avatar fetches contributor avatar images.
package avatar

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/m-zajac/avatargrid/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client downloads avatar images over http.
// This struct is an adapter for app.AvatarFetcher.
type Client struct {
	doer      HTTPDoer
	maxSize   int
	userAgent string
}

var _ app.AvatarFetcher = &Client{}

// NewClient creates new avatar client.
// maxSize - maximum accepted image size in bytes.
func NewClient(doer HTTPDoer, maxSize int) *Client {
	return &Client{
		doer:      doer,
		maxSize:   maxSize,
		userAgent: "avatargrid",
	}
}

// FetchAvatar downloads image from given url.
// Returns error for transport failures, non 2xx responses and images larger than max size.
func (c *Client) FetchAvatar(ctx context.Context, url string) (app.Image, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return app.Image{}, fmt.Errorf("creating http request: %w", err)
	}
	req.Header.Set("Accept", "image/*")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return app.Image{}, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(ioutil.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		return app.Image{}, fmt.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	b, err := ioutil.ReadAll(io.LimitReader(resp.Body, int64(c.maxSize)+1))
	if err != nil {
		return app.Image{}, fmt.Errorf("reading http response body: %w", err)
	}
	if len(b) > c.maxSize {
		return app.Image{}, fmt.Errorf("image exceeds %d bytes", c.maxSize)
	}

	return app.Image{
		ContentType: strings.TrimSpace(resp.Header.Get("Content-Type")),
		Data:        b,
	}, nil
}
