// Package limiter bounds the rate of outgoing http requests.
package limiter

import (
	"fmt"
	"net/http"

	"github.com/m-zajac/avatargrid/internal/app"
	"golang.org/x/time/rate"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// limitedHTTPDoer wraps HTTPDoer and allows Dos with maximum rate limit.
type limitedHTTPDoer struct {
	doer    HTTPDoer
	limiter *rate.Limiter
}

// NewHTTPDoer creates rate limited HTTPDoer.
// maxRate - maximum number of Dos per second, values <= 0 disable limiting.
// burst - number of Dos allowed at once, at least 1.
func NewHTTPDoer(doer HTTPDoer, maxRate float64, burst int) HTTPDoer {
	limit := rate.Limit(maxRate)
	if maxRate <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}

	return &limitedHTTPDoer{
		doer:    doer,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Do executes http request. If limit is exceeded, blocks until call rate is within limit.
// Returns app.TooManyRequestsError when request context ends before limiter allows the call.
func (d *limitedHTTPDoer) Do(r *http.Request) (*http.Response, error) {
	if err := d.limiter.Wait(r.Context()); err != nil {
		return nil, app.TooManyRequestsError(fmt.Sprintf("waiting for httpDoer limiter: %v", err))
	}

	return d.doer.Do(r)
}
