package github

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-zajac/avatargrid/internal/app"
	"github.com/m-zajac/avatargrid/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statsJSON = []byte(`[
	{
		"total": 4,
		"weeks": [{"w": 1530403200, "a": 10, "d": 2, "c": 4}],
		"author": {
			"login": "octocat",
			"id": 583231,
			"avatar_url": "https://avatars.githubusercontent.com/u/583231?v=4",
			"type": "User"
		}
	},
	{
		"total": 1,
		"weeks": [],
		"author": null
	},
	{
		"total": 9,
		"weeks": [{"w": 1530403200, "a": 1, "d": 0, "c": 9}],
		"author": {
			"login": "hubot",
			"id": 480938,
			"avatar_url": "https://avatars.githubusercontent.com/u/480938?v=4",
			"type": "User"
		}
	}
]`)

var statsContributors = []app.Contributor{
	{
		ID:           "583231",
		Login:        "octocat",
		Username:     "octocat",
		AvatarURL:    "https://avatars.githubusercontent.com/u/583231?v=4",
		CommitsCount: 4,
	},
	{
		ID:           "480938",
		Login:        "hubot",
		Username:     "hubot",
		AvatarURL:    "https://avatars.githubusercontent.com/u/480938?v=4",
		CommitsCount: 9,
	},
}

func TestClient_ContributorsByRepo(t *testing.T) {
	t.Parallel()

	repo := app.Repo{Owner: "octo-org", Name: "hello-world"}

	tests := []struct {
		name      string
		repo      app.Repo
		doer      *mock.HTTPDoer
		want      []app.Contributor
		wantErr   func(error) bool
		wantCalls int
	}{
		{
			name:    "empty owner",
			repo:    app.Repo{Name: "hello-world"},
			doer:    &mock.HTTPDoer{},
			wantErr: app.IsInvalidRequestError,
		},
		{
			name:    "empty name",
			repo:    app.Repo{Owner: "octo-org"},
			doer:    &mock.HTTPDoer{},
			wantErr: app.IsInvalidRequestError,
		},
		{
			name: "ok",
			repo: repo,
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{statsJSON},
			},
			want:      statsContributors,
			wantCalls: 1,
		},
		{
			name: "no content",
			repo: repo,
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNoContent},
			},
			want:      []app.Contributor{},
			wantCalls: 1,
		},
		{
			name: "server error",
			repo: repo,
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusBadGateway},
			},
			wantErr:   func(err error) bool { return err != nil },
			wantCalls: 1,
		},
		{
			name: "rate limited",
			repo: repo,
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusForbidden},
				Headers:  []http.Header{{"X-Ratelimit-Remaining": []string{"0"}}},
			},
			wantErr:   app.IsTooManyRequestsError,
			wantCalls: 1,
		},
		{
			name: "body too large",
			repo: repo,
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{bytes.Repeat([]byte{' '}, 4097)},
			},
			wantErr:   func(err error) bool { return err != nil },
			wantCalls: 1,
		},
		{
			name: "invalid json",
			repo: repo,
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`{"message": "Not Found"}`)},
			},
			wantErr:   func(err error) bool { return err != nil },
			wantCalls: 1,
		},
		{
			name: "accepted twice, then ok",
			repo: repo,
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusAccepted, http.StatusAccepted, http.StatusOK},
				Bodies:   [][]byte{{}, {}, statsJSON},
			},
			want:      statsContributors,
			wantCalls: 3,
		},
		{
			name: "accepted on every attempt",
			repo: repo,
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusAccepted},
			},
			wantErr:   func(err error) bool { return errors.Is(err, ErrStatsNotReady) },
			wantCalls: 3,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewClient(tt.doer, "https://api.fake", "secret")
			c.pollInterval = time.Millisecond
			c.pollAttempts = 3
			c.maxBytes = 4096

			got, err := c.ContributorsByRepo(context.Background(), tt.repo)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)

			reqs := tt.doer.Requests()
			require.Len(t, reqs, tt.wantCalls)
			for _, r := range reqs {
				assert.Equal(t, "https://api.fake/repos/octo-org/hello-world/stats/contributors", r.URL.String())
				assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
				assert.Equal(t, "token secret", r.Header.Get("Authorization"))
			}
		})
	}
}

func TestClient_ContributorsByRepo_Server(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "/api/v3/repos/octo-org/hello-world/stats/contributors", r.URL.Path)
		if n == 1 {
			w.WriteHeader(http.StatusAccepted)
			return
		}
		_, _ = w.Write(statsJSON)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL+"/api/v3", "")
	c.pollInterval = time.Millisecond

	got, err := c.ContributorsByRepo(context.Background(), app.Repo{Owner: "octo-org", Name: "hello-world"})
	require.NoError(t, err)
	assert.Equal(t, statsContributors, got)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_ContributorsByRepo_ContextCanceled(t *testing.T) {
	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusAccepted},
	}
	c := NewClient(doer, "https://api.fake", "")
	c.pollInterval = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.ContributorsByRepo(ctx, app.Repo{Owner: "o", Name: "n"})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Len(t, doer.Requests(), 1)
}
