package github

import (
	"testing"

	"github.com/m-zajac/avatargrid/internal/app"
	"github.com/stretchr/testify/assert"
)

func Test_statsResponse_ToContributors(t *testing.T) {
	tests := []struct {
		name     string
		response statsResponse
		want     []app.Contributor
	}{
		{
			name:     "empty",
			response: statsResponse{},
			want:     []app.Contributor{},
		},
		{
			name: "2 items and deleted author",
			response: statsResponse{
				{
					Author: &statsResponseAuthor{
						ID:        1,
						Login:     "x",
						AvatarURL: "https://avatars.fake/1",
					},
					Total: 3,
				},
				{
					Author: nil,
					Total:  10,
				},
				{
					Author: &statsResponseAuthor{
						ID:    2,
						Login: "y",
					},
					Total: 1,
				},
			},
			want: []app.Contributor{
				{
					ID:           "1",
					Login:        "x",
					Username:     "x",
					AvatarURL:    "https://avatars.fake/1",
					CommitsCount: 3,
				},
				{
					ID:           "2",
					Login:        "y",
					Username:     "y",
					CommitsCount: 1,
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.response.ToContributors()
			assert.Equal(t, tt.want, got)
		})
	}
}
