package github

import (
	"strconv"

	"github.com/m-zajac/avatargrid/internal/app"
)

type statsResponse []struct {
	Author *statsResponseAuthor `json:"author"`
	Total  int                  `json:"total"`
}

type statsResponseAuthor struct {
	ID        int    `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// ToContributors converts response, skipping entries without author (deleted accounts).
func (s statsResponse) ToContributors() []app.Contributor {
	cs := make([]app.Contributor, 0, len(s))
	for _, el := range s {
		if el.Author == nil {
			continue
		}
		cs = append(cs, app.Contributor{
			ID:           app.ID(strconv.Itoa(el.Author.ID)),
			Login:        el.Author.Login,
			Username:     el.Author.Login,
			AvatarURL:    el.Author.AvatarURL,
			CommitsCount: el.Total,
		})
	}

	return cs
}
