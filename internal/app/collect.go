package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Repo identifies a source code repository.
type Repo struct {
	Owner string
	Name  string
}

// String returns repository in owner/name form.
func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepo parses repository given in owner/name form.
func ParseRepo(s string) (Repo, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repo{}, InvalidRequestError(fmt.Sprintf("invalid repository %q, expected owner/name", s))
	}

	return Repo{Owner: parts[0], Name: parts[1]}, nil
}

// ContributorsSource returns contributors of a repository.
//go:generate mockgen -destination mock/source.go -package mock github.com/m-zajac/avatargrid/internal/app ContributorsSource
type ContributorsSource interface {
	ContributorsByRepo(ctx context.Context, repo Repo) ([]Contributor, error)
}

// CollectContributors returns contributors of all given repos, merged by id.
// Commits of a contributor are summed across repos. Result is sorted by commits count, descending,
// then by login.
func CollectContributors(ctx context.Context, source ContributorsSource, repos []Repo) ([]Contributor, error) {
	if len(repos) == 0 {
		return nil, InvalidRequestError("at least one repository is required")
	}

	type respWrapper struct {
		repo         Repo
		contributors []Contributor
		err          error
	}
	responses := make(chan respWrapper, len(repos))
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	for _, r := range repos {
		r := r
		go func() {
			cs, err := source.ContributorsByRepo(ctx, r)
			responses <- respWrapper{
				repo:         r,
				contributors: cs,
				err:          err,
			}
		}()
	}

	merged := make(map[ID]Contributor)
	for i := 0; i < cap(responses); i++ {
		resp := <-responses
		if resp.err != nil {
			return nil, fmt.Errorf("retrieving %s contributors: %w", resp.repo, resp.err)
		}

		for _, c := range resp.contributors {
			el, ok := merged[c.ID]
			if !ok {
				el = c
				el.CommitsCount = 0
			}
			el.CommitsCount += c.CommitsCount
			merged[c.ID] = el
		}
	}

	result := make([]Contributor, 0, len(merged))
	for _, el := range merged {
		result = append(result, el)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CommitsCount != result[j].CommitsCount {
			return result[i].CommitsCount > result[j].CommitsCount
		}
		return result[i].Login < result[j].Login
	})

	return result, nil
}
