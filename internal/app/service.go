package app

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/m-zajac/avatargrid/internal/graph"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Dataset provides read-only contributors data.
//go:generate mockgen -destination mock/app.go -package mock github.com/m-zajac/avatargrid/internal/app Dataset,AvatarFetcher
type Dataset interface {
	// Contributors returns decoded contributor records in stored order.
	Contributors() ([]Contributor, error)
	// Raw returns contributor records json as stored.
	Raw() ([]byte, error)
}

// AvatarFetcher returns avatar image stored under given url.
type AvatarFetcher interface {
	FetchAvatar(ctx context.Context, url string) (Image, error)
}

// ServiceConfig holds Service rendering options.
type ServiceConfig struct {
	// Placeholder is an image reference used when avatar can't be inlined.
	Placeholder string
	// ProfileURL is prefixed to username to build contributor profile link.
	ProfileURL string
	// MaxContributors limits number of contributors rendered in inlined graph.
	MaxContributors int
	// FetchConcurrency limits number of concurrent avatar fetches. Zero means no limit.
	FetchConcurrency int
}

// DefaultServiceConfig returns config with default values.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		Placeholder:     "/default-avatar.png",
		ProfileURL:      "https://github.com/",
		MaxContributors: 5000,
	}
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	dataset Dataset
	fetcher AvatarFetcher
	conf    ServiceConfig
	l       logrus.FieldLogger
}

// NewService creates new Service instance
func NewService(dataset Dataset, fetcher AvatarFetcher, conf ServiceConfig, l logrus.FieldLogger) *Service {
	return &Service{
		dataset: dataset,
		fetcher: fetcher,
		conf:    conf,
		l:       l,
	}
}

// Contributors returns contributor records json.
func (s *Service) Contributors(ctx context.Context) ([]byte, error) {
	data, err := s.dataset.Raw()
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	return data, nil
}

// Graph renders svg grid of contributor avatars referencing avatar urls directly.
// Size and columns are not bounded.
func (s *Service) Graph(ctx context.Context, size, columns string) ([]byte, error) {
	params, err := ParseGraphParams(size, columns)
	if err != nil {
		return nil, err
	}

	contributors, err := s.rankedContributors(0)
	if err != nil {
		return nil, err
	}

	tiles := make([]graph.Tile, 0, len(contributors))
	for _, c := range contributors {
		tiles = append(tiles, graph.Tile{
			ID:    string(c.ID),
			Image: c.AvatarURL,
		})
	}

	return graph.Clipped(graph.NewLayout(params, len(tiles)), tiles), nil
}

// InlineGraph renders svg grid of linked contributor avatars, with images inlined as data uris.
// Size and columns are clamped, the number of contributors is limited to MaxContributors.
func (s *Service) InlineGraph(ctx context.Context, size, columns string) ([]byte, error) {
	params := ClampGraphParams(size, columns)

	contributors, err := s.rankedContributors(s.conf.MaxContributors)
	if err != nil {
		return nil, err
	}

	avatars := s.resolveAvatars(ctx, contributors)

	tiles := make([]graph.Tile, 0, len(contributors))
	for i, c := range contributors {
		tiles = append(tiles, graph.Tile{
			ID:    c.Login,
			Image: avatars[i].Ref,
			Link:  s.conf.ProfileURL + c.DisplayName(),
		})
	}

	return graph.Linked(graph.NewLayout(params, len(tiles)), tiles), nil
}

// ResolveAvatar returns inlined avatar for given url, or placeholder when url is invalid
// or image can't be fetched.
func (s *Service) ResolveAvatar(ctx context.Context, avatarURL string) Avatar {
	if !isValidImageURL(avatarURL) {
		return FallbackAvatar(s.conf.Placeholder)
	}

	img, err := s.fetcher.FetchAvatar(ctx, avatarURL)
	if err != nil {
		s.l.WithError(err).WithField("url", avatarURL).Debug("avatar not fetched, using placeholder")
		return FallbackAvatar(s.conf.Placeholder)
	}

	return InlinedAvatar(img)
}

// resolveAvatars resolves avatars concurrently. Result order matches contributors order.
func (s *Service) resolveAvatars(ctx context.Context, contributors []Contributor) []Avatar {
	avatars := make([]Avatar, len(contributors))

	var g errgroup.Group
	if s.conf.FetchConcurrency > 0 {
		g.SetLimit(s.conf.FetchConcurrency)
	}
	for i, c := range contributors {
		i, c := i, c
		g.Go(func() error {
			avatars[i] = s.ResolveAvatar(ctx, c.AvatarURL)
			return nil
		})
	}
	g.Wait()

	return avatars
}

// rankedContributors returns copy of dataset contributors sorted by commits count, descending.
// Contributors with equal commits count keep dataset order.
// If limit is greater than zero, result is truncated to limit elements.
func (s *Service) rankedContributors(limit int) ([]Contributor, error) {
	stored, err := s.dataset.Contributors()
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	result := make([]Contributor, len(stored))
	copy(result, stored)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CommitsCount > result[j].CommitsCount
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

func isValidImageURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Host != ""
}
