package main

import (
	"context"
	"fmt"
	netHttp "net/http"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/avatargrid/internal/adapter/avatar"
	"github.com/m-zajac/avatargrid/internal/adapter/github"
	"github.com/m-zajac/avatargrid/internal/api/http"
	"github.com/m-zajac/avatargrid/internal/api/http/limiter"
	"github.com/m-zajac/avatargrid/internal/app"
	"github.com/m-zajac/avatargrid/internal/database"
	"github.com/m-zajac/avatargrid/internal/dataset"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	l := logrus.New()
	l.Out = os.Stderr

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		l.Fatalf("invalid log level: %v", err)
	}
	l.Level = level

	root := &cobra.Command{
		Use:   "avatargrid",
		Short: "avatargrid - contributors avatar grid server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(conf, l)
		},
		SilenceUsage: true,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run http server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(conf, l)
			},
		},
		newRenderCommand(&conf, l),
		newSyncCommand(&conf, l),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(conf Config, l *logrus.Logger) error {
	service, cleanup, err := newService(conf, l)
	if err != nil {
		return err
	}
	defer cleanup()

	mux := http.NewMux(service, conf.ServiceResponseTimeout, l.WithField("component", "mux"))
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)
	server.Run()

	return nil
}

func newRenderCommand(conf *Config, l *logrus.Logger) *cobra.Command {
	var size, columns string
	var inline bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write contributors graph svg to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, cleanup, err := newService(*conf, l)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(context.Background(), conf.ServiceResponseTimeout)
			defer cancel()

			var svg []byte
			if inline {
				svg, err = service.InlineGraph(ctx, size, columns)
			} else {
				svg, err = service.Graph(ctx, size, columns)
			}
			if err != nil {
				return fmt.Errorf("rendering graph: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(svg)
			return err
		},
	}
	cmd.Flags().StringVar(&size, "size", "", "avatar size in pixels")
	cmd.Flags().StringVar(&columns, "columns", "", "number of grid columns")
	cmd.Flags().BoolVar(&inline, "inline", false, "fetch avatars and inline them as data uris")

	return cmd
}

func newSyncCommand(conf *Config, l *logrus.Logger) *cobra.Command {
	var repos []string
	var out string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Write dataset file with contributors of github repositories",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := make([]app.Repo, 0, len(repos))
			for _, r := range repos {
				repo, err := app.ParseRepo(r)
				if err != nil {
					return err
				}
				parsed = append(parsed, repo)
			}
			if out == "" {
				out = conf.DatasetPath
			}

			limitedHTTPClient := limiter.NewHTTPDoer(
				&netHttp.Client{Timeout: 30 * time.Second},
				conf.GithubAPIRateLimit,
				1,
			)
			githubClient := github.NewClient(
				limitedHTTPClient,
				conf.GithubAPIAddress,
				conf.GithubAPIToken,
			)

			ctx, cancel := context.WithTimeout(context.Background(), conf.GithubSyncTimeout)
			defer cancel()

			contributors, err := app.CollectContributors(ctx, githubClient, parsed)
			if err != nil {
				return fmt.Errorf("collecting contributors: %w", err)
			}
			if err := dataset.Save(out, contributors); err != nil {
				return fmt.Errorf("saving dataset: %w", err)
			}
			l.Infof("saved %d contributors to %s", len(contributors), out)

			return nil
		},
	}
	cmd.Flags().StringSliceVar(&repos, "repo", nil, "github repository in owner/name form, can be repeated")
	cmd.Flags().StringVar(&out, "out", "", "dataset file path, defaults to configured dataset path")
	_ = cmd.MarkFlagRequired("repo")

	return cmd
}

// newService wires app service with its dependencies.
// Returned cleanup func releases opened resources.
func newService(conf Config, l *logrus.Logger) (*app.Service, func(), error) {
	cleanup := func() {}

	ds, err := dataset.Load(conf.DatasetPath)
	if err != nil {
		return nil, cleanup, fmt.Errorf("loading dataset: %w", err)
	}
	if _, err := ds.Contributors(); err != nil {
		l.Warnf("dataset %s is malformed, graphs will fail: %v", conf.DatasetPath, err)
	} else {
		l.Infof("loaded %d contributors from %s", ds.Len(), conf.DatasetPath)
	}

	httpClient := &netHttp.Client{
		Timeout: conf.AvatarFetchTimeout,
		CheckRedirect: func(req *netHttp.Request, via []*netHttp.Request) error {
			if len(via) >= 5 {
				return netHttp.ErrUseLastResponse
			}
			return nil
		},
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.AvatarFetchRateLimit,
		conf.AvatarFetchRateBurst,
	)

	var fetcher app.AvatarFetcher = avatar.NewClient(limitedHTTPClient, conf.AvatarMaxSize)

	if conf.AvatarDBPath != "" {
		kvStore, err := database.NewBoltKVStore(
			conf.AvatarDBPath,
			conf.AvatarDBBucketName,
			5*time.Second,
		)
		if err != nil {
			return nil, cleanup, fmt.Errorf("creating bolt kv store: %w", err)
		}
		cleanup = func() {
			if err := kvStore.Close(); err != nil {
				l.Errorf("closing bolt kv store: %v", err)
			}
		}
		storedFetcher := avatar.NewStoredFetcher(
			fetcher,
			kvStore,
			conf.AvatarDBDataTTL,
			l.WithField("component", "avatarStore"),
		)
		if n, err := storedFetcher.Prune(); err != nil {
			l.Warnf("pruning avatar store: %v", err)
		} else if n > 0 {
			l.Infof("pruned %d expired avatars from %s", n, conf.AvatarDBPath)
		}
		fetcher = storedFetcher
	}

	cachedFetcher, err := avatar.NewCachedFetcher(fetcher, conf.AvatarCacheSize, conf.AvatarCacheTTL)
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("creating avatar cache: %w", err)
	}

	service := app.NewService(
		ds,
		cachedFetcher,
		app.ServiceConfig{
			Placeholder:      conf.AvatarPlaceholder,
			ProfileURL:       conf.GraphProfileURL,
			MaxContributors:  conf.GraphMaxContributors,
			FetchConcurrency: conf.AvatarFetchConcurrency,
		},
		l.WithField("component", "service"),
	)

	return service, cleanup, nil
}
