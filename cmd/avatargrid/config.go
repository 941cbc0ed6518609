package main

import "time"

// Config is the container for app configuration
type Config struct {
	// LogLevel - one of logrus levels: debug, info, warning, error
	LogLevel string `default:"info"`

	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// ServiceResponseTimeout - timeout for inlined graph rendering. Avatars not fetched in time are replaced with placeholder
	ServiceResponseTimeout time.Duration `default:"30s"`

	// DatasetPath - contributors json file, {"authors": [...]}
	DatasetPath string `default:"./data/db.json"`

	// GraphMaxContributors - maximum number of contributors in inlined graph
	GraphMaxContributors int `default:"5000"`

	// GraphProfileURL - prefix of contributor profile links in inlined graph
	GraphProfileURL string `default:"https://github.com/"`

	// AvatarPlaceholder - image reference used when avatar can't be inlined
	AvatarPlaceholder string `default:"/default-avatar.png"`

	// AvatarFetchTimeout - timeout for a single avatar download
	AvatarFetchTimeout time.Duration `default:"15s"`

	// AvatarFetchConcurrency - max concurrent avatar downloads per request. 0 means no limit
	AvatarFetchConcurrency int `default:"0"`

	// AvatarFetchRateLimit - max frequency for avatar downloads per second. 0 means no limit
	AvatarFetchRateLimit float64 `default:"0"`

	// AvatarFetchRateBurst - number of avatar downloads allowed at once when rate limit is set
	AvatarFetchRateBurst int `default:"10"`

	// AvatarMaxSize - maximum accepted avatar size in bytes
	AvatarMaxSize int `default:"1048576"`

	// AvatarCacheSize - maximum number of avatars kept in memory
	AvatarCacheSize int `default:"10000"`

	// AvatarCacheTTL - maximum lifetime for in memory avatar cache entries
	AvatarCacheTTL time.Duration `default:"1h"`

	// AvatarDBPath - filepath for bolt db avatar store. If empty, avatars are not persisted
	AvatarDBPath string `default:""`

	// AvatarDBBucketName - bolt db bucket name
	AvatarDBBucketName string `default:"avatars"`

	// AvatarDBDataTTL - maximum lifetime for avatars stored in db
	AvatarDBDataTTL time.Duration `default:"24h"`

	// GithubAPIAddress - address for rest api with protocol, used by sync command
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api (optional, rate limit is lower without this token)
	GithubAPIToken string `default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls
	GithubAPIRateLimit float64 `default:"0.5"`

	// GithubSyncTimeout - timeout for collecting contributors of all synced repositories
	GithubSyncTimeout time.Duration `default:"5m"`
}
