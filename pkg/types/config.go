package types

// ServerConfig holds settings for the HTTP serving layer.
type ServerConfig struct {
	// Addr is the listen address (e.g. ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// PublicDir is an optional directory of static assets served at "/".
	// When empty or missing on disk, no static hosting is mounted.
	PublicDir string `json:"public_dir" yaml:"public_dir"`

	// AllowedOrigin is the value sent in Access-Control-Allow-Origin.
	// Defaults to "*".
	AllowedOrigin string `json:"allowed_origin" yaml:"allowed_origin"`

	// RateLimit is the sustained per-client request rate per second.
	// Zero disables rate limiting.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit"`

	// RateBurst is the per-client burst allowance (default 20).
	RateBurst int `json:"rate_burst" yaml:"rate_burst"`
}

// CatalogConfig holds settings for the snapshot catalogue.
type CatalogConfig struct {
	// DataDir is the directory containing the line-delimited JSON snapshots.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// ManifestPath is an optional sources.yaml overriding the default
	// origin-to-snapshot mapping.
	ManifestPath string `json:"manifest_path" yaml:"manifest_path"`
}

// IndexConfig holds settings for the offline snapshot index.
type IndexConfig struct {
	// IndexDir is the directory holding catalog.db (default "index").
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of search hits (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
