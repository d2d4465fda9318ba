package manifest

// Config holds configuration for locating launcher manifests.
type Config struct {
	// Path points at a specific Steam.json and bypasses family resolution.
	Path string `mapstructure:"path" default:""`
	// DataDir replaces the platform local data directory.
	DataDir string `mapstructure:"data_dir" default:""`
	// CacheTTLSeconds keeps parsed manifests in memory (serve mode). Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}
