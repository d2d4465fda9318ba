// Package config provides configuration management for the modlist builder.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section, so every key is known to Viper and can be overridden by its
// environment variable (OUTPUT_DIR overrides output.dir).
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Log: Logging level and format
//   - Output: Artifact directory and file names
//   - Manifest: Launcher manifest location and cache TTL
//   - Storage: S3/MinIO publishing of written artifacts
//   - Server: HTTP port and API key for the serve command
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Output.Dir)
package config
