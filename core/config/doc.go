// Package config provides configuration management for the subscriptions feed service.
//
// It utilizes Viper for loading configuration from environment variables
// and .env files.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, per-service API keys, rate limits)
//   - Database: MySQL event store connection details
//   - Storage: S3/MinIO credentials and bucket settings for feed snapshots
//   - Feed: reconciliation page size, cache TTL and snapshot schedule
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
