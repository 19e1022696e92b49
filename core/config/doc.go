// Package config provides configuration management for the connector.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all connector settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Log: Logging level and format
//   - Database: MySQL connection details for persisted connector state
//   - Bynder: DAM endpoint and OAuth2 credentials
//   - InRiver: PIM endpoint and API key
//   - Sync: Engine settings (schedule, filter, filename pattern, property map)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.ConnectorID)
package config
