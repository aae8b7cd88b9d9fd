// Package config provides configuration management for the LeaseGuard client.
//
// # Overview
//
// The config package uses Viper to load configuration from YAML files and
// environment variables. It provides a type-safe configuration structure with
// validation, default values, and automatic file creation.
//
// # Configuration File
//
// The configuration is stored at ~/.leaseguard/config.yaml and is
// automatically created with sensible defaults on first use. The file
// structure mirrors the Go structs defined in this package.
//
// # Environment Variables
//
// All configuration values can be overridden using environment variables
// with the LEASEGUARD_ prefix. Nested fields are separated by underscores.
//
// Examples:
//   - LEASEGUARD_API_ENDPOINT=https://leaseguard.example.com
//   - LEASEGUARD_LOGGING_LEVEL=debug
//
// # Usage Example
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/normanking/leaseguard/internal/config"
//	)
//
//	func main() {
//	    cfg, err := config.Load()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    if err := cfg.EnsureDirectories(); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    if err := cfg.Validate(); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    log.Printf("Talking to %s", cfg.API.Endpoint)
//	}
//
// # Configuration Sections
//
//   - API: Backend endpoint and HTTP timeout settings
//   - Logging: Log level and output file configuration
//
// # Path Expansion
//
// The package automatically expands ~ to the user's home directory in
// all path configurations, making config files portable across systems.
//
// # Validation
//
// The Validate() method checks configuration for common errors:
//   - Endpoint presence and URL shape
//   - Valid enum values (log level)
//   - Numeric range validation
//
// # Thread Safety
//
// Config instances are not thread-safe. If you need concurrent access,
// wrap the config in a sync.RWMutex or create separate instances.
package config
