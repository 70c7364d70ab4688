// Package config provides configuration management for the notes server.
//
// This package handles loading and validating server configuration
// from environment variables and configuration files.
//
// # Configuration Sources
//
// Values are resolved in precedence order: environment variables override
// the config file, which overrides built-in defaults. Each attribute
// remembers its source for the "configuration show" command.
//
// # Key Configuration Options
//
//   - NOTES_TOKEN_TTL: bearer token lifetime in seconds
//   - NOTES_PAGE_SIZE_DEFAULT / NOTES_PAGE_SIZE_MAX: listing page sizes
//   - NOTES_TRUSTED_PROXIES: CIDRs whose X-Forwarded-For is honored
//   - NOTES_TOKEN_SIGNING_KEY: token signing secret (env only, never file)
//   - DATABASE_URL: database connection
//   - PORT: server listen port
package config
