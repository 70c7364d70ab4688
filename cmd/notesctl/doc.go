// Package main implements notesctl, the CLI for the notes server.
//
// The server is a multi-user personal notes service. Users register and log
// in with email and password, receive a signed bearer token, and manage their
// own notes over a JSON HTTP API. Every note is private to its owner.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Persistence interfaces and their gorm implementation
//   - pkg/token: Bearer token issuing and verification
//   - pkg/password: Password hashing
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/audit: Audit logging
//   - pkg/config: Configuration management
//
// # Quick Start
//
// The server is run via the notesctl CLI:
//
//	# Generate a token signing key
//	notesctl signing-key generate > signing_key
//	export NOTES_TOKEN_SIGNING_KEY=$(cat signing_key)
//
//	# Run database migrations
//	notesctl db migrate
//
//	# Start the server
//	notesctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - NOTES_TOKEN_SIGNING_KEY: Base64-encoded key used to sign auth tokens
//   - NOTES_LOG_LEVEL: Log level (debug enables SQL logging)
//   - NOTES_AUDIT_ENABLED: Set to false to disable audit logging
//   - AUDIT_DATABASE_URL: Optional separate database for audit messages
//   - PORT: Server port (default: 8000)
package main
