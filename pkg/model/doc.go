// Package model defines the database models for the notes service.
//
// This package contains GORM models that map to the PostgreSQL schema
// created by the migrations in db/migrations.
//
// # Core Models
//
//   - User: registered accounts, keyed by UUID
//   - Note: user-owned notes with an optional category
//
// # Database Schema
//
//   - users: account identities and password digests
//   - notes: note rows bound to their owner via owner_id
package model
