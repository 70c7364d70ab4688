// Package audit provides audit logging for notes service operations.
//
// This package implements structured audit logging for security-relevant
// operations such as registrations, authentication attempts, password
// changes and note mutations.
//
// # Event Types
//
//   - RegisterEvent: account registration (success/failure)
//   - AuthenticateEvent: login attempts
//   - PasswordEvent: password changes
//   - NoteEvent: note create/update/delete
//
// # Usage
//
//	audit.Log(audit.AuthenticateEvent{Email: email, Success: true})
//
// Events are written to stdout in RFC5424 syslog format and, when
// AUDIT_DATABASE_URL is set, persisted to a messages table.
package audit
