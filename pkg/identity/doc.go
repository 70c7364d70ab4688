// Package identity provides authenticated identity management for requests.
//
// An Identity is the result of verifying a bearer token. It is attached to
// the request context by the auth middleware and is the only way request
// handlers learn who the caller is.
//
// # Basic Usage
//
//	// Store in request context
//	ctx = identity.Set(ctx, id)
//
//	// Retrieve from context
//	id, ok := identity.Get(ctx)
package identity
