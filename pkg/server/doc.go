// Package server provides the HTTP server for the notes API.
//
// This package implements the core HTTP server that handles all API
// requests. It uses gorilla/mux for routing and provides middleware for
// authentication and request handling.
//
// # Server Setup
//
//	srv := server.NewServer(usersStore, notesStore, issuer, hasher, db, host, port)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - /auth/register - account registration
//   - /auth/login - login, returns a bearer token
//   - /auth/update-password - password change (authenticated)
//   - /notes - note CRUD and listing (authenticated, owner-scoped)
//   - /whoami - token introspection
//   - / - status
package server
