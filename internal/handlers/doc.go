// Package handlers implements the HTTP API layer for the roster service.
//
// Handlers delegate business logic to the services layer and focus on
// request validation, response formatting, and HTTP semantics. Whether an
// endpoint requires a bearer token is not decided here: the auth gate in
// internal/server/middlewares guards every route and carries the allow-list
// of public paths.
//
// # API Endpoints
//
// Auth endpoints (auth.go):
//
//	┌────────┬──────────────┬──────┬──────────────────────────────────────┐
//	│ Method │ Endpoint     │ Auth │ Description                          │
//	├────────┼──────────────┼──────┼──────────────────────────────────────┤
//	│ GET    │ /health      │ no   │ Liveness check                       │
//	│ POST   │ /api/signup  │ no   │ Register account, returns token      │
//	│ POST   │ /api/login   │ no   │ Exchange credentials for a token     │
//	│ POST   │ /api/logout  │ yes  │ Acknowledged no-op (stateless token) │
//	└────────┴──────────────┴──────┴──────────────────────────────────────┘
//
// Collaborator endpoints (collaborators.go), all token-protected:
//
//	┌────────┬────────────────────────┬─────────────────────────────────────┐
//	│ Method │ Endpoint               │ Description                         │
//	├────────┼────────────────────────┼─────────────────────────────────────┤
//	│ GET    │ /api/collaborators     │ List all records                    │
//	│ GET    │ /api/collaborators/:id │ Get one record                      │
//	│ POST   │ /api/collaborators     │ Create (all four fields required)   │
//	│ PUT    │ /api/collaborators/:id │ Full replacement, same validation   │
//	│ DELETE │ /api/collaborators/:id │ Delete, responds 204 with no body   │
//	└────────┴────────────────────────┴─────────────────────────────────────┘
//
// # Error Handling
//
// Failure responses are uniformly { "error": "message" }:
//
//	┌─────────────────────────────┬────────┬──────────────────────────────┐
//	│ Error Type                  │ Status │ When                         │
//	├─────────────────────────────┼────────┼──────────────────────────────┤
//	│ ValidationError / bad body  │ 400    │ Missing fields, weak password│
//	│ InvalidCredentialsError     │ 401    │ Login failure (one message   │
//	│                             │        │ for unknown user and wrong   │
//	│                             │        │ password)                    │
//	│ ResourceNotFoundError       │ 404    │ Record doesn't exist         │
//	│ DuplicateKeyError           │ 409    │ Email already taken          │
//	│ anything else               │ 500    │ Generic message, detail only │
//	│                             │        │ in logs                      │
//	└─────────────────────────────┴────────┴──────────────────────────────┘
//
// Success payloads expose only public user fields; the password hash never
// crosses the wire.
package handlers
