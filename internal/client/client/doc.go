// Package client talks to the user-account REST API.
//
// # Endpoints
//
//	POST  /users/                 register
//	POST  /users/login/           login (sets the session cookie)
//	POST  /users/logout/          logout           [cookie]
//	GET   /users/                 list users       [cookie]
//	PATCH /users/{id}/password/   change password  [cookie]
//	PATCH /users/{id}/email/      change email     [cookie]
//
// Cookies from any response are kept in a jar but only sent on the calls
// marked [cookie].
//
// # Error Handling
//
// Failures come back as *APIError. Kind is decoded from the server's
// {"error": "..."} body and normalised with ParseKind; transport failures
// and undecodable bodies are KindUnknown and wrap ErrUnavailable or
// ErrBadResponse respectively. Use KindOf or errors.As to inspect them.
package client
