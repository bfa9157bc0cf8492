// Package api is the HTTP client for the review/salary REST API.
//
// # Overview
//
// Client wraps every outbound request: it attaches the bearer token held by a
// storage.TokenStore, tags the request with an X-Request-ID, encodes and
// decodes JSON, and maps HTTP status codes to sentinel errors. The resource
// wrappers (auth, profile, companies, company details, reviews, salaries,
// statistics, search, admin) are methods on Client that translate one REST
// resource into typed calls.
//
// # Authentication failures
//
// A 401 on a protected request first triggers one token refresh and replay
// when a refresh token is stored. If that is impossible or fails, the stored
// tokens are cleared and the Navigator is asked to show the login screen.
// Each request does this at most once, and a session expiry is announced once
// even when many in-flight requests fail together. The 401 is still returned
// to the caller.
//
// # Errors
//
// Failures are *APIError values that unwrap to ErrUnauthorized, ErrForbidden,
// ErrNotFound, ErrConflict, ErrValidation or ErrUnavailable; match them with
// errors.Is. ErrorMessage turns any error into the text shown to users.
package api
