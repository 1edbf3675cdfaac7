// Package errs defines the error types the API returns to clients.
//
// Every failure that reaches a client is shaped as an HTTPError:
// a machine-readable code, a human-readable message, the HTTP status,
// and (for validation failures) a list of per-field errors.
//
// Handlers and the validation layer return these; the global error
// handler in the middleware package serializes them. Nothing else
// about an error (stack traces, wrapped causes) ever leaves the
// process.
package errs
