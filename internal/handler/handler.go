// Package handler is the first entry point for business logic after
// the router.
//
// It binds and validates requests through the validation package,
// calls the appropriate service, and shapes the response. A generic
// pipeline (base.go) centralizes that flow so endpoint handlers only
// contain their own logic.
package handler
