// Package handler provides a small typed HTTP handler core: a generic
// HandlerFunc producing a Response, a Wrap adapter to http.HandlerFunc with
// pluggable request binding and error handling, JSON response rendering,
// and the HTTP error taxonomy used across the service.
//
// Handlers never write to the ResponseWriter directly for bodies; they
// return a Response which is rendered exactly once. Cookie-issuing handlers
// set cookies on the writer before returning, since headers precede the
// body write.
package handler
