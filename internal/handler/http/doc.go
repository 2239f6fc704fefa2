// Package http implements the HTTP transport layer of the brew-review service.
//
// It exposes route wiring for /user, /reviews and /healthz, the resource
// handlers, and the middleware chain. Request tracing, access logging, panic
// recovery, CORS headers and response compression are handled here before
// requests are delegated to the service layer. Error values are mapped to a
// status and public message in one table, see [Handler.writeError]; every
// plain-text body, routing errors included, goes through writeText.
package http
