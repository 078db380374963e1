// Package http implements the HTTP transport layer of the notes service.
//
// It exposes route wiring, page handlers, and middleware. Request tracing,
// access logging, response compression, timeouts and bearer authentication
// are handled here before requests reach the service layer. Page handlers
// answer with a rendered page payload or a 303 redirect.
package http
