// Package server runs the HTTP transport of the notes service.
//
// It handles startup, signal handling and graceful shutdown: on SIGTERM,
// SIGINT or SIGQUIT the listener is closed and in-flight requests are
// drained before RunServer returns.
package server
