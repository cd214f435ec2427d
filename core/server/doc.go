// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application from this configuration: listen port,
// API key for protected routes and request body limit.
package server
