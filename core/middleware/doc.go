// Package middleware groups the HTTP middlewares of the connector:
// rayid (request id injection for log correlation) and auth (API key guard).
package middleware
