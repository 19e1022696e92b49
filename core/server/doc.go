// Package server holds configuration for the HTTP surface of the connector.
package server
