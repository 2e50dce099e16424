// Package utils provides general-purpose helpers used across the offsync
// engine: identifier generation, bearer token inspection and the HTTP client
// wrapper.
package utils
