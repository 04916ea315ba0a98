// Package middleware holds the gin handlers shared by every module: request
// tracing, access logging, CORS, panic recovery and permission checks.
package middleware
