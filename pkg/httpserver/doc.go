// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, and a health-check handler usable as liveness and readiness
// probes.
package httpserver
