//go:build !dev

package api

import "github.com/go-chi/chi/v5"

// Profiling endpoints are only compiled into dev builds.
func registerPprof(r chi.Router) {}
