package server

import "net/http"

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)

	// Widgets
	mux.HandleFunc("/api/widgets/", s.routeWidgets)
	mux.HandleFunc("/api/widgets", s.handleWidgetCollection)
}
