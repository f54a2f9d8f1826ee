package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the API routes, middleware and the metrics endpoint
func NewRouter(h *Handler, gatherer prometheus.Gatherer) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware, observeMiddleware(h.logger, h.metrics))

	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/compare", h.Compare).Methods(http.MethodPost)
	api.HandleFunc("/example", h.Example).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found", nil)
	})
	return router
}
