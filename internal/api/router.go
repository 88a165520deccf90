package api

import (
	"net/http"
	"shopping-path-service/internal/api/handlers"
	"shopping-path-service/internal/services"

	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc *services.PathService, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()

	pathHandler := &handlers.PathHandler{Service: svc, Logger: logger}
	productHandler := &handlers.ProductHandler{Service: svc}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/paths", pathHandler.Plan)
	mux.HandleFunc("/products/random", productHandler.Random)
	mux.HandleFunc("/products/locate", productHandler.Locate)

	return requestIDMiddleware(loggingMiddleware(logger, mux))
}
