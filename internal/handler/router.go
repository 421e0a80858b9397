package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"pdf-summarizer/internal/domain"
	"pdf-summarizer/web"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	documentHandler *DocumentHandler,
	summaryHandler *SummaryHandler,
	cfg domain.Config,
	logger domain.Logger,
) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware)
	router.Use(LoggingMiddleware(logger))

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"pdf-summarizer"}`))
	}).Methods("GET")

	// Single-page UI
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(web.Index())
	}).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/models", summaryHandler.ListModels).Methods("GET")
	api.HandleFunc("/documents/extract", documentHandler.ExtractDocument).Methods("POST")
	api.HandleFunc("/summaries", summaryHandler.CreateSummary).Methods("POST")
	api.HandleFunc("/summaries/download", summaryHandler.DownloadSummary).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.GetAllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-ID",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
			"X-Request-ID",
		},
		MaxAge: 300,
	})

	return c.Handler(router)
}
