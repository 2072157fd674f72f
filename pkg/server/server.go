// Package server exposes the extraction and personality pipelines over a
// REST API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/reflectivai/persona-engine/pkg/agent/extractor"
	"github.com/reflectivai/persona-engine/pkg/agent/personality"
	"github.com/reflectivai/persona-engine/pkg/apperrors"
	"github.com/reflectivai/persona-engine/pkg/memory"
)

// MemoryExtractor is the extraction pipeline as the API consumes it.
type MemoryExtractor interface {
	ExtractMemories(ctx context.Context, messages []extractor.ChatMessage, userID string) (memory.Record, error)
}

// ResponseGenerator is the personality pipeline as the API consumes it.
type ResponseGenerator interface {
	GenerateAll(ctx context.Context, query string, personas []personality.Persona, userID string) map[personality.Persona]personality.Outcome
	GenerateGeneric(ctx context.Context, query string) (string, error)
}

type Server struct {
	logger    *log.Logger
	store     memory.Store
	extractor MemoryExtractor
	engine    ResponseGenerator
	version   string
}

func New(logger *log.Logger, store memory.Store, memoryExtractor MemoryExtractor, engine ResponseGenerator, version string) *Server {
	return &Server{
		logger:    logger,
		store:     store,
		extractor: memoryExtractor,
		engine:    engine,
		version:   version,
	}
}

// Router assembles the REST surface.
func (s *Server) Router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(cors.New(cors.Options{
		AllowCredentials: true,
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept"},
	}).Handler)
	router.Use(s.requestLogger)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Route("/memory", func(r chi.Router) {
			r.Post("/extract", s.handleExtractMemories)
			r.Get("/users", s.handleListMemories)
			r.Get("/user/{userID}", s.handleGetUserMemories)
			r.Delete("/user/{userID}", s.handleDeleteUserMemories)
		})

		r.Route("/personality", func(r chi.Router) {
			r.Post("/transform", s.handleTransform)
			r.Post("/generic", s.handleGeneric)
		})
	})

	return router
}

// requestLogger tags each request with an id and logs its outcome.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		start := time.Now()
		ww := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(ww, r)

		s.logger.Info("Handled request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.status,
			"duration", time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("Failed to encode response", "error", err)
	}
}

// respondError maps the error taxonomy onto HTTP statuses.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed", "error", err)
	}
	s.respondJSON(w, status, ErrorResponse{Detail: err.Error()})
}

func (s *Server) decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, err, "invalid request body")
	}
	return nil
}
