package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi"

	"github.com/reflectivai/persona-engine/pkg/agent/personality"
	"github.com/reflectivai/persona-engine/pkg/apperrors"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthCheckResponse{
		Status:    "healthy",
		Version:   s.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleExtractMemories(w http.ResponseWriter, r *http.Request) {
	var req MemoryExtractionRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.respondError(w, err)
		return
	}
	if len(req.Messages) == 0 {
		s.respondError(w, apperrors.New(apperrors.ErrInvalidInput, "messages list cannot be empty"))
		return
	}
	if len(req.Messages) < 10 {
		s.logger.Warn("Low message count for extraction", "messages", len(req.Messages), "recommended", 30)
	}

	record, err := s.extractor.ExtractMemories(r.Context(), req.Messages, req.UserID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, MemoryExtractionResponse{
		Status:           "success",
		Data:             record,
		Message:          fmt.Sprintf("Successfully extracted memories from %d messages", len(req.Messages)),
		MessagesAnalyzed: len(req.Messages),
	})
}

func (s *Server) handleGetUserMemories(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	record, ok, err := s.store.Get(userID)
	if err != nil {
		s.respondError(w, apperrors.Wrap(apperrors.ErrStore, err, "retrieving memories for user %s", userID))
		return
	}
	if !ok {
		s.respondError(w, apperrors.New(apperrors.ErrNotFound, "no memories found for user %s", userID))
		return
	}

	s.respondJSON(w, http.StatusOK, UserMemoriesResponse{
		UserID:   userID,
		Memories: record,
	})
}

func (s *Server) handleDeleteUserMemories(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := s.store.Delete(userID); err != nil {
		s.respondError(w, apperrors.Wrap(apperrors.ErrStore, err, "deleting memories for user %s", userID))
		return
	}

	s.respondJSON(w, http.StatusOK, StatusResponse{
		Status:  "success",
		Message: fmt.Sprintf("Memories deleted for user %s", userID),
	})
}

func (s *Server) handleListMemories(w http.ResponseWriter, r *http.Request) {
	all, err := s.store.List()
	if err != nil {
		s.respondError(w, apperrors.Wrap(apperrors.ErrStore, err, "listing memories"))
		return
	}

	s.respondJSON(w, http.StatusOK, MemoryListResponse{
		Status:   "success",
		Count:    len(all),
		Memories: all,
	})
}

func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	var req PersonalityRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.respondError(w, err)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		s.respondError(w, apperrors.New(apperrors.ErrInvalidInput, "query cannot be empty"))
		return
	}

	personas := make([]personality.Persona, 0, len(req.PersonalityTypes))
	for _, name := range req.PersonalityTypes {
		persona, err := personality.ParsePersona(name)
		if err != nil {
			s.respondError(w, err)
			return
		}
		personas = append(personas, persona)
	}

	results := s.engine.GenerateAll(r.Context(), req.Query, personas, req.UserID)

	responses := make(map[string]any, len(results))
	for persona, outcome := range results {
		if outcome.Err != nil {
			responses[persona.String()] = map[string]any{
				"error":            outcome.Err.Error(),
				"personality_type": persona.String(),
			}
			continue
		}
		responses[persona.String()] = outcome.Response
	}

	s.respondJSON(w, http.StatusOK, PersonalityTransformationResponse{
		Status:        "success",
		OriginalQuery: req.Query,
		Responses:     responses,
		Analysis:      personality.Analyze(req.Query, results),
		Message:       "Personality responses generated successfully",
	})
}

func (s *Server) handleGeneric(w http.ResponseWriter, r *http.Request) {
	var req GenericRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.respondError(w, err)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		s.respondError(w, apperrors.New(apperrors.ErrInvalidInput, "query cannot be empty"))
		return
	}

	text, err := s.engine.GenerateGeneric(r.Context(), req.Query)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, GenericResponse{
		Status:          "success",
		Query:           req.Query,
		GenericResponse: text,
		Message:         "Generic response generated",
	})
}
