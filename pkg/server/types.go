package server

import (
	"github.com/reflectivai/persona-engine/pkg/agent/extractor"
	"github.com/reflectivai/persona-engine/pkg/memory"
)

// Request/response envelopes for the REST API.

type MemoryExtractionRequest struct {
	Messages []extractor.ChatMessage `json:"messages"`
	UserID   string                  `json:"user_id"`
}

type MemoryExtractionResponse struct {
	Status           string        `json:"status"`
	Data             memory.Record `json:"data"`
	Message          string        `json:"message"`
	MessagesAnalyzed int           `json:"messages_analyzed"`
}

type UserMemoriesResponse struct {
	UserID   string        `json:"user_id"`
	Memories memory.Record `json:"memories"`
}

type MemoryListResponse struct {
	Status   string                   `json:"status"`
	Count    int                      `json:"count"`
	Memories map[string]memory.Record `json:"memories"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type PersonalityRequest struct {
	Query            string   `json:"query"`
	PersonalityTypes []string `json:"personality_types"`
	UserID           string   `json:"user_id"`
}

type PersonalityTransformationResponse struct {
	Status        string         `json:"status"`
	OriginalQuery string         `json:"original_query"`
	Responses     map[string]any `json:"responses"`
	Analysis      string         `json:"analysis"`
	Message       string         `json:"message"`
}

type GenericRequest struct {
	Query string `json:"query"`
	// UserID is accepted for parity with the transform request but is
	// deliberately unused: the generic response is memory-free.
	UserID string `json:"user_id"`
}

type GenericResponse struct {
	Status          string `json:"status"`
	Query           string `json:"query"`
	GenericResponse string `json:"generic_response"`
	Message         string `json:"message"`
}

type HealthCheckResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
