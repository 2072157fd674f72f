// Package personality generates persona-flavored responses to a query,
// personalizing each one with the user's stored memory record.
package personality

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go"
	"github.com/samber/lo"

	"github.com/reflectivai/persona-engine/pkg/ai"
	"github.com/reflectivai/persona-engine/pkg/apperrors"
	"github.com/reflectivai/persona-engine/pkg/memory"
	"github.com/reflectivai/persona-engine/pkg/prompts"
)

// Memory-context truncation limits. Insertion order is the ranking signal;
// extraction already orders entries by how the model surfaced them.
const (
	maxContextPreferences = 3
	maxContextPatterns    = 2
	maxContextFacts       = 2
)

// Response is a single persona's answer plus its static metadata.
type Response struct {
	PersonalityType     Persona  `json:"personality_type"`
	Response            string   `json:"response"`
	ToneCharacteristics []string `json:"tone_characteristics"`
	Approach            string   `json:"approach"`
}

// Outcome is one slot of a multi-persona result: either a response or an
// error descriptor, never both.
type Outcome struct {
	Response *Response `json:"response,omitempty"`
	Err      error     `json:"-"`
}

// Engine transforms queries into persona responses. It only reads the
// memory store, never writes it.
type Engine struct {
	logger  *log.Logger
	ai      ai.Completion
	store   memory.Store
	model   string
	timeout time.Duration
}

func NewEngine(logger *log.Logger, aiService ai.Completion, store memory.Store, model string, timeout time.Duration) *Engine {
	return &Engine{
		logger:  logger,
		ai:      aiService,
		store:   store,
		model:   model,
		timeout: timeout,
	}
}

// GenerateResponse produces one persona's answer to the query. The system
// prompt is recomposed on every call so memory saved between calls is
// picked up immediately.
func (e *Engine) GenerateResponse(ctx context.Context, query string, persona Persona, userID string) (Response, error) {
	if query == "" {
		return Response{}, apperrors.New(apperrors.ErrInvalidInput, "query cannot be empty")
	}
	if !persona.IsValid() {
		return Response{}, apperrors.New(apperrors.ErrInvalidInput, "unknown personality type: %q", persona)
	}

	systemPrompt, err := e.composeSystemPrompt(persona, userID)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.ErrPersonalityGeneration, err, "composing %s prompt", persona)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	completion, err := e.ai.Completions(ctx, []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
		openai.UserMessage(query),
	}, nil, e.model)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.ErrPersonalityGeneration, err, "%s completion failed", persona)
	}

	if completion.Content == "" {
		return Response{}, apperrors.New(apperrors.ErrStructuredOutput, "%s returned no response content", persona)
	}

	e.logger.Info("Generated persona response", "persona", persona, "user_id", userID)

	return Response{
		PersonalityType:     persona,
		Response:            completion.Content,
		ToneCharacteristics: persona.ToneCharacteristics(),
		Approach:            persona.Approach(),
	}, nil
}

// GenerateAll produces one response per requested persona (defaulting to
// all three). Personas fail independently: a failing slot carries its error
// descriptor while the others resolve normally.
func (e *Engine) GenerateAll(ctx context.Context, query string, personas []Persona, userID string) map[Persona]Outcome {
	if len(personas) == 0 {
		personas = AllPersonas()
	}

	results := make(map[Persona]Outcome, len(personas))
	for _, persona := range personas {
		response, err := e.GenerateResponse(ctx, query, persona, userID)
		if err != nil {
			e.logger.Error("Persona generation failed", "persona", persona, "error", err)
			results[persona] = Outcome{Err: err}
			continue
		}
		results[persona] = Outcome{Response: &response}
	}
	return results
}

// GenerateGeneric produces the persona-free, memory-free baseline response.
// Any failure, including empty content, is a generation error.
func (e *Engine) GenerateGeneric(ctx context.Context, query string) (string, error) {
	if query == "" {
		return "", apperrors.New(apperrors.ErrInvalidInput, "query cannot be empty")
	}

	systemPrompt, err := prompts.BuildGenericSystemPrompt()
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrPersonalityGeneration, err, "composing generic prompt")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	completion, err := e.ai.Completions(ctx, []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
		openai.UserMessage(query),
	}, nil, e.model)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrPersonalityGeneration, err, "generic completion failed")
	}
	if completion.Content == "" {
		return "", apperrors.New(apperrors.ErrPersonalityGeneration, "generic response was empty")
	}
	return completion.Content, nil
}

// composeSystemPrompt builds the persona base prompt and appends the
// condensed memory context when a record exists for the user. Never cached:
// stored memory may change between calls.
func (e *Engine) composeSystemPrompt(persona Persona, userID string) (string, error) {
	data := prompts.PersonaSystemPrompt{}

	record, ok, err := e.store.Get(userID)
	if err != nil {
		return "", err
	}
	if ok {
		context := prompts.MemoryContext{
			Preferences: lo.Map(lo.Slice(record.UserPreferences, 0, maxContextPreferences), func(p memory.UserPreference, _ int) string { return p.Preference }),
			Patterns:    lo.Map(lo.Slice(record.EmotionalPatterns, 0, maxContextPatterns), func(p memory.EmotionalPattern, _ int) string { return p.Pattern }),
			Facts:       lo.Map(lo.Slice(record.MemorableFacts, 0, maxContextFacts), func(f memory.MemorableFact, _ int) string { return f.Fact }),
		}
		if !context.IsEmpty() {
			rendered, err := prompts.BuildMemoryContext(context)
			if err != nil {
				return "", err
			}
			data.MemoryContext = rendered
		}
	}

	return prompts.BuildPersonaSystemPrompt(persona.String(), data)
}
