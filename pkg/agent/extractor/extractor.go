// Package extractor turns a raw chat transcript into a validated memory
// record via a schema-constrained LLM call and persists it per user.
package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go"

	"github.com/reflectivai/persona-engine/pkg/ai"
	"github.com/reflectivai/persona-engine/pkg/apperrors"
	"github.com/reflectivai/persona-engine/pkg/memory"
)

// maxSchemaAttempts bounds the structured output contract: the first call
// plus one automatic re-ask when the tool arguments fail to parse or
// validate. Transport failures are never retried at this layer.
const maxSchemaAttempts = 2

const DefaultUserID = "default_user"

// ChatMessage is one turn of the transcript under analysis.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Agent extracts user memories, preferences and emotional patterns from
// chat history. It is the sole writer of the memory store.
type Agent struct {
	logger  *log.Logger
	ai      ai.Completion
	store   memory.Store
	model   string
	timeout time.Duration

	tool openai.ChatCompletionToolParam
}

func NewAgent(logger *log.Logger, aiService ai.Completion, store memory.Store, model string, timeout time.Duration) (*Agent, error) {
	tool, err := extractMemoryTool()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrMemoryExtraction, err, "building extraction tool schema")
	}
	return &Agent{
		logger:  logger,
		ai:      aiService,
		store:   store,
		model:   model,
		timeout: timeout,
		tool:    tool,
	}, nil
}

// ExtractMemories analyzes the transcript, persists the resulting record
// keyed by user and returns it. The caller-supplied userID always wins over
// a model-produced one; persistence is all-or-nothing.
func (a *Agent) ExtractMemories(ctx context.Context, messages []ChatMessage, userID string) (memory.Record, error) {
	if len(messages) == 0 {
		return memory.Record{}, apperrors.New(apperrors.ErrInvalidInput, "messages list cannot be empty")
	}

	a.logger.Info("Starting memory extraction", "messages", len(messages), "user_id", userID)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	llmMsgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(ExtractionSystemPrompt),
		openai.UserMessage(FormatTranscript(messages)),
	}

	var record memory.Record
	var lastErr error
	for attempt := 1; attempt <= maxSchemaAttempts; attempt++ {
		completion, err := a.ai.Completions(ctx, llmMsgs, []openai.ChatCompletionToolParam{a.tool}, a.model)
		if err != nil {
			return memory.Record{}, apperrors.Wrap(apperrors.ErrMemoryExtraction, err, "completion call failed")
		}

		record, lastErr = parseRecord(completion)
		if lastErr == nil {
			break
		}

		a.logger.Warn("Structured output attempt failed", "attempt", attempt, "error", lastErr)
		if attempt < maxSchemaAttempts {
			llmMsgs = appendCorrection(llmMsgs, completion, lastErr)
		}
	}
	if lastErr != nil {
		return memory.Record{}, apperrors.Wrap(apperrors.ErrStructuredOutput, lastErr, "model output failed validation after %d attempts", maxSchemaAttempts)
	}

	record.UserID = effectiveUserID(userID, record.UserID)

	if err := a.store.Save(record.UserID, record); err != nil {
		return memory.Record{}, apperrors.Wrap(apperrors.ErrStore, err, "saving memory for user %s", record.UserID)
	}

	a.logger.Info("Memory extraction successful",
		"user_id", record.UserID,
		"preferences", len(record.UserPreferences),
		"patterns", len(record.EmotionalPatterns),
		"facts", len(record.MemorableFacts))

	return record, nil
}

// FormatTranscript renders the transcript as a single numbered, role-labeled
// text block, one line per turn.
func FormatTranscript(messages []ChatMessage) string {
	var sb strings.Builder
	sb.WriteString(TranscriptPreamble)
	for i, msg := range messages {
		sb.WriteString(fmt.Sprintf("%d. [%s]: %s\n", i+1, strings.ToUpper(msg.Role), msg.Content))
	}
	return sb.String()
}

// effectiveUserID resolves which identifier keys the saved record: the
// caller-supplied id when present, the model-produced one otherwise, and the
// default as a last resort.
func effectiveUserID(callerID, modelID string) string {
	if callerID != "" {
		return callerID
	}
	if modelID != "" {
		return modelID
	}
	return DefaultUserID
}

// parseRecord pulls the record out of the completion. Preferred source is
// the forced tool call; plain content is accepted as a fallback, including
// content wrapped in a markdown JSON fence.
func parseRecord(completion openai.ChatCompletionMessage) (memory.Record, error) {
	raw := ""
	for _, toolCall := range completion.ToolCalls {
		if toolCall.Function.Name == ExtractMemoryToolName {
			raw = toolCall.Function.Arguments
			break
		}
	}
	if raw == "" {
		raw = unwrapJSONFence(completion.Content)
	}
	if strings.TrimSpace(raw) == "" {
		return memory.Record{}, fmt.Errorf("completion carried no %s tool call and no content", ExtractMemoryToolName)
	}

	var record memory.Record
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return memory.Record{}, fmt.Errorf("unmarshaling tool arguments: %w", err)
	}
	if err := record.Validate(); err != nil {
		return memory.Record{}, err
	}
	return record, nil
}

func unwrapJSONFence(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}

// appendCorrection extends the conversation with the validation failure so
// the re-ask can fix its own output. Tool calls get a tool-role reply; bare
// content gets a user correction.
func appendCorrection(msgs []openai.ChatCompletionMessageParamUnion, completion openai.ChatCompletionMessage, cause error) []openai.ChatCompletionMessageParamUnion {
	correction := fmt.Sprintf("The previous output failed validation: %v. Call %s again with corrected arguments.", cause, ExtractMemoryToolName)
	if len(completion.ToolCalls) > 0 {
		msgs = append(msgs, completion.ToParam())
		for _, toolCall := range completion.ToolCalls {
			msgs = append(msgs, openai.ToolMessage(correction, toolCall.ID))
		}
		return msgs
	}
	return append(msgs, openai.UserMessage(correction))
}
