package ai

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/pkg/errors"

	"github.com/reflectivai/persona-engine/pkg/apperrors"
)

type Config struct {
	APIKey  string
	BaseUrl string
}

var _ Completion = (*Service)(nil)

type Service struct {
	client *openai.Client
	logger *log.Logger
}

// NewOpenAIService builds the completion service. The API key is required:
// without it every call would fail far from startup, so reject it here.
func NewOpenAIService(logger *log.Logger, apiKey string, baseUrl string) (*Service, error) {
	if apiKey == "" {
		return nil, apperrors.New(apperrors.ErrModelInitialization, "completions API key is not set")
	}
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseUrl),
	)
	return &Service{
		client: &client,
		logger: logger,
	}, nil
}

func (s *Service) ParamsCompletions(ctx context.Context, params openai.ChatCompletionNewParams) (openai.ChatCompletionMessage, error) {
	completion, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return openai.ChatCompletionMessage{}, errors.Wrap(err, "chat completion request")
	}

	if len(completion.Choices) == 0 {
		return openai.ChatCompletionMessage{}, errors.New("OpenAI returned no completion choices")
	}

	return completion.Choices[0].Message, nil
}

func (s *Service) Completions(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion, tools []openai.ChatCompletionToolParam, model string) (openai.ChatCompletionMessage, error) {
	params := openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       model,
		Temperature: param.Opt[float64]{Value: 0.7},
	}
	if len(tools) > 0 {
		params.Tools = tools
		params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{OfAuto: param.NewOpt("required")}
	}
	return s.ParamsCompletions(ctx, params)
}
