package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// ErrEmptyReply is returned when the endpoint answers without any choice.
var ErrEmptyReply = errors.New("model returned no choices")

// openAIOracle talks to any OpenAI-compatible chat/completions endpoint.
type openAIOracle struct {
	name   string
	client openai.Client
}

func newOpenAI(p Provider) *openAIOracle {
	opts := []option.RequestOption{
		option.WithBaseURL(p.BaseURL),
		option.WithHTTPClient(makeHTTPClient(p.Proxy, p.Timeout)),
		// A failed call is fatal to the file being translated; no retries.
		option.WithMaxRetries(0),
	}
	if p.APIKey != "" {
		opts = append(opts, option.WithAPIKey(p.APIKey))
	}
	return &openAIOracle{
		name:   p.Name,
		client: openai.NewClient(opts...),
	}
}

func (o *openAIOracle) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%s API returned status %d: %s", o.name, apiErr.StatusCode, truncate(apiErr.Message, 500))
		}
		return "", fmt.Errorf("%s request failed: %w", o.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}
	return resp.Choices[0].Message.Content, nil
}
