package assistant

import (
	"context"
	"fmt"

	"aide/models"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOpenAIModel = "gpt-4o"

// OpenAIClient backs the assistant with OpenAI chat models.
type OpenAIClient struct {
	client openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key not configured")
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{client: client, model: model}, nil
}

func (c *OpenAIClient) Chat(ctx context.Context, system string, messages []models.ChatMessage) (string, error) {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)
	if system != "" {
		params = append(params, openai.SystemMessage(system))
	}
	for _, msg := range messages {
		switch msg.Role {
		case "assistant":
			params = append(params, openai.AssistantMessage(msg.Content))
		default:
			params = append(params, openai.UserMessage(msg.Content))
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: params,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
