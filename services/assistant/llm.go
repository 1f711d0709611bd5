package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"aide/config"
	"aide/models"
)

// LLMClient abstracts the hosted model used by the assistant.
type LLMClient interface {
	// Chat sends the system prompt plus conversation turns and returns the
	// model's reply.
	Chat(ctx context.Context, system string, messages []models.ChatMessage) (string, error)
}

// NewLLMClient builds the configured provider.
func NewLLMClient() (LLMClient, error) {
	cfg := config.AppConfig
	switch strings.ToLower(strings.TrimSpace(cfg.LLMProvider)) {
	case "", "gemini":
		return NewGeminiClient(cfg.GeminiAPIKey, cfg.LLMModel)
	case "openai":
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}

// chatJSON runs a single-turn exchange and parses the reply as JSON,
// tolerating markdown code fences around it.
func chatJSON(ctx context.Context, llm LLMClient, system, prompt string, result any) error {
	reply, err := llm.Chat(ctx, system, []models.ChatMessage{{Role: "user", Content: prompt}})
	if err != nil {
		return err
	}
	payload := ExtractJSON(reply)
	if err := json.Unmarshal([]byte(payload), result); err != nil {
		return fmt.Errorf("parse model JSON reply: %w (reply: %s)", err, reply)
	}
	return nil
}
