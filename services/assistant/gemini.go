package assistant

import (
	"context"
	"fmt"
	"strings"

	"aide/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "models/gemini-1.5-pro"

// GeminiClient backs the assistant with Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key not configured")
	}
	if model == "" {
		model = defaultGeminiModel
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) Chat(ctx context.Context, system string, messages []models.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages to send")
	}
	model := g.client.GenerativeModel(g.model)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	session := model.StartChat()
	for _, msg := range messages[:len(messages)-1] {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}

	last := messages[len(messages)-1]
	resp, err := session.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
