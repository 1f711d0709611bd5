package assistant

import (
	"context"
	"fmt"
	"time"

	"aide/config"
	"aide/models"
	"aide/services/calendar"
	"aide/utils"

	"go.uber.org/zap"
)

const chatCalendarDays = 3

// Chat processes one user message. A pre-pass asks the model whether the
// message should be remembered; if so the knowledge base is updated and the
// confirmation is surfaced alongside the reply.
func (s *DefaultAssistantService) Chat(ctx context.Context, email, name, text string) (*models.ChatResponse, error) {
	chatCtx, err := s.CtxStore.Get(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	kbConfirmation := s.maybeUpdateKnowledge(ctx, email, text)

	entry, err := s.Knowledge.Get(ctx, email, name)
	if err != nil {
		return nil, err
	}

	calendarSummary := ""
	if events, err := s.Calendar.UpcomingEvents(ctx, email, chatCalendarDays); err != nil {
		utils.GetLogger().Warn("Chat proceeding without calendar context",
			zap.String("email", email), zap.Error(err))
	} else {
		calendarSummary = calendar.FormatEvents(events)
	}

	loc := calendar.Location(config.AppConfig.Timezone)
	block := contextBlock(time.Now().In(loc), entry.Content, calendarSummary)

	messages := make([]models.ChatMessage, 0, len(chatCtx.History)+3)
	messages = append(messages,
		models.ChatMessage{Role: "user", Content: "Context:\n" + block},
		models.ChatMessage{Role: "assistant", Content: "I understand the context. I'm ready to help."},
	)
	messages = append(messages, chatCtx.History...)
	messages = append(messages, models.ChatMessage{Role: "user", Content: text})

	reply, err := s.LLM.Chat(ctx, systemPrompt, messages)
	if err != nil {
		return nil, fmt.Errorf("model reply: %w", err)
	}

	chatCtx.History = append(chatCtx.History,
		models.ChatMessage{Role: "user", Content: text},
		models.ChatMessage{Role: "assistant", Content: reply},
	)
	if err := s.CtxStore.Set(ctx, email, chatCtx); err != nil {
		utils.GetLogger().Warn("Failed to save conversation",
			zap.String("email", email), zap.Error(err))
	}

	return &models.ChatResponse{Reply: reply, KnowledgeUpdate: kbConfirmation}, nil
}

// maybeUpdateKnowledge runs the knowledge-update extraction pre-pass. A
// model or storage failure only skips the update; chat still proceeds.
func (s *DefaultAssistantService) maybeUpdateKnowledge(ctx context.Context, email, text string) string {
	var update models.KnowledgeUpdate
	if err := chatJSON(ctx, s.LLM, "", knowledgeUpdatePrompt(text), &update); err != nil {
		utils.GetLogger().Debug("Knowledge-update extraction failed",
			zap.String("email", email), zap.Error(err))
		return ""
	}
	if !update.ShouldUpdate || update.Section == "" || update.Content == "" {
		return ""
	}
	if err := s.Knowledge.Append(ctx, email, update.Section, update.Content); err != nil {
		utils.GetLogger().Warn("Failed to apply knowledge update",
			zap.String("email", email), zap.String("section", update.Section), zap.Error(err))
		return ""
	}
	if update.Response != "" {
		return update.Response
	}
	return "I've added that to your knowledge base."
}

// ClearConversation drops the stored history for a user.
func (s *DefaultAssistantService) ClearConversation(ctx context.Context, email string) error {
	return s.CtxStore.Clear(ctx, email)
}
