package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	telegramLinkRepo "aide/database/repository/telegramlink"
	tokensRepo "aide/database/repository/tokens"
	"aide/models"
	"aide/services/assistant"
	"aide/utils"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v4"
)

// Telegram caps messages at 4096 chars; keep headroom for formatting.
const maxMessageLen = 4000

// Bot relays chat and briefs over Telegram for linked users.
type Bot struct {
	bot       *tele.Bot
	assistant assistant.AssistantService
	links     telegramLinkRepo.TelegramLinkRepository
	tokens    tokensRepo.TokenRepository
}

func NewBot(token string, assistantSvc assistant.AssistantService, links telegramLinkRepo.TelegramLinkRepository, tokens tokensRepo.TokenRepository) (*Bot, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("telegram token is empty")
	}
	b, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:       b,
		assistant: assistantSvc,
		links:     links,
		tokens:    tokens,
	}
	bot.registerHandlers()
	return bot, nil
}

// Start begins long polling. Blocks until Stop is called.
func (b *Bot) Start() {
	utils.GetLogger().Info("Telegram bot starting")
	b.bot.Start()
}

// Stop shuts down the poll loop.
func (b *Bot) Stop() {
	b.bot.Stop()
}

// PushBrief sends a generated brief to a chat. Used by the brief worker.
func (b *Bot) PushBrief(chatID int64, text string) error {
	_, err := b.bot.Send(&tele.Chat{ID: chatID}, truncate("Your daily brief:\n\n"+text))
	return err
}

func (b *Bot) registerHandlers() {
	b.bot.Handle("/start", b.handleStart)
	b.bot.Handle("/help", b.handleHelp)
	b.bot.Handle("/brief", b.handleBrief)
	b.bot.Handle("/unlink", b.handleUnlink)
	b.bot.Handle(tele.OnText, b.handleText)
}

// handleStart links the chat to an app account: /start user@example.com.
// Linking requires the user to have signed in on the web app first.
func (b *Bot) handleStart(c tele.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.Message().Payload))
	if email == "" {
		return c.Send("Welcome! Link your account with:\n/start your@email.com\n\nUse the email you signed in with on the web app.")
	}

	ctx, cancel := b.requestContext()
	defer cancel()

	if _, err := b.tokens.GetByEmail(ctx, email); err != nil {
		return c.Send("I don't recognise that email. Sign in on the web app first, then try again.")
	}

	link := models.TelegramLink{
		ChatID:    c.Chat().ID,
		UserEmail: email,
	}
	if err := b.links.Link(ctx, link); err != nil {
		utils.GetLogger().Error("Failed to link telegram chat",
			zap.Int64("chatId", c.Chat().ID), zap.Error(err))
		return c.Send("Something went wrong linking your account. Please try again.")
	}
	return c.Send(fmt.Sprintf("Linked to %s. Send me a message anytime, or use /brief for your daily brief.", email))
}

func (b *Bot) handleHelp(c tele.Context) error {
	return c.Send(`Here's what I can do:
/start your@email.com - link this chat to your account
/brief - get your daily brief
/unlink - unlink this chat
Or just send me a message and I'll help like I do on the web app.`)
}

func (b *Bot) handleBrief(c tele.Context) error {
	link, ok := b.linkedUser(c)
	if !ok {
		return c.Send("This chat isn't linked yet. Use /start your@email.com first.")
	}

	ctx, cancel := b.requestContext()
	defer cancel()

	brief, err := b.assistant.GenerateBrief(ctx, link.UserEmail)
	if err != nil {
		utils.GetLogger().Error("Failed to generate brief for telegram",
			zap.String("email", link.UserEmail), zap.Error(err))
		return c.Send("I couldn't put your brief together right now. Please try again later.")
	}
	return c.Send(truncate(brief))
}

func (b *Bot) handleUnlink(c tele.Context) error {
	ctx, cancel := b.requestContext()
	defer cancel()

	if err := b.links.Unlink(ctx, c.Chat().ID); err != nil {
		return c.Send("This chat wasn't linked.")
	}
	return c.Send("Unlinked. Use /start your@email.com to link again.")
}

// handleText relays free text to the assistant.
func (b *Bot) handleText(c tele.Context) error {
	link, ok := b.linkedUser(c)
	if !ok {
		return c.Send("This chat isn't linked yet. Use /start your@email.com first.")
	}

	ctx, cancel := b.requestContext()
	defer cancel()

	resp, err := b.assistant.Chat(ctx, link.UserEmail, "", c.Text())
	if err != nil {
		utils.GetLogger().Error("Telegram chat failed",
			zap.String("email", link.UserEmail), zap.Error(err))
		return c.Send("I hit a snag answering that. Please try again.")
	}

	reply := resp.Reply
	if resp.KnowledgeUpdate != "" {
		reply = resp.KnowledgeUpdate + "\n\n" + reply
	}
	return c.Send(truncate(reply))
}

func (b *Bot) linkedUser(c tele.Context) (*models.TelegramLink, bool) {
	ctx, cancel := b.requestContext()
	defer cancel()

	link, err := b.links.GetByChatID(ctx, c.Chat().ID)
	if err != nil {
		return nil, false
	}
	return link, true
}

func (b *Bot) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

func truncate(s string) string {
	if len(s) <= maxMessageLen {
		return s
	}
	return s[:maxMessageLen-3] + "..."
}
