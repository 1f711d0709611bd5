package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"aide/config"
	telegramLinkRepo "aide/database/repository/telegramlink"
	"aide/models"
	"aide/services/assistant"
	"aide/services/notify"
	"aide/services/tasks"
	"aide/utils"

	"github.com/hibiken/asynq"
)

// BriefPusher delivers a generated brief over a push channel (Telegram).
type BriefPusher interface {
	PushBrief(chatID int64, text string) error
}

func briefRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisBriefQueueDB,
	}
}

// InitBriefWorker runs the async worker in background. Each task generates
// one user's daily brief, emails it, and pushes it to their linked Telegram
// chat if they have one.
func InitBriefWorker(assistantSvc assistant.AssistantService, emailSvc notify.EmailService, links telegramLinkRepo.TelegramLinkRepository, pusher BriefPusher) {
	srv := asynq.NewServer(
		briefRedisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBriefSend, handleBriefTask(assistantSvc, emailSvc, links, pusher))

	go func() {
		log.Println("[BriefWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BriefWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BriefWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBriefTask(assistantSvc assistant.AssistantService, emailSvc notify.EmailService, links telegramLinkRepo.TelegramLinkRepository, pusher BriefPusher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BriefPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[BriefWorker] Invalid payload: %v", err)
			return err
		}

		log.Printf("[BriefWorker] Delivering daily brief to %s", p.UserEmail)
		brief, err := assistantSvc.GenerateBrief(ctx, p.UserEmail)
		if err != nil {
			log.Printf("[BriefWorker] Failed to generate brief for %s: %v", p.UserEmail, err)
			return err
		}

		subject := "Your Daily Brief - " + utils.FormatFullDate(time.Now())
		if err := emailSvc.Send(p.UserEmail, subject, brief); err != nil {
			log.Printf("[BriefWorker] Failed to email brief to %s: %v", p.UserEmail, err)
			return err
		}

		if pusher == nil {
			return nil
		}
		link, err := links.GetByEmail(ctx, p.UserEmail)
		if err != nil {
			// Not linked; email delivery already succeeded.
			return nil
		}
		if err := pusher.PushBrief(link.ChatID, brief); err != nil {
			log.Printf("[BriefWorker] Failed to push brief to chat %d: %v", link.ChatID, err)
		}
		return nil
	}
}
