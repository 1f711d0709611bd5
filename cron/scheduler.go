package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"aide/config"
	tokensRepo "aide/database/repository/tokens"
	"aide/models"
	"aide/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
)

// StartBriefScheduler enqueues a daily-brief task for every signed-in user
// at the configured hour, in the configured timezone. Returns the running
// scheduler so main can stop it on shutdown.
func StartBriefScheduler(tokens tokensRepo.TokenRepository) (*cron.Cron, error) {
	loc, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	spec := fmt.Sprintf("%d %d * * *", config.AppConfig.BriefMinute, config.AppConfig.BriefHour)
	_, err = c.AddFunc(spec, func() {
		enqueueBriefs(tokens)
	})
	if err != nil {
		return nil, fmt.Errorf("schedule daily briefs: %w", err)
	}

	c.Start()
	log.Printf("[BriefScheduler] Daily briefs scheduled at %02d:%02d %s",
		config.AppConfig.BriefHour, config.AppConfig.BriefMinute, loc)
	return c, nil
}

func enqueueBriefs(tokens tokensRepo.TokenRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	emails, err := tokens.ListEmails(ctx)
	if err != nil {
		log.Printf("[BriefScheduler] Failed to list users: %v", err)
		return
	}

	client := asynq.NewClient(briefRedisOpts())
	defer client.Close()

	for _, email := range emails {
		task, err := tasks.NewBriefTask(models.BriefPayload{UserEmail: email})
		if err != nil {
			log.Printf("[BriefScheduler] Failed to build task for %s: %v", email, err)
			continue
		}
		if _, err := client.Enqueue(task); err != nil {
			log.Printf("[BriefScheduler] Failed to enqueue brief for %s: %v", email, err)
		}
	}
	log.Printf("[BriefScheduler] Enqueued briefs for %d users", len(emails))
}
