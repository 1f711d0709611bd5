package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aide/config"
	"aide/cron"
	"aide/database"
	crucialRepo "aide/database/repository/crucial"
	knowledgeRepo "aide/database/repository/knowledge"
	remindersRepo "aide/database/repository/reminders"
	telegramLinkRepo "aide/database/repository/telegramlink"
	tokensRepo "aide/database/repository/tokens"
	"aide/handlers"
	"aide/middleware"
	"aide/routes"
	"aide/services/assistant"
	"aide/services/auth"
	"aide/services/calendar"
	"aide/services/knowledge"
	"aide/services/notify"
	"aide/telegram"
	"aide/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(database.MongoClient, utils.GetAuthCacheClient(), 30*time.Second)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	tokenRepo := tokensRepo.NewMongoTokenRepo()
	kbRepo := knowledgeRepo.NewMongoKnowledgeRepo()
	reminderRepo := remindersRepo.NewMongoReminderRepo()
	crucialEventRepo := crucialRepo.NewMongoCrucialRepo()
	linkRepo := telegramLinkRepo.NewMongoTelegramLinkRepo()

	// services.
	authService := &auth.DefaultAuthService{
		Tokens: tokenRepo,
	}
	calendarService := &calendar.DefaultCalendarService{
		Auth: authService,
	}
	knowledgeService := &knowledge.DefaultKnowledgeService{
		Repo:      kbRepo,
		Reminders: reminderRepo,
		Crucial:   crucialEventRepo,
		Calendar:  calendarService,
	}
	emailService := &notify.SMTPEmailService{}

	llmClient, err := assistant.NewLLMClient()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize LLM client: %v", err)
	}
	ctxStore := assistant.NewRedisContextStore(utils.GetChatContextCacheClient(), 30*time.Minute)
	assistantService := &assistant.DefaultAssistantService{
		LLM:       llmClient,
		Knowledge: knowledgeService,
		Calendar:  calendarService,
		CtxStore:  ctxStore,
		Email:     emailService,
	}

	// handlers.
	authHandler := handlers.NewAuthHandler(authService)
	chatHandler := handlers.NewChatHandler(assistantService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	knowledgeHandler := handlers.NewKnowledgeHandler(knowledgeService)
	briefHandler := handlers.NewBriefHandler(assistantService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		LoginHandler:    authHandler.LoginHandler,
		CallbackHandler: authHandler.CallbackHandler,
		MeHandler:       authHandler.MeHandler,
		LogoutHandler:   authHandler.LogoutHandler,

		// Chat endpoints.
		ChatMessageHandler:          chatHandler.ChatMessageHandler,
		ClearConversationHandler:    chatHandler.ClearConversationHandler,
		ParseCalendarRequestHandler: chatHandler.ParseCalendarRequestHandler,
		CalendarCommandHandler:      chatHandler.CalendarCommandHandler,

		// Calendar endpoints.
		TodayEventsHandler:     calendarHandler.TodayEventsHandler,
		UpcomingEventsHandler:  calendarHandler.UpcomingEventsHandler,
		CreateEventHandler:     calendarHandler.CreateEventHandler,
		CreateBirthdayHandler:  calendarHandler.CreateBirthdayHandler,
		CreateInterviewHandler: calendarHandler.CreateInterviewHandler,
		DeleteEventHandler:     calendarHandler.DeleteEventHandler,
		FreeSlotsHandler:       calendarHandler.FreeSlotsHandler,

		// Knowledge base endpoints.
		GetKnowledgeHandler:    knowledgeHandler.GetHandler,
		UpdateKnowledgeHandler: knowledgeHandler.UpdateHandler,
		AppendKnowledgeHandler: knowledgeHandler.AppendHandler,
		SearchKnowledgeHandler: knowledgeHandler.SearchHandler,

		// Reminder endpoints.
		AddReminderHandler:    knowledgeHandler.AddReminderHandler,
		ListRemindersHandler:  knowledgeHandler.ListRemindersHandler,
		RemoveReminderHandler: knowledgeHandler.RemoveReminderHandler,

		// Crucial date endpoints.
		AddCrucialEventHandler:    knowledgeHandler.AddCrucialEventHandler,
		ListCrucialEventsHandler:  knowledgeHandler.ListCrucialEventsHandler,
		RemoveCrucialEventHandler: knowledgeHandler.RemoveCrucialEventHandler,

		// Brief endpoints.
		GetBriefHandler:        briefHandler.GetBriefHandler,
		SendBriefHandler:       briefHandler.SendBriefHandler,
		AnalyzeCalendarHandler: briefHandler.AnalyzeCalendarHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Telegram bot is optional; without a token the web app still works.
	var bot *telegram.Bot
	if config.AppConfig.TelegramBotToken != "" {
		bot, err = telegram.NewBot(config.AppConfig.TelegramBotToken, assistantService, linkRepo, tokenRepo)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize telegram bot: %v", err)
		}
		go bot.Start()
	} else {
		logger.Sugar().Info("main: no telegram token configured, bot disabled")
	}

	// Daily brief pipeline: cron enqueues, asynq worker delivers.
	var pusher cron.BriefPusher
	if bot != nil {
		pusher = bot
	}
	cron.InitBriefWorker(assistantService, emailService, linkRepo, pusher)
	briefScheduler, err := cron.StartBriefScheduler(tokenRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start brief scheduler: %v", err)
	}

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	briefScheduler.Stop()
	if bot != nil {
		bot.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
