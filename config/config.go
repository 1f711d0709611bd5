package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB        int    `mapstructure:"REDIS_AUTH_DB"`
	RedisChatContextDB int    `mapstructure:"REDIS_CHAT_CONTEXT_DB"`
	RedisBriefQueueDB  int    `mapstructure:"REDIS_BRIEF_QUEUE_DB"`

	// Google OAuth (sign-in and Calendar access).
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	// LLM configuration.
	LLMProvider  string `mapstructure:"LLM_PROVIDER"` // "gemini" or "openai"
	LLMModel     string `mapstructure:"LLM_MODEL"`
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`

	// Scheduling defaults.
	Timezone         string `mapstructure:"TIMEZONE"`
	WorkingStartHour int    `mapstructure:"WORKING_START_HOUR"`
	WorkingEndHour   int    `mapstructure:"WORKING_END_HOUR"`

	// Daily brief delivery.
	BriefHour   int    `mapstructure:"BRIEF_HOUR"`
	BriefMinute int    `mapstructure:"BRIEF_MINUTE"`
	SMTPHost    string `mapstructure:"SMTP_HOST"`
	SMTPPort    int    `mapstructure:"SMTP_PORT"`
	SMTPSender  string `mapstructure:"SMTP_SENDER"`
	SMTPPass    string `mapstructure:"SMTP_PASSWORD"`

	// Telegram bot (optional).
	TelegramBotToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_AUTH_DB", 0)
	viper.SetDefault("REDIS_CHAT_CONTEXT_DB", 1)
	viper.SetDefault("REDIS_BRIEF_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/auth/callback")
	viper.SetDefault("LLM_PROVIDER", "gemini")
	viper.SetDefault("TIMEZONE", "America/Toronto")
	viper.SetDefault("WORKING_START_HOUR", 9)
	viper.SetDefault("WORKING_END_HOUR", 17)
	viper.SetDefault("BRIEF_HOUR", 8)
	viper.SetDefault("BRIEF_MINUTE", 0)
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 465)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
