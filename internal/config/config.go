package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ccradio/rotation-bot/internal/domain"
)

const defaultAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

type Config struct {
	DiscordBotToken   string
	DiscordGuildID    string
	AnnounceChannelID string
	SlackWebhookURL   string

	DatabasePath string
	SeedPath     string

	RotationInterval time.Duration
	RotationEpoch    time.Time

	AIAPIKey      string
	AIBaseURL     string
	AITextModel   string
	AISpeechModel string

	AudioDir      string
	PublicBaseURL string
	Port          string
	LogLevel      string
}

// AIEnabled reports whether an AI key is configured.
func (c *Config) AIEnabled() bool {
	return c.AIAPIKey != ""
}

func Load() (*Config, error) {
	interval, err := time.ParseDuration(getEnv("ROTATION_INTERVAL", domain.DefaultRotationInterval.String()))
	if err != nil {
		return nil, fmt.Errorf("%w: ROTATION_INTERVAL: %v", domain.ErrInvalidArgument, err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("%w: ROTATION_INTERVAL must be positive", domain.ErrInvalidArgument)
	}

	epoch, err := time.Parse(time.RFC3339, getEnv("ROTATION_EPOCH", domain.DefaultRotationEpoch))
	if err != nil {
		return nil, fmt.Errorf("%w: ROTATION_EPOCH: %v", domain.ErrInvalidArgument, err)
	}

	cfg := &Config{
		DiscordBotToken:   getEnv("DISCORD_BOT_TOKEN", ""),
		DiscordGuildID:    getEnv("DISCORD_GUILD_ID", ""),
		AnnounceChannelID: getEnv("ANNOUNCE_CHANNEL_ID", ""),
		SlackWebhookURL:   getEnv("SLACK_WEBHOOK_URL", ""),
		DatabasePath:      getEnv("DATABASE_PATH", "./data.db"),
		SeedPath:          getEnv("SEED_PATH", "./seed.yaml"),
		RotationInterval:  interval,
		RotationEpoch:     epoch,
		AIAPIKey:          getEnv("AI_API_KEY", ""),
		AIBaseURL:         getEnv("AI_BASE_URL", defaultAIBaseURL),
		AITextModel:       getEnv("AI_TEXT_MODEL", "gemini-3-flash-preview"),
		AISpeechModel:     getEnv("AI_SPEECH_MODEL", "gemini-2.5-flash-preview-tts"),
		AudioDir:          getEnv("AUDIO_DIR", "./web/public/audio"),
		PublicBaseURL:     getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),
		Port:              getEnv("PORT", "3000"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DiscordBotToken == "" {
		return nil, fmt.Errorf("%w: DISCORD_BOT_TOKEN is required", domain.ErrInvalidArgument)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
