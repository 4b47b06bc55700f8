package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ccradio/rotation-bot/internal/ai"
	"github.com/ccradio/rotation-bot/internal/config"
	"github.com/ccradio/rotation-bot/internal/database"
	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/internal/domain/service"
	"github.com/ccradio/rotation-bot/internal/handlers"
	"github.com/ccradio/rotation-bot/internal/notify"
	"github.com/ccradio/rotation-bot/internal/web"
	"github.com/ccradio/rotation-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.AudioDir, 0o755); err != nil {
		logger.Fatal("failed to create audio directory", zap.String("dir", cfg.AudioDir), zap.Error(err))
	}

	var (
		text   contract.TextGenerator
		speech contract.SpeechSynthesizer
	)
	if cfg.AIEnabled() {
		text = ai.NewTextClient(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AITextModel)
		speechClient, err := ai.NewSpeechClient(ctx, cfg.AIAPIKey, cfg.AISpeechModel, "")
		if err != nil {
			logger.Fatal("failed to create speech client", zap.Error(err))
		}
		speech = speechClient
	} else {
		logger.Warn("AI_API_KEY is not set, AI content is disabled")
	}

	svc := service.NewInstance(database.NewInstance(db), text, speech, cfg.AudioDir, logger)

	if err := svc.Map.SeedFromFile(ctx, cfg.SeedPath); err != nil {
		logger.Fatal("failed to seed", zap.String("path", cfg.SeedPath), zap.Error(err))
	}
	clock, err := svc.Map.LoadClock(ctx, cfg.RotationInterval, cfg.RotationEpoch)
	if err != nil {
		logger.Fatal("failed to build rotation clock", zap.Error(err))
	}
	logger.Info("rotation loaded",
		zap.Int("maps", clock.Len()),
		zap.Duration("interval", clock.Interval()),
		zap.Time("epoch", clock.Epoch()),
	)

	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		logger.Fatal("failed to create discord session", zap.Error(err))
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	handler := handlers.New(session, clock, svc, cfg.PublicBaseURL, logger.Named("discord"))
	session.AddHandler(handler.OnInteraction)

	if err := session.Open(); err != nil {
		logger.Fatal("failed to open discord session", zap.Error(err))
	}
	defer session.Close()

	registered, err := session.ApplicationCommandBulkOverwrite(session.State.User.ID, cfg.DiscordGuildID, handlers.Commands())
	if err != nil {
		logger.Fatal("failed to register commands", zap.Error(err))
	}
	logger.Info("commands registered", zap.Int("count", len(registered)), zap.String("guild_id", cfg.DiscordGuildID))

	sched := service.NewScheduler(clock, svc, announcer(session, cfg), logger.Named("scheduler"))
	if err := sched.Start(ctx); err != nil {
		logger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	go sched.Warmup(ctx)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           web.NewHandler(svc, cfg.AudioDir, logger.Named("web")).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.EncoderConfig.TimeKey = "time"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}

// announcer returns the configured outputs, or nil when there are none.
func announcer(session *discordgo.Session, cfg *config.Config) contract.Announcer {
	var out notify.Multi
	if cfg.AnnounceChannelID != "" {
		out = append(out, notify.NewDiscordAnnouncer(session, cfg.AnnounceChannelID))
	}
	if cfg.SlackWebhookURL != "" {
		out = append(out, notify.NewSlackAnnouncer(cfg.SlackWebhookURL))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
