package main

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/avinsharma/job-scout/internal/bot"
	"github.com/avinsharma/job-scout/internal/clients/boards"
	"github.com/avinsharma/job-scout/internal/config"
	"github.com/avinsharma/job-scout/internal/logger"
	"github.com/avinsharma/job-scout/internal/metrics"
	"github.com/avinsharma/job-scout/internal/notifier"
	"github.com/avinsharma/job-scout/internal/repositories"
	"github.com/avinsharma/job-scout/internal/services"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
	"os/signal"
	"syscall"
	"time"
)

const defaultLocation = "India"

func newCollector(cfg *config.Config) *services.Collector {

	client := boards.NewClient()
	client.SetRateLimit(cfg.Bot.BoardMaxRequestsPerSec)

	return services.NewCollector(
		boards.NewLinkedIn(client, defaultLocation),
		boards.NewIndeed(client, defaultLocation),
		boards.NewNaukri(client),
		boards.NewInternshala(client, defaultLocation),
	)
}

func newPipeline(cfg *config.Config) *services.Pipeline {

	profile := services.Profile{
		RolePhrases:   cfg.Profile.RolePhrases,
		SkillKeywords: cfg.Profile.SkillKeywords,
		InternBonus:   cfg.Profile.InternBonus,
		SourceWeights: cfg.Profile.SourceWeights,
	}

	return services.NewPipeline(
		services.NewRecencyFilter(cfg.Pipeline.RecencyWindowDays),
		services.NewScorer(profile),
		services.NewApplyChannelResolver(services.NewHTTPPageFetcher(6*time.Second)),
		cfg.Pipeline.MinScore,
	)
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer()

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if err = dbContext.Migrate(); err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	seen := repositories.NewSeenPostingsRepository(dbContext.DB)

	cleaner, err := services.NewSeenCleaner(seen, cfg.Pipeline.SeenRetentionDays)
	if err != nil {
		log.Fatalf("can't create seen cleaner: %v", err)
	}
	defer cleaner.Stop()

	api, err := botApi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		log.Fatalf("can't create telegram api: %v", err)
	}

	tgNotifier := notifier.NewTelegram(api, cfg.Bot.ChatID, cfg.Bot.TgMaxMessagesPerSecond)

	bus := EventBus.New()

	tgbot, err := bot.NewBot(api, bus, tgNotifier)
	if err != nil {
		log.Fatalf("can't create bot: %v", err)
	}
	go tgbot.Run()

	runner, err := services.NewRunner(bus, newCollector(cfg), newPipeline(cfg), seen, tgNotifier,
		cfg.Bot.SearchQuery, cfg.Bot.ScrapeInterval, cfg.Pipeline.ScanResultLimit)
	if err != nil {
		log.Fatalf("can't create runner: %v", err)
	}
	go runner.Run(ctx)

	<-ctx.Done()

	log.Info("Shutting down services...")
	tgbot.Stop()
	log.Info("Services stopped.")
}
