package config

import (
	"fmt"
	"github.com/spf13/viper"
	"strings"
	"time"
)

type BotConfig struct {
	Token                   string        `mapstructure:"token"`
	ChatID                  int64         `mapstructure:"chat_id"`
	SearchQuery             string        `mapstructure:"search_query"`
	ScrapeInterval          time.Duration `mapstructure:"scrape_interval"`
	TgMaxMessagesPerSecond  float32       `mapstructure:"tg_max_messages_per_second"`
	BoardMaxRequestsPerSec  float32       `mapstructure:"board_max_requests_per_second"`
}

func (config BotConfig) validate() error {

	var missingFields []string

	if config.Token == "" {
		missingFields = append(missingFields, "token")
	}

	if config.ChatID == 0 {
		missingFields = append(missingFields, "chat_id")
	}

	if config.SearchQuery == "" {
		missingFields = append(missingFields, "search_query")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	if config.ScrapeInterval <= 0 {
		return fmt.Errorf("scrape_interval must be positive")
	}

	return nil
}

func (config BotConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("bot.token", "TG_TOKEN"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("bot.chat_id", "TG_CHAT_ID"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("bot.scrape_interval", "SCRAPE_INTERVAL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("bot.search_query", "SEARCH_QUERY"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
