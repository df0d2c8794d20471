package config

import (
	"fmt"
	"github.com/spf13/viper"
)

type PipelineConfig struct {
	MinScore          int `mapstructure:"min_score"`
	RecencyWindowDays int `mapstructure:"recency_window_days"`
	SeenRetentionDays int `mapstructure:"seen_retention_days"`
	ScanResultLimit   int `mapstructure:"scan_result_limit"`
}

func (config PipelineConfig) validate() error {

	if config.MinScore < 0 {
		return fmt.Errorf("min_score must be non-negative")
	}

	if config.RecencyWindowDays < 0 {
		return fmt.Errorf("recency_window_days must be non-negative")
	}

	if config.SeenRetentionDays <= 0 {
		return fmt.Errorf("seen_retention_days must be positive")
	}

	if config.SeenRetentionDays < config.RecencyWindowDays {
		return fmt.Errorf("seen_retention_days must not be shorter than recency_window_days")
	}

	return nil
}

func (config PipelineConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("pipeline.min_score", "MIN_SCORE"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("pipeline.recency_window_days", "RECENCY_WINDOW_DAYS"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
