package config

import (
	"fmt"
	"github.com/spf13/viper"
)

// DBConfig points at the sqlite file backing the seen-postings store. The
// file is created on first run; its parent directory must exist.
type DBConfig struct {
	ConnectionString string `mapstructure:"connection_string"`
}

func (config DBConfig) validate() error {
	if config.ConnectionString == "" {
		return fmt.Errorf("missing required variable: connection_string")
	}
	return nil
}

func (config DBConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("db.connection_string", "DB_CONNECTION_STRING")
}
