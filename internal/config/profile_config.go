package config

import (
	"fmt"
	"github.com/go-playground/validator/v10"
)

// ProfileConfig is the fixed resume profile the scorer runs against.
// Immutable for the process lifetime; changing it means a redeploy.
type ProfileConfig struct {
	RolePhrases   map[string]int `mapstructure:"role_phrases" validate:"required,min=1"`
	SkillKeywords map[string]int `mapstructure:"skill_keywords" validate:"required,min=1"`
	InternBonus   int            `mapstructure:"intern_bonus" validate:"gte=0"`
	SourceWeights map[string]int `mapstructure:"source_weights"`
}

func (config ProfileConfig) validate() error {

	if err := validator.New().Struct(config); err != nil {
		return err
	}

	for phrase, weight := range config.RolePhrases {
		if weight <= 0 {
			return fmt.Errorf("role phrase %q has non-positive weight %d", phrase, weight)
		}
	}

	for keyword, weight := range config.SkillKeywords {
		if weight <= 0 {
			return fmt.Errorf("skill keyword %q has non-positive weight %d", keyword, weight)
		}
	}

	return nil
}
