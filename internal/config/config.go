// Package config loads engine settings from a config file and SENTE_
// prefixed environment variables.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/baduk-engine/sente/game/goban"
)

type Config struct {
	BoardSize      int           `mapstructure:"BOARD_SIZE"`
	Rules          string        `mapstructure:"RULES"`
	TimeLimit      time.Duration `mapstructure:"TIME_LIMIT"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	PatternWeights string        `mapstructure:"PATTERN_WEIGHTS"`
	CheckSelfAtari bool          `mapstructure:"CHECK_SELF_ATARI"`
	RecordGIF      string        `mapstructure:"RECORD_GIF"`
}

// Setup reads the config file at cfgPath, or only defaults and environment
// variables when cfgPath is empty.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	// every key needs a default, or AutomaticEnv will not surface it
	v.SetDefault("BOARD_SIZE", 7)
	v.SetDefault("RULES", "nocapture")
	v.SetDefault("TIME_LIMIT", time.Minute)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PATTERN_WEIGHTS", "")
	v.SetDefault("CHECK_SELF_ATARI", false)
	v.SetDefault("RECORD_GIF", "")

	v.SetEnvPrefix("SENTE")
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GobanRules maps the configured rule name to a rule set. Unknown names fall
// back to the no-capture rules.
func (c *Config) GobanRules() goban.Rules {
	if strings.EqualFold(c.Rules, "capture") {
		return goban.RulesCapture
	}
	return goban.RulesNoCapture
}
