package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Scorer ScorerConfig `yaml:"scorer" mapstructure:"scorer"`
	Report ReportConfig `yaml:"report" mapstructure:"report"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// ScorerConfig configures deal scoring.
type ScorerConfig struct {
	// ARVPerSqft is the dollars-per-square-foot rule of thumb used to
	// estimate after-repair value from square footage.
	ARVPerSqft float64 `yaml:"arv_per_sqft" mapstructure:"arv_per_sqft"`
	// MinActionScore is the effective-score floor for the action_now queue.
	MinActionScore int `yaml:"min_action_score" mapstructure:"min_action_score"`
}

// ReportConfig configures report rendering.
type ReportConfig struct {
	// DateFormat is the Go layout used for timestamps older than a week.
	DateFormat string `yaml:"date_format" mapstructure:"date_format"`
	// TZOffsetHours is the fixed UTC offset used for calendar-day
	// boundaries when bucketing "time since" values.
	TZOffsetHours int `yaml:"tz_offset_hours" mapstructure:"tz_offset_hours"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("DEALFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("scorer.arv_per_sqft", 160)
	v.SetDefault("scorer.min_action_score", 5)
	v.SetDefault("report.date_format", "Jan 2, 2006")
	v.SetDefault("report.tz_offset_hours", -7)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
