package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	// WinnerCount is the default number of winners to draw.
	WinnerCount int `mapstructure:"winner_count" validate:"gte=1"`

	// HighEntryThreshold flags participants with more valid entries than
	// this for manual review; 0 disables the check.
	HighEntryThreshold int `mapstructure:"high_entry_threshold" validate:"gte=0"`

	// HighEntrySample caps the entries kept per flagged user in the audit
	// report.
	HighEntrySample int `mapstructure:"high_entry_sample" validate:"gte=1"`

	// ChartExport enables the winner-summary CSV used for charting.
	ChartExport bool `mapstructure:"chart_export"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// Load reads configuration from .env, an optional config.yaml, and
// GIVEAWAY_* environment variables, in increasing precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("winner_count", 10)
	v.SetDefault("high_entry_threshold", 50)
	v.SetDefault("high_entry_sample", 10)
	v.SetDefault("chart_export", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix("GIVEAWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: validate")
	}
	return &cfg, nil
}

// InitLogger installs the global zap logger per the log config.
func InitLogger(c LogConfig) error {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return eris.Wrapf(err, "config: parse log level %q", c.Level)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if c.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	logger, err := zc.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)
	return nil
}
