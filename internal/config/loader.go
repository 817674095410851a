package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds host tool settings. The core library takes no configuration;
// everything here drives the CLI surface.
type Config struct {
	ExportDir    string
	ExportFormat string
	LogFile      string
	LogLevel     slog.Level
}

// DefaultConfig returns the settings used when no config file or
// environment overrides are present.
func DefaultConfig() Config {
	return Config{
		ExportDir:    filepath.Join(os.TempDir(), "entlens-exports"),
		ExportFormat: "json",
		LogFile:      "",
		LogLevel:     slog.LevelInfo,
	}
}

// Load reads config.yaml from configPath, allowing ENTLENS_* environment
// overrides (ENTLENS_EXPORT_DIR, ENTLENS_EXPORT_FORMAT, ENTLENS_LOG_FILE,
// ENTLENS_LOG_LEVEL). A missing config file is not an error; defaults and
// environment values apply.
func Load(configPath string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()
	v.SetEnvPrefix("ENTLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("export.dir")
	v.BindEnv("export.format")
	v.BindEnv("log.file")
	v.BindEnv("log.level")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	if v.IsSet("export.dir") {
		cfg.ExportDir = v.GetString("export.dir")
	}
	if v.IsSet("export.format") {
		cfg.ExportFormat = strings.ToLower(v.GetString("export.format"))
	}
	if v.IsSet("log.file") {
		cfg.LogFile = v.GetString("log.file")
	}
	if v.IsSet("log.level") {
		cfg.LogLevel = parseLogLevel(v.GetString("log.level"))
	}

	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
