// Package config resolves runtime settings from the environment with
// sensible local-first defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
)

// Config holds every runtime setting the application reads.
type Config struct {
	// DBType selects the database driver: "sqlite" (default) or "postgres".
	DBType string
	// DatabaseURL is the postgres connection string, used when DBType is postgres.
	DatabaseURL string
	// SQLitePath is the SQLite database file, used otherwise.
	SQLitePath string
	// ListenAddr is the HTTP bind address. The API serves a browser
	// extension on the same machine, so it defaults to loopback only.
	ListenAddr string
	// ReminderHour is the local hour (0-23) for the daily review reminder.
	ReminderHour int
	// TelegramToken and TelegramChatID configure the reminder notifier.
	// Reminders stay disabled while either is unset.
	TelegramToken  string
	TelegramChatID int64
}

// Load reads the configuration from environment variables, falling back to
// defaults for anything unset. Invalid numeric values keep the default.
func Load() Config {
	cfg := Config{
		DBType:       "sqlite",
		SQLitePath:   defaultSQLitePath(),
		ListenAddr:   "127.0.0.1:7421",
		ReminderHour: 9,
	}

	if v := os.Getenv("DB_TYPE"); v != "" {
		cfg.DBType = v
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.SQLitePath = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("REMINDER_HOUR"); v != "" {
		if hour, err := strconv.Atoi(v); err == nil && hour >= 0 && hour <= 23 {
			cfg.ReminderHour = hour
		}
	}
	cfg.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.TelegramChatID = id
		}
	}

	return cfg
}

// defaultSQLitePath places the database under the XDG data home, falling
// back to ~/.local/share and finally the temp dir.
func defaultSQLitePath() string {
	xdg.Reload()

	dataHome := xdg.DataHome
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "habla-espanol", "habla.db")
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "habla-espanol", "habla.db")
}
