package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/seekayel/habla-espanol-ext/internal/config"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database and initializes the
// schema. SQLite is the default; DB_TYPE=postgres plus DATABASE_URL selects
// PostgreSQL instead.
func Connect(cfg config.Config) error {
	var db *sqlx.DB
	var err error

	if cfg.DBType == "postgres" {
		db, err = sqlx.Connect("postgres", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
	} else {
		// Create the data directory if it doesn't exist
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}

		db, err = sqlx.Connect("sqlite3", cfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		// Enable foreign keys
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %w", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db

	// Initialize schema
	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if DB.DriverName() == "postgres" {
		serial = "SERIAL PRIMARY KEY"
	}

	// Create categories table
	_, err := DB.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS categories (
			id %s,
			name TEXT NOT NULL UNIQUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`, serial))
	if err != nil {
		return fmt.Errorf("failed to create categories table: %w", err)
	}

	// Create phrases table
	_, err = DB.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS phrases (
			id %s,
			spanish TEXT NOT NULL,
			english TEXT NOT NULL,
			category_id INTEGER NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (category_id) REFERENCES categories(id),
			UNIQUE(spanish, category_id)
		)
	`, serial))
	if err != nil {
		return fmt.Errorf("failed to create phrases table: %w", err)
	}

	// Create progress table, one row per phrase
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS progress (
			phrase_id INTEGER PRIMARY KEY,
			ease_factor DOUBLE PRECISION NOT NULL DEFAULT 2.5,
			interval INTEGER NOT NULL DEFAULT 0,
			repetitions INTEGER NOT NULL DEFAULT 0,
			next_review TIMESTAMP NOT NULL,
			last_review TIMESTAMP,
			total_reviews INTEGER NOT NULL DEFAULT 0,
			correct_reviews INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (phrase_id) REFERENCES phrases(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create progress table: %w", err)
	}

	// Create review_logs table
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS review_logs (
			id TEXT PRIMARY KEY,
			phrase_id INTEGER NOT NULL,
			session_id TEXT NOT NULL DEFAULT '',
			answer TEXT NOT NULL DEFAULT '',
			quality INTEGER NOT NULL,
			correct BOOLEAN NOT NULL,
			skipped BOOLEAN NOT NULL,
			similarity DOUBLE PRECISION NOT NULL DEFAULT 0,
			reviewed_at TIMESTAMP NOT NULL,
			FOREIGN KEY (phrase_id) REFERENCES phrases(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create review_logs table: %w", err)
	}

	// Create study_sessions table
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS study_sessions (
			id TEXT PRIMARY KEY,
			started_at TIMESTAMP NOT NULL,
			ended_at TIMESTAMP,
			reviews INTEGER NOT NULL DEFAULT 0,
			correct INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create study_sessions table: %w", err)
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_phrases_position ON phrases(position)",
		"CREATE INDEX IF NOT EXISTS idx_progress_next_review ON progress(next_review)",
		"CREATE INDEX IF NOT EXISTS idx_review_logs_phrase ON review_logs(phrase_id)",
		"CREATE INDEX IF NOT EXISTS idx_review_logs_session ON review_logs(session_id)",
	}
	for _, stmt := range indexes {
		if _, err := DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
