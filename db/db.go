package db

import (
	"database/sql"
	"finance-tracker/api/logger"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// InitDB opens the Postgres connection used for user profiles. The profile
// store is optional; callers should treat a nil DB as "not configured".
func InitDB() error {
	dbURL := os.Getenv("POSTGRES_URL")
	if dbURL == "" {
		return fmt.Errorf("POSTGRES_URL environment variable not set")
	}

	var err error
	DB, err = sql.Open("postgres", dbURL)
	if err != nil {
		return fmt.Errorf("error opening database: %v", err)
	}

	if err := DB.Ping(); err != nil {
		DB = nil
		return fmt.Errorf("error connecting to the database: %v", err)
	}

	logger.Get().Info("successfully connected to Postgres")
	return nil
}

// Ready reports whether the profile store is available.
func Ready() bool {
	return DB != nil
}

func CloseDB() {
	if DB != nil {
		DB.Close()
	}
}
