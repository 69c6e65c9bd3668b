package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	BackendSheets = "sheets"
	BackendSqlite = "sqlite"
)

type Config struct {
	TelegramToken   string
	StoreBackend    string
	SpreadsheetID   string
	CredentialsJSON string
	ShiftsSheet     string
	LeavesSheet     string
	SqlitePath      string
	Timezone        string
	Debug           bool
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:   os.Getenv("TELEGRAM_TOKEN"),
		StoreBackend:    getenv("STORE_BACKEND", BackendSheets),
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		CredentialsJSON: os.Getenv("CREDENTIALS_JSON"),
		ShiftsSheet:     getenv("SHIFTS_SHEET", "Shifts"),
		LeavesSheet:     getenv("LEAVES_SHEET", "Leaves"),
		SqlitePath:      getenv("SQLITE_PATH", "shift-bot.db"),
		Timezone:        getenv("TIMEZONE", "Europe/Sofia"),
		Debug:           os.Getenv("DEBUG") != "",
	}
	if cfg.TelegramToken == "" {
		return nil, ErrMissingVar{Name: "TELEGRAM_TOKEN"}
	}
	if cfg.StoreBackend == BackendSheets {
		if cfg.SpreadsheetID == "" {
			return nil, ErrMissingVar{Name: "SPREADSHEET_ID"}
		}
		if cfg.CredentialsJSON == "" {
			return nil, ErrMissingVar{Name: "CREDENTIALS_JSON"}
		}
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type ErrMissingVar struct {
	Name string
}

func (e ErrMissingVar) Error() string {
	return e.Name + " не задан в окружении"
}
