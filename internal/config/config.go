package config

import (
	"os"
	"strconv"
	"time"

	"lessoncard/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Sheets   SheetsConfig
	Source   SourceConfig
	Template TemplateConfig
	Server   ServerConfig
	Form     FormConfig
	Cache    CacheConfig
}

// SheetsConfig holds Google Sheets access settings
type SheetsConfig struct {
	CredentialsJSON string
	SpreadsheetID   string
	WorksheetName   string
}

// SourceConfig holds local-file source settings used when Google Sheets
// access is not configured
type SourceConfig struct {
	LocalFile string
}

// TemplateConfig holds card template settings
type TemplateConfig struct {
	Path      string
	SheetName string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// FormConfig holds the public form link shown on the index page
type FormConfig struct {
	URL string
}

// CacheConfig holds record cache settings
type CacheConfig struct {
	TTL time.Duration
}

// PlaceholderFormURL is the default form link before configuration.
const PlaceholderFormURL = "https://forms.gle/YOUR_ACTUAL_GOOGLE_FORM_LINK"

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Sheets: SheetsConfig{
			CredentialsJSON: os.Getenv("GOOGLE_SHEETS_CREDENTIALS"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_SPREADSHEET_ID"),
			WorksheetName:   getEnvOrDefault("GOOGLE_SHEET_WORKSHEET_NAME", "フォームの回答 1"),
		},
		Source: SourceConfig{
			LocalFile: os.Getenv("RESPONSES_FILE"),
		},
		Template: TemplateConfig{
			Path:      getEnvOrDefault("CARD_TEMPLATE_PATH", "授業カード.xlsm"),
			SheetName: getEnvOrDefault("CARD_TEMPLATE_SHEET", "Sheet1"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("SERVER_PORT", "8080"),
		},
		Form: FormConfig{
			URL: getEnvOrDefault("GOOGLE_FORM_URL", PlaceholderFormURL),
		},
		Cache: CacheConfig{
			TTL: time.Duration(getEnvIntOrDefault("CACHE_TTL_SECONDS", 3600)) * time.Second,
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// UseLocalSource reports whether responses come from a local file instead
// of Google Sheets.
func (c *Config) UseLocalSource() bool {
	return c.Source.LocalFile != ""
}

func validateConfig(config *Config) error {
	if config.UseLocalSource() {
		return nil
	}
	if config.Sheets.CredentialsJSON == "" {
		return errors.ConfigMissing("GOOGLE_SHEETS_CREDENTIALS is required when RESPONSES_FILE is not set")
	}
	if config.Sheets.SpreadsheetID == "" {
		return errors.ConfigMissing("GOOGLE_SHEET_SPREADSHEET_ID is required when RESPONSES_FILE is not set")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
