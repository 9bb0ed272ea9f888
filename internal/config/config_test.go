package config

import (
	"testing"
	"time"

	"lessoncard/internal/errors"
)

func TestLoad_LocalSourceNeedsNoCredentials(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS", "")
	t.Setenv("GOOGLE_SHEET_SPREADSHEET_ID", "")
	t.Setenv("RESPONSES_FILE", "responses.xlsx")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error for local source: %v", err)
	}
	if !cfg.UseLocalSource() {
		t.Error("Expected UseLocalSource() to be true when RESPONSES_FILE is set")
	}
}

func TestLoad_MissingCredentials(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS", "")
	t.Setenv("GOOGLE_SHEET_SPREADSHEET_ID", "")
	t.Setenv("RESPONSES_FILE", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error when neither credentials nor local file are set")
	}
	if errors.GetCode(err) != errors.CodeConfigMissing {
		t.Errorf("Expected code %s, got %s", errors.CodeConfigMissing, errors.GetCode(err))
	}
}

func TestLoad_MissingSpreadsheetID(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS", `{"type":"service_account"}`)
	t.Setenv("GOOGLE_SHEET_SPREADSHEET_ID", "")
	t.Setenv("RESPONSES_FILE", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error when spreadsheet ID is missing")
	}
	if errors.GetCode(err) != errors.CodeConfigMissing {
		t.Errorf("Expected code %s, got %s", errors.CodeConfigMissing, errors.GetCode(err))
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS", `{"type":"service_account"}`)
	t.Setenv("GOOGLE_SHEET_SPREADSHEET_ID", "sheet-id")
	t.Setenv("RESPONSES_FILE", "")
	t.Setenv("GOOGLE_SHEET_WORKSHEET_NAME", "")
	t.Setenv("CARD_TEMPLATE_PATH", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("GOOGLE_FORM_URL", "")
	t.Setenv("CACHE_TTL_SECONDS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Sheets.WorksheetName != "フォームの回答 1" {
		t.Errorf("Unexpected worksheet default: %q", cfg.Sheets.WorksheetName)
	}
	if cfg.Template.Path != "授業カード.xlsm" {
		t.Errorf("Unexpected template default: %q", cfg.Template.Path)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Unexpected port default: %q", cfg.Server.Port)
	}
	if cfg.Form.URL != PlaceholderFormURL {
		t.Errorf("Unexpected form URL default: %q", cfg.Form.URL)
	}
	if cfg.Cache.TTL != time.Hour {
		t.Errorf("Unexpected cache TTL default: %v", cfg.Cache.TTL)
	}
}

func TestLoad_CacheTTLOverride(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS", `{"type":"service_account"}`)
	t.Setenv("GOOGLE_SHEET_SPREADSHEET_ID", "sheet-id")
	t.Setenv("RESPONSES_FILE", "")
	t.Setenv("CACHE_TTL_SECONDS", "300")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("Expected 5m TTL, got %v", cfg.Cache.TTL)
	}
}
