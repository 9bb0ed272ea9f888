package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"lessoncard/adapters/excel"
	"lessoncard/adapters/gsheets"
	"lessoncard/app"
	"lessoncard/internal/config"
	"lessoncard/ports"
	"lessoncard/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	source, err := buildSource(appConfig)
	if err != nil {
		log.Fatalf("Failed to initialize row source: %v", err)
	}

	filler := excel.NewTemplateFiller(appConfig.Template.Path, appConfig.Template.SheetName)
	service := app.NewCardService(source, filler, appConfig.Cache.TTL)

	uiApp, err := ui.NewApp(service, appConfig)
	if err != nil {
		log.Fatalf("Failed to initialize UI: %v", err)
	}

	if err := uiApp.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// buildSource picks the responses source: a local file export when
// RESPONSES_FILE is set, the live Google Sheet otherwise.
func buildSource(cfg *config.Config) (ports.RowSource, error) {
	if cfg.UseLocalSource() {
		log.Printf("Using local responses file: %s", cfg.Source.LocalFile)
		return excel.NewLocalFileSource(cfg.Source.LocalFile), nil
	}
	return gsheets.NewSource(context.Background(), cfg.Sheets)
}
