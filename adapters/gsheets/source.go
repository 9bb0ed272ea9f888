package gsheets

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"lessoncard/internal/config"
	"lessoncard/internal/errors"
)

// Source reads form responses from a Google Sheets worksheet using a
// service-account credential.
type Source struct {
	service       *sheets.Service
	spreadsheetID string
	worksheet     string
}

// NewSource authenticates against the Sheets API with the configured
// service-account JSON and returns a source for the configured
// worksheet.
func NewSource(ctx context.Context, cfg config.SheetsConfig) (*Source, error) {
	creds, err := google.CredentialsFromJSON(ctx, []byte(cfg.CredentialsJSON), sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, errors.WithCode(errors.CodeConfigMissing,
			errors.Wrap(err, "GOOGLE_SHEETS_CREDENTIALS is not a valid service-account key"))
	}

	service, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, errors.SourceReadError("failed to create Sheets client", err)
	}

	return &Source{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		worksheet:     cfg.WorksheetName,
	}, nil
}

// GetAllValues fetches every row of the worksheet, header row first.
func (s *Source) GetAllValues(ctx context.Context) ([][]string, error) {
	log.Printf("[SheetsSource] Reading worksheet %q from spreadsheet %s", s.worksheet, s.spreadsheetID)

	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, s.worksheet).Context(ctx).Do()
	if err != nil {
		log.Printf("[SheetsSource] FAILED - worksheet read failed: %v", err)
		return nil, errors.SourceReadError("failed to read worksheet "+s.worksheet, err)
	}

	rows := convertValues(resp.Values)
	log.Printf("[SheetsSource] Worksheet read (%d rows)", len(rows))
	return rows, nil
}

// convertValues turns the API's loosely-typed cell values into the
// string grid the normalizer expects.
func convertValues(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, row := range values {
		cells := make([]string, len(row))
		for i, cell := range row {
			if cell == nil {
				continue
			}
			if s, ok := cell.(string); ok {
				cells[i] = s
			} else {
				cells[i] = fmt.Sprintf("%v", cell)
			}
		}
		rows = append(rows, cells)
	}
	return rows
}
