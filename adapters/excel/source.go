package excel

import (
	"context"
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"lessoncard/internal/errors"
)

// LocalFileSource reads form responses from a local Excel or CSV export
// instead of the live spreadsheet. Useful offline and in tests; the
// returned rows have the same shape as the sheets source (header row
// first).
type LocalFileSource struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewLocalFileSource creates a source for the given file. Extension
// selects the parser; anything but .csv is treated as a workbook.
func NewLocalFileSource(filePath string) *LocalFileSource {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &LocalFileSource{filePath: filePath, fileType: fileType}
}

// GetAllValues reads all rows from the file, header row included.
func (s *LocalFileSource) GetAllValues(ctx context.Context) ([][]string, error) {
	log.Printf("[LocalFileSource] Reading %s file: %s", s.fileType, s.filePath)

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return nil, errors.SourceReadError("responses file not found: "+s.filePath, err)
	}

	switch s.fileType {
	case "csv":
		return s.readCSVRows()
	default:
		return s.readWorkbookRows()
	}
}

func (s *LocalFileSource) readWorkbookRows() ([][]string, error) {
	wb, err := excelize.OpenFile(s.filePath)
	if err != nil {
		return nil, errors.SourceReadError("failed to open responses workbook", err)
	}
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, errors.SourceReadError("failed to read sheet "+sheet, err)
	}

	log.Printf("[LocalFileSource] Workbook read (%d rows)", len(rows))
	return rows, nil
}

func (s *LocalFileSource) readCSVRows() ([][]string, error) {
	file, err := os.Open(s.filePath)
	if err != nil {
		return nil, errors.SourceReadError("failed to open responses CSV", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.SourceReadError("failed to parse responses CSV", err)
	}

	log.Printf("[LocalFileSource] CSV read (%d rows)", len(rows))
	return rows, nil
}
