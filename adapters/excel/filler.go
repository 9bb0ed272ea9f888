package excel

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"lessoncard/domain/card"
	"lessoncard/internal/errors"
)

// TemplateFiller writes one record into the pre-existing card template
// and serializes the result to an in-memory buffer. The template file is
// never modified; each fill works on a fresh in-memory copy.
type TemplateFiller struct {
	path  string
	sheet string
}

// NewTemplateFiller creates a filler for the template at path, writing
// into the named sheet.
func NewTemplateFiller(path, sheet string) *TemplateFiller {
	return &TemplateFiller{path: path, sheet: sheet}
}

// Ext returns the template's file extension, defaulting to ".xlsx".
func (f *TemplateFiller) Ext() string {
	ext := strings.ToLower(filepath.Ext(f.path))
	if ext == "" {
		return ".xlsx"
	}
	return ext
}

// Fill writes the record's mapped fields into the template and returns
// the filled workbook bytes. List values are joined with their field's
// separator; fields absent from the record are written as empty strings.
func (f *TemplateFiller) Fill(record card.Record) ([]byte, error) {
	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		log.Printf("[TemplateFiller] FAILED - template not found: %s", f.path)
		return nil, errors.TemplateMissing(f.path)
	}

	wb, err := excelize.OpenFile(f.path)
	if err != nil {
		return nil, errors.WriteError("failed to open card template", err)
	}
	defer wb.Close()

	for field, cell := range CellMappings {
		value := record.Get(field).Flatten(card.ListSeparator(field))
		if err := wb.SetCellValue(f.sheet, cell, value); err != nil {
			return nil, errors.WriteError("failed to write cell "+cell, err)
		}
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, errors.WriteError("failed to serialize filled card", err)
	}

	log.Printf("[TemplateFiller] Filled card for record %s (%d bytes)", record.GeneratedID, buf.Len())
	return buf.Bytes(), nil
}
