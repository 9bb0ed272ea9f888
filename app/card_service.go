package app

import (
	"context"
	"log"
	"time"

	"lessoncard/domain/card"
	"lessoncard/internal/cache"
	"lessoncard/internal/errors"
	"lessoncard/ports"
)

// CardService orchestrates the two halves of the application: loading
// and normalizing form responses from the row source, and filling the
// card template for one selected record.
type CardService struct {
	source ports.RowSource
	filler ports.CardFiller
	cache  ports.RecordCache
}

// NewCardService wires a source and filler together with a time-bounded
// record cache.
func NewCardService(source ports.RowSource, filler ports.CardFiller, cacheTTL time.Duration) *CardService {
	s := &CardService{
		source: source,
		filler: filler,
	}
	s.cache = cache.New(s.fetchRecords, cacheTTL)
	return s
}

// LoadRecords returns the current record batch, served from cache while
// fresh.
func (s *CardService) LoadRecords(ctx context.Context) ([]card.Record, error) {
	return s.cache.Get(ctx)
}

// ReloadRecords invalidates the cache and loads a fresh batch from the
// source.
func (s *CardService) ReloadRecords(ctx context.Context) ([]card.Record, error) {
	s.cache.Invalidate()
	return s.cache.Get(ctx)
}

// LastFetched returns when the cached batch was loaded from the source.
func (s *CardService) LastFetched() time.Time {
	return s.cache.FetchedAt()
}

// GenerateCard fills the template with one record and returns the
// workbook bytes together with the download filename.
func (s *CardService) GenerateCard(record card.Record) ([]byte, string, error) {
	data, err := s.filler.Fill(record)
	if err != nil {
		return nil, "", err
	}
	return data, card.DownloadFilename(record, s.filler.Ext()), nil
}

// MIMEType returns the download content type for the template's format.
func (s *CardService) MIMEType() string {
	if s.filler.Ext() == ".xlsm" {
		return "application/vnd.ms-excel.sheet.macroEnabled.12"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// fetchRecords reads all rows from the source and normalizes them. An
// empty sheet yields an empty batch, not an error.
func (s *CardService) fetchRecords(ctx context.Context) ([]card.Record, error) {
	rows, err := s.source.GetAllValues(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load form responses")
	}
	if len(rows) == 0 {
		log.Printf("[CardService] Source returned no rows")
		return []card.Record{}, nil
	}

	records := card.Normalize(rows[0], rows[1:])
	log.Printf("[CardService] Normalized %d records from %d data rows", len(records), len(rows)-1)
	return records, nil
}
