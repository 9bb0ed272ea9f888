package ports

import (
	"lessoncard/domain/card"
)

// CardFiller writes one normalized record into the card template and
// returns the filled document. On failure no partial output is returned.
type CardFiller interface {
	Fill(record card.Record) ([]byte, error)

	// Ext returns the template's file extension (".xlsm" or ".xlsx"),
	// used to derive the download filename and MIME type.
	Ext() string
}
