package ports

import "context"

// RowSource provides raw tabular form responses. The first returned row
// is the header row; the rest are data rows. Authentication against the
// backing store is the adapter's concern.
type RowSource interface {
	GetAllValues(ctx context.Context) ([][]string, error)
}
