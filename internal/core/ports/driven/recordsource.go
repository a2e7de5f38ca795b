package driven

import (
	"context"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

// RecordSource supplies the museum object records the pipeline runs over.
// Decoding (CSV, BOM handling, headers) is the implementation's concern.
type RecordSource interface {
	// Records returns every record of the export, in source order.
	Records(ctx context.Context) ([]domain.Record, error)

	// Location describes where records are read from (e.g. a file path).
	Location() string
}
