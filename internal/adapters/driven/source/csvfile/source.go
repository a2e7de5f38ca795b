package csvfile

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/core/ports/driven"
	"github.com/custodia-labs/oddart/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.RecordSource = (*Source)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// cancelCheckInterval is how many rows are decoded between context checks.
const cancelCheckInterval = 4096

// Source reads records from a CSV file on disk.
type Source struct {
	path string
}

// NewSource creates a source for the CSV file at path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Location returns the file path.
func (s *Source) Location() string {
	return s.path
}

// Records opens the file and decodes every row.
func (s *Source) Records(ctx context.Context) ([]domain.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, s.path)
		}
		return nil, err
	}
	defer f.Close()

	records, err := Decode(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	logger.Debug("Read %d records from %s", len(records), s.path)
	return records, nil
}

// Decode reads a header row followed by data rows from r.
// Input without a header row fails with domain.ErrInvalidInput; a header
// with no rows yields no records.
// Rows shorter than the header omit the missing trailing fields; extra
// cells beyond the header are ignored.
func Decode(ctx context.Context, r io.Reader) ([]domain.Record, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header row", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	columns := make([]string, len(header))
	copy(columns, header)

	records := make([]domain.Record, 0)
	for row := 1; ; row++ {
		if row%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", row, err)
		}

		n := min(len(cells), len(columns))
		fields := make(map[string]string, n)
		for i := 0; i < n; i++ {
			fields[columns[i]] = cells[i]
		}
		records = append(records, domain.NewRecord(fields))
	}
	return records, nil
}
