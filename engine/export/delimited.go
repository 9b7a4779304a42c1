// Package export serializes the flat record list. Both writers are pure
// functions of the record sequence: they do not inspect definitions.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/record"
)

// DefaultSeparator keeps embedded commas in synthesized text intact.
const DefaultSeparator = '|'

// WriteDelimited emits a header row plus one delimited row per record.
func WriteDelimited(w io.Writer, records []record.Record, separator rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = separator
	if err := writer.Write(record.Header()); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for i, rec := range records {
		if err := writer.Write(rec.Row()); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush delimited output: %w", err)
	}
	return nil
}
