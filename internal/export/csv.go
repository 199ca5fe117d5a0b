package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jonathan/resume-parser/internal/scoring"
)

func writeCSV(w io.Writer, ranked []scoring.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, e := range ranked {
		if err := cw.Write(flatten(e)); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", e.Label, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
