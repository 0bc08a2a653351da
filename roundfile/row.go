package roundfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/luca-patrignani/poker-time/domain/poker"
)

// columns is the fixed layout of every row: number, minutes, small, big.
const columns = 4

var columnNames = [columns]string{"number", "duration_minutes", "small_blind", "big_blind"}

// parseRow converts one record into the round expected at position want.
// Any deviation is fatal for the whole file.
func parseRow(record []string, want uint) (poker.Round, error) {
	if len(record) != columns {
		return poker.Round{}, fmt.Errorf("%w: expected %d columns, got %d", ErrMalformed, columns, len(record))
	}
	var values [columns]uint
	for i, field := range record {
		v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 32)
		if err != nil {
			return poker.Round{}, fmt.Errorf("%w: %s %q is not a non-negative integer", ErrMalformed, columnNames[i], field)
		}
		values[i] = uint(v)
	}
	if values[0] != want {
		return poker.Round{}, fmt.Errorf("%w: round numbered %d, expected %d", ErrMalformed, values[0], want)
	}
	return poker.NewRound(values[0], values[1], values[2], values[3]), nil
}

// formatRow is the inverse of parseRow.
func formatRow(r poker.Round) []string {
	return []string{
		strconv.FormatUint(uint64(r.Number), 10),
		strconv.FormatUint(uint64(r.Minutes), 10),
		strconv.FormatUint(uint64(r.SmallBlind), 10),
		strconv.FormatUint(uint64(r.BigBlind), 10),
	}
}

