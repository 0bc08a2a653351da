package roundfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/luca-patrignani/poker-time/domain/poker"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVParser reads the flat number,minutes,small,big format with no header.
type CSVParser struct{}

// NewCSVParser creates a new CSV parser
func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// Parse reads every row or fails on the first malformed one.
func (p *CSVParser) Parse(data []byte) (poker.Sequence, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	reader := csv.NewReader(bytes.NewReader(data))
	// column count is checked per row so the error names the line; empty
	// lines never reach Read
	reader.FieldsPerRecord = -1

	rounds := poker.Sequence{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		line, _ := reader.FieldPos(0)
		r, err := parseRow(record, uint(len(rounds)+1))
		if err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
		rounds = append(rounds, r)
	}
	return rounds, nil
}

// CSVExporter writes one newline-terminated line per round.
type CSVExporter struct{}

// NewCSVExporter creates a new CSV exporter
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(rounds poker.Sequence) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	for _, r := range rounds {
		if err := writer.Write(formatRow(r)); err != nil {
			return nil, fmt.Errorf("failed to write round %d: %w", r.Number, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}
