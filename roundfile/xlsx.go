package roundfile

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/luca-patrignani/poker-time/domain/poker"
)

const sheetName = "Rounds"

// XLSXParser reads the first sheet of a workbook laid out like the CSV format.
type XLSXParser struct{}

// NewXLSXParser creates a new XLSX parser
func NewXLSXParser() *XLSXParser {
	return &XLSXParser{}
}

func (p *XLSXParser) Parse(data []byte) (poker.Sequence, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open XLSX file: %w", ErrMalformed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: XLSX file has no sheets", ErrMalformed)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %q: %w", ErrMalformed, sheets[0], err)
	}

	rounds := poker.Sequence{}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		r, err := parseRow(row, uint(len(rounds)+1))
		if err != nil {
			return nil, &LineError{Line: i + 1, Err: err}
		}
		rounds = append(rounds, r)
	}
	return rounds, nil
}

// XLSXExporter writes a single-sheet workbook, one round per row, no header.
type XLSXExporter struct{}

// NewXLSXExporter creates a new XLSX exporter
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) Export(rounds poker.Sequence) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	for i, r := range rounds {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		row := []interface{}{r.Number, r.Minutes, r.SmallBlind, r.BigBlind}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write round %d: %w", r.Number, err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode XLSX: %w", err)
	}
	return buf.Bytes(), nil
}
