package roundfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/luca-patrignani/poker-time/domain/poker"
)

// Parser reads a blind structure file.
type Parser interface {
	Parse(data []byte) (poker.Sequence, error)
}

// Exporter writes a blind structure file.
type Exporter interface {
	Export(rounds poker.Sequence) ([]byte, error)
}

// Factory picks the parser or exporter matching a file extension.
type Factory struct{}

// NewFactory creates a new factory
func NewFactory() *Factory {
	return &Factory{}
}

// GetParser returns the parser for the given filename
func (f *Factory) GetParser(filename string) (Parser, error) {
	switch ext := extension(filename); ext {
	case ".csv":
		return NewCSVParser(), nil
	case ".xlsx":
		return NewXLSXParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// GetExporter returns the exporter for the given filename
func (f *Factory) GetExporter(filename string) (Exporter, error) {
	switch ext := extension(filename); ext {
	case ".csv":
		return NewCSVExporter(), nil
	case ".xlsx":
		return NewXLSXExporter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// Supported reports whether filename has an extension the factory handles.
func Supported(filename string) bool {
	switch extension(filename) {
	case ".csv", ".xlsx":
		return true
	}
	return false
}

func extension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
