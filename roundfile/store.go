package roundfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/luca-patrignani/poker-time/domain/poker"
)

// DefaultDir is the PokerTime folder inside the user's Documents directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, "Documents", "PokerTime"), nil
}

// Store reads and writes structure files. Relative names resolve under Dir.
type Store struct {
	Dir     string
	factory *Factory
}

// NewStore creates dir if needed and returns a store rooted there.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return &Store{Dir: dir, factory: NewFactory()}, nil
}

// Path resolves name against the store directory.
func (s *Store) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// Load reads and parses a structure file. On error nothing is returned, so
// the caller's current sequence stays as it was.
func (s *Store) Load(name string) (poker.Sequence, error) {
	path := s.Path(name)
	parser, err := s.factory.GetParser(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	rounds, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to import %s: %w", path, err)
	}
	return rounds, nil
}

// Save exports rounds to name and returns the path written. Rounds must be
// numbered 1..N, otherwise the file could not be imported again.
func (s *Store) Save(name string, rounds poker.Sequence) (string, error) {
	path := s.Path(name)
	if err := rounds.Validate(); err != nil {
		return "", fmt.Errorf("refusing to export %s: %w", path, err)
	}
	exporter, err := s.factory.GetExporter(path)
	if err != nil {
		return "", err
	}
	data, err := exporter.Export(rounds)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// List returns the names of the structure files saved in the store directory.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.Dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !Supported(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
