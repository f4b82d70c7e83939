package launch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"launchnote/internal/logging"
)

// DefaultPath is the record collection the annotators work on when no path is given.
const DefaultPath = "data/spacex-launches.json"

// Store loads and saves a record collection as a unit.
type Store interface {
	Load(ctx context.Context) (Collection, error)
	Save(ctx context.Context, c Collection) error
}

// FileStore keeps the collection in a single JSON document (an array of objects).
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a FileStore for the document at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the document path.
func (s *FileStore) Path() string { return s.path }

// Load implements Store.
func (s *FileStore) Load(ctx context.Context) (Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	logging.New("store").Info("collection loaded", "path", s.path, "records", len(c))
	return c, nil
}

// Save implements Store.
func (s *FileStore) Save(ctx context.Context, c Collection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := Save(s.path, c); err != nil {
		return err
	}
	logging.New("store").Info("collection saved", "path", s.path, "records", len(c))
	return nil
}

// Load reads the whole collection at path.
func Load(path string) (Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}
	return Decode(data)
}

// Decode parses a JSON array of launch records.
func Decode(data []byte) (Collection, error) {
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse collection: %w", err)
	}
	for i, r := range c {
		if r == nil {
			return nil, fmt.Errorf("parse collection: record %d is null", i)
		}
	}
	return c, nil
}

// Encode renders the collection with two-space indentation.
func Encode(c Collection) ([]byte, error) {
	if c == nil {
		c = Collection{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode collection: %w", err)
	}
	return buf.Bytes(), nil
}

// Save overwrites path with the whole collection.
func Save(path string, c Collection) error {
	out, err := Encode(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	return nil
}
