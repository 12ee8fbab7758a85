// Package archive stores keyed values in a YAML file and exposes them
// through the jj.Archive interface.
package archive

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/gojj/internal/errors"
	"github.com/mcncl/gojj/pkg/jj"
)

// FileStore is a jj.Archive backed by a YAML mapping on disk. Changes are
// kept in memory until Save is called.
type FileStore struct {
	mu   sync.RWMutex
	path string
	data jj.Object
}

var _ jj.Archive = (*FileStore)(nil)

// Open loads the archive at path. A missing file yields an empty store
// that Save will create.
func Open(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.NewArchiveError("archive path is empty", errors.ErrInvalidFilePath)
	}

	store := &FileStore{path: path, data: jj.Object{}}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, errors.NewArchiveError(fmt.Sprintf("failed to read archive '%s'", path), err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, errors.NewArchiveError(fmt.Sprintf("failed to parse archive '%s'", path), err)
	}
	for key, value := range raw {
		store.data[key] = normalize(value)
	}
	return store, nil
}

// Path returns the file the store reads from and saves to
func (s *FileStore) Path() string {
	return s.path
}

// Get implements jj.Archive
func (s *FileStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Put implements jj.Archive
func (s *FileStore) Put(key string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = v
}

// Keys returns the stored keys in sorted order
func (s *FileStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Encoder returns a jj.Encoder writing into the store
func (s *FileStore) Encoder() jj.Encoder {
	return jj.NewEncoder(s)
}

// Decoder returns a jj.Decoder reading from the store
func (s *FileStore) Decoder(opts ...jj.Option) jj.Decoder {
	return jj.NewDecoder(s, opts...)
}

// Save writes the store back to its file
func (s *FileStore) Save() error {
	s.mu.RLock()
	content, err := yaml.Marshal(s.data)
	s.mu.RUnlock()
	if err != nil {
		return errors.NewArchiveError("failed to encode archive", err)
	}
	if err := os.WriteFile(s.path, content, 0o644); err != nil {
		return errors.NewArchiveError(fmt.Sprintf("failed to write archive '%s'", s.path), err)
	}
	return nil
}

// normalize turns YAML mappings with non-string keys into jj objects so
// every nested value stays navigable.
func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			v[key] = normalize(item)
		}
		return v
	case map[any]any:
		obj := make(jj.Object, len(v))
		for key, item := range v {
			obj[fmt.Sprint(key)] = normalize(item)
		}
		return obj
	case []any:
		for i, item := range v {
			v[i] = normalize(item)
		}
		return v
	default:
		return v
	}
}
