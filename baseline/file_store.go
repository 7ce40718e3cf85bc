package baseline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	yaml "gopkg.in/yaml.v3"

	"github.com/qa-harness/reqres-contract-tests/framework/opt"
)

// FileStore keeps shapes in a YAML file, keyed by test ID. The whole file is rewritten on
// every Put.
type FileStore struct {
	path   string
	shapes map[string]Shape
	lock   sync.Mutex
}

// OpenFileStore reads an existing baseline file, or starts an empty one if the file does not
// exist yet.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, shapes: make(map[string]Shape)}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("could not read baseline file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s.shapes); err != nil {
		return nil, fmt.Errorf("baseline file %q is malformed: %w", path, err)
	}
	if s.shapes == nil {
		s.shapes = make(map[string]Shape)
	}
	return s, nil
}

func (s *FileStore) Get(_ context.Context, key string) (opt.Maybe[Shape], error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if shape, ok := s.shapes[key]; ok {
		return opt.Some(shape), nil
	}
	return opt.None[Shape](), nil
}

func (s *FileStore) Put(_ context.Context, key string, shape Shape) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.shapes[key] = shape
	data, err := yaml.Marshal(s.shapes)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644) //nolint:gosec // not sensitive
}

func (s *FileStore) Location() string { return "file:" + s.path }

func (s *FileStore) Close() error { return nil }
