// Package results persists the last outcome of each test inside its build directory.
package results

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResultStore = (*Store)(nil)

// Store implements ports.ResultStore using a file-per-test strategy.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the last result of a test. It returns nil, nil if none was stored.
func (s *Store) Get(buildDir, testID string) (*domain.TestResult, error) {
	filename := s.filename(buildDir, testID)
	//nolint:gosec // Path is constructed from the build directory and a hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var result domain.TestResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "file", filename)
	}

	return &result, nil
}

// Put stores a result, replacing any previous result of the same test.
func (s *Store) Put(buildDir string, result domain.TestResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.filename(buildDir, result.ID)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	// Write to a sibling file first so readers never observe a partial result.
	tmp := filename + ".tmp"
	//nolint:gosec // Path is constructed from the build directory and a hashed filename
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmp, filename); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) filename(buildDir, testID string) string {
	name := strconv.FormatUint(xxhash.Sum64String(testID), 16)
	return filepath.Join(domain.ResultStorePath(buildDir), name+".json")
}
