package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"sync"
)

// FileStore keeps the high score as a single decimal integer in a text
// file, with no delimiter and no trailing data.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by path. A leading ~ is expanded;
// the file itself is created on the first save.
func NewFileStore(path string) (*FileStore, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the file the store reads and writes.
func (f *FileStore) Path() string {
	return f.path
}

// HighScore reads the stored value. A missing file is 0 with no error;
// content that is not a non-negative decimal integer is 0 with an error.
func (f *FileStore) HighScore() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	score, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, fmt.Errorf("storage: malformed high score %q: %w", data, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("storage: negative high score %d", score)
	}
	return score, nil
}

// LoadHighScore returns the stored high score. Any failure reads as 0.
func (f *FileStore) LoadHighScore() int {
	score, err := f.HighScore()
	if err != nil {
		return 0
	}
	return score
}

// SaveHighScore truncates the file and writes score in decimal.
func (f *FileStore) SaveHighScore(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	path, err := ensureDir(f.path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}
