package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/radion-x/ODI-Aaron-3/internal/model"
)

// AssessmentStore is the durable append-only record store for completed
// assessments.
type AssessmentStore interface {
	Append(ctx context.Context, rec model.StoredAssessment) error
	All(ctx context.Context) ([]model.StoredAssessment, error)
}

// fileAssessmentStore keeps all records in one JSON array on disk. Appending
// is a read-modify-write of the whole array, guarded by an in-process mutex
// and a file lock so concurrent submissions (or a second process) cannot
// interleave writes. The array itself is replaced atomically via temp file
// and rename, so readers never observe a partial write.
type fileAssessmentStore struct {
	path string
	mu   sync.Mutex
	lock *flock.Flock
}

// NewFileAssessmentStore creates the store, initializing the data file with
// an empty array if it does not exist yet.
func NewFileAssessmentStore(path string) (AssessmentStore, error) {
	s := &fileAssessmentStore{
		path: path,
		lock: flock.New(path + ".lock"),
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeAtomic(path, []byte("[]")); err != nil {
			return nil, fmt.Errorf("initialize data file: %w", err)
		}
	} else if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileAssessmentStore) Append(ctx context.Context, rec model.StoredAssessment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec.ReceivedAt.IsZero() {
		rec.ReceivedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("acquire lock on %s: %w", s.path, err)
	}
	defer s.lock.Unlock()

	records, err := s.readAll()
	if err != nil {
		return err
	}
	records = append(records, rec)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(s.path, data)
}

func (s *fileAssessmentStore) All(ctx context.Context) ([]model.StoredAssessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.lock.RLock(); err != nil {
		return nil, fmt.Errorf("acquire read lock on %s: %w", s.path, err)
	}
	defer s.lock.Unlock()

	return s.readAll()
}

func (s *fileAssessmentStore) readAll() ([]model.StoredAssessment, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.StoredAssessment{}, nil
		}
		return nil, err
	}

	var records []model.StoredAssessment
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return records, nil
}

// writeAtomic replaces the file content via a temp file in the same
// directory followed by a rename.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
