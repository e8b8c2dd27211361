package report

import (
	"fmt"
	"os"
	"path/filepath"

	"type-closure/internal/stats"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ReportWriteError reports a failure to persist the report document.
type ReportWriteError struct {
	Path string
	Err  error
}

func (e *ReportWriteError) Error() string {
	return fmt.Sprintf("writing report %s: %v", e.Path, e.Err)
}

func (e *ReportWriteError) Unwrap() error {
	return e.Err
}

// Write renders the summaries and writes them to path. The content goes to
// a temporary file in the same directory which is renamed into place, so
// path holds either the complete report or is left untouched.
func Write(path string, summaries []stats.RootSummary) error {
	data, err := Bytes(summaries)
	if err != nil {
		return &ReportWriteError{Path: path, Err: err}
	}

	if err := WriteFile(path, data); err != nil {
		return &ReportWriteError{Path: path, Err: err}
	}

	return nil
}

// WriteFile atomically replaces path with data, creating the parent
// directory if it doesn't exist.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("syncing temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpName, filePerm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming into place: %w", err)
	}

	return nil
}
