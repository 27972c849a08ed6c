package util

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// StagedFile is fully written next to its destination and waits to be committed
type StagedFile struct {
	tmpPath  string
	savePath string
}

// WriteCSV writes the header followed by the rows. The file is only replaced once fully written.
func WriteCSV(savePath string, header []string, rows [][]string) error {
	staged, err := StageCSV(savePath, header, rows)
	if err != nil {
		return err
	}
	return Commit(staged)
}

// StageCSV writes the csv to a temporary file in the directory of savePath
func StageCSV(savePath string, header []string, rows [][]string) (*StagedFile, error) {
	return stage(savePath, func(f *os.File) error {
		w := csv.NewWriter(f)
		if err := w.Write(header); err != nil {
			return err
		}
		if err := w.WriteAll(rows); err != nil {
			return err
		}
		return w.Error()
	})
}

// Discard removes the temporary file
func (s *StagedFile) Discard() {
	os.Remove(s.tmpPath)
}

// Commit moves the staged files into place, all of them or none.
// When a rename fails the files already moved are removed and the remaining ones discarded.
func Commit(files ...*StagedFile) error {
	for i, f := range files {
		if err := os.Rename(f.tmpPath, f.savePath); err != nil {
			for _, done := range files[:i] {
				os.Remove(done.savePath)
			}
			for _, pending := range files[i:] {
				pending.Discard()
			}
			return fmt.Errorf("writing %s: %w", f.savePath, err)
		}
	}
	return nil
}

// EnsureDir creates the directory and its parents if needed
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

func stage(savePath string, write func(*os.File) error) (*StagedFile, error) {
	tmp, err := os.CreateTemp(filepath.Dir(savePath), filepath.Base(savePath)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", savePath, err)
	}
	staged := &StagedFile{tmpPath: tmp.Name(), savePath: savePath}
	if err := write(tmp); err != nil {
		tmp.Close()
		staged.Discard()
		return nil, fmt.Errorf("writing %s: %w", savePath, err)
	}
	if err := tmp.Close(); err != nil {
		staged.Discard()
		return nil, fmt.Errorf("writing %s: %w", savePath, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		staged.Discard()
		return nil, fmt.Errorf("writing %s: %w", savePath, err)
	}
	return staged, nil
}
