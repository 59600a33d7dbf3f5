package timingplot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ownerFilePrefix starts the lock file Office writes next to an open workbook.
const ownerFilePrefix = "~$"

// checkAvailable verifies the workbook exists and no other program holds it.
func checkAvailable(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidFormat, path)
	}

	owner := filepath.Join(filepath.Dir(path), ownerFilePrefix+filepath.Base(path))
	if _, err := os.Stat(owner); err == nil {
		return fmt.Errorf("%w: %s", ErrFileAlreadyOpen, path)
	}

	// Sharing violations and read-only files both mean the workbook cannot
	// be written back.
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFileAlreadyOpen, path, err)
	}
	return f.Close()
}
