package validator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const maxPollTimeoutMs = 60000

var (
	ErrNoValidLogPath = errors.New("no valid log path")
	ErrNoValidTimeout = errors.New("no valid poll timeout")
)

// LogFile checks that path can host a log file: it is not an existing
// directory and its parent either exists or can be created.
func LogFile(path string) (bool, error) {
	absPath, errAbs := filepath.Abs(filepath.Clean(path))
	if errAbs != nil {
		return false, fmt.Errorf("no valid log path: %w", errAbs)
	}

	target, errStat := os.Stat(absPath)
	if errStat != nil && !os.IsNotExist(errStat) {
		return false, fmt.Errorf("no valid log path: %w", errStat)
	}

	if errStat == nil && target.IsDir() {
		return false, fmt.Errorf("%w: %s is a directory", ErrNoValidLogPath, path)
	}

	parentFolder, errParent := os.Stat(filepath.Dir(absPath))
	if errParent != nil {
		if os.IsNotExist(errParent) {
			return true, nil
		}

		return false, fmt.Errorf("no valid log path: %w", errParent)
	}

	if !parentFolder.IsDir() {
		return false, fmt.Errorf("%w: %s has no parent folder", ErrNoValidLogPath, path)
	}

	return true, nil
}

// PollTimeout checks an input poll timeout in milliseconds.
func PollTimeout(ms int) (bool, error) {
	if ms <= 0 || ms > maxPollTimeoutMs {
		return false, fmt.Errorf("%w: %d not in (0, %d]", ErrNoValidTimeout, ms, maxPollTimeoutMs)
	}

	return true, nil
}
