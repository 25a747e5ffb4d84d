package state

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"tvctl/internal/logger"
)

// Lock takes an exclusive flock on "<state file>.lock", blocking until it is free.
// Two key presses in quick succession would otherwise race on the read-modify-write of the
// state file. The returned function releases the lock.
func (s *Store) Lock() (func(), error) {
	path := s.Path + ".lock"

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file %s: %w", path, err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	logger.Debug("[DEBUG] Acquired %s\n", path)

	return func() {
		if err := unix.Flock(int(f.Fd()), unix.LOCK_UN); err != nil {
			logger.Warn("[WARN] Failed to unlock %s: %v\n", path, err)
		}
		_ = f.Close()
	}, nil
}
