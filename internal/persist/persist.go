package persist

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"github.com/tachyon-beep/tidebreak/internal/arena"
)

// lockSuffix is appended to a snapshot's path to derive its advisory lock
// file, mirroring the one-lock-per-resource convention used elsewhere in
// the stack (e.g. gtslack's single-instance lock).
const lockSuffix = ".lock"

// withExclusiveWrite acquires an advisory lock on path+lockSuffix, runs
// write, and releases the lock. If the lock is already held by another
// writer, write is never called and a wrapped contention error is
// returned instead of racing the file.
func withExclusiveWrite(path string, write func(*os.File) error) error {
	fileLock := flock.New(path + lockSuffix)
	locked, err := fileLock.TryLock()
	if err != nil {
		return fmt.Errorf("persist: acquiring lock for %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("persist: %s is locked by another writer", path)
	}
	defer func() { _ = fileLock.Unlock() }()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("persist: writing %s: %w", path, err)
	}
	return nil
}

// SaveUniverse serializes a universe snapshot to path via gob, guarded by
// an advisory file lock so a concurrent save fails with a contention
// error rather than corrupting the file.
func SaveUniverse(path string, snapshot UniverseSnapshot) error {
	return withExclusiveWrite(path, func(f *os.File) error {
		return gob.NewEncoder(f).Encode(snapshot)
	})
}

// LoadUniverse deserializes a universe snapshot previously written by
// SaveUniverse.
func LoadUniverse(path string) (UniverseSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return UniverseSnapshot{}, fmt.Errorf("persist: opening %s: %w", path, err)
	}
	defer f.Close()

	var snapshot UniverseSnapshot
	if err := gob.NewDecoder(f).Decode(&snapshot); err != nil {
		return UniverseSnapshot{}, fmt.Errorf("persist: decoding %s: %w", path, err)
	}
	return snapshot, nil
}

// SaveArena serializes an arena snapshot to path, under the same
// lock-guarded write as SaveUniverse.
func SaveArena(path string, snapshot ArenaSnapshot) error {
	return withExclusiveWrite(path, func(f *os.File) error {
		return gob.NewEncoder(f).Encode(snapshot)
	})
}

// LoadArena deserializes an arena snapshot previously written by
// SaveArena and rebuilds a live *arena.Arena from it.
func LoadArena(path string) (*arena.Arena, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("persist: opening %s: %w", path, err)
	}
	defer f.Close()

	var snapshot ArenaSnapshot
	if err := gob.NewDecoder(f).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("persist: decoding %s: %w", path, err)
	}
	return RestoreArena(snapshot), nil
}
