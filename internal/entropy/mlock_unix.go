//go:build !windows

package entropy

import "golang.org/x/sys/unix"

// lockMemory pins the pages holding data so they cannot be swapped to
// disk. A false return means the platform refused (RLIMIT_MEMLOCK, for
// example); callers carry on with unlocked memory.
func lockMemory(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return unix.Mlock(data) == nil
}

// unlockMemory releases pages previously pinned by lockMemory.
func unlockMemory(data []byte) {
	if len(data) > 0 {
		_ = unix.Munlock(data)
	}
}
