//go:build windows

package entropy

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// lockMemory pins the pages holding data via VirtualLock so they cannot
// be paged to disk. A false return means the lock was refused; callers
// carry on with unlocked memory.
func lockMemory(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	addr := uintptr(unsafe.Pointer(&data[0]))
	return windows.VirtualLock(addr, uintptr(len(data))) == nil
}

// unlockMemory releases pages previously pinned by lockMemory.
func unlockMemory(data []byte) {
	if len(data) == 0 {
		return
	}
	addr := uintptr(unsafe.Pointer(&data[0]))
	_ = windows.VirtualUnlock(addr, uintptr(len(data)))
}
