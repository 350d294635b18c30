package entropy

import (
	"runtime"
	"sync"
)

// SecureBytes holds key material whose pages are locked in RAM where
// the platform allows it and which is zeroed when the holder is done.
type SecureBytes struct {
	data   []byte
	locked bool
	mu     sync.Mutex
}

// Hold takes ownership of an existing slice of key material. Destroy
// zeros it; a finalizer backstops callers that never get there.
func Hold(data []byte) *SecureBytes {
	sb := &SecureBytes{
		data:   data,
		locked: lockMemory(data),
	}

	runtime.SetFinalizer(sb, func(s *SecureBytes) {
		s.Destroy()
	})

	return sb
}

// Bytes exposes the held slice, or nil once destroyed.
func (s *SecureBytes) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// Len reports the held length, zero once destroyed.
func (s *SecureBytes) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Destroy zeros and unlocks the held memory. Calling it again is a
// no-op.
func (s *SecureBytes) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return
	}

	Zero(s.data)

	if s.locked {
		unlockMemory(s.data)
		s.locked = false
	}

	s.data = nil
	runtime.SetFinalizer(s, nil)
}
