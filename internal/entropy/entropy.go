// Package entropy provides the library's single random source and
// secure containers for key material.
package entropy

import (
	"crypto/rand"
	"io"
)

// Reader is the source of all randomness in the library. It defaults to
// crypto/rand.Reader; tests substitute a deterministic reader.
//
//nolint:gochecknoglobals // Swappable RNG is the one sanctioned global
var Reader io.Reader = rand.Reader

// RandomBytes draws exactly n bytes from Reader, failing rather than
// returning a short buffer.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	_, err := io.ReadFull(Reader, buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Zero overwrites data with zero bytes.
func Zero(data []byte) {
	for i := range data {
		data[i] = 0
	}
}
