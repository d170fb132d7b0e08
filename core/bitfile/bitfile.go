// core/bitfile/bitfile.go

// Package bitfile loads starting values written as ASCII '0'/'1' text,
// most significant bit first, with an optional trailing newline.
package bitfile

import (
	"io"

	"github.com/zeebo/errs"
)

// ErrInvalid marks input that is not a usable binary number: bytes
// outside '0'/'1', empty input, or a value of zero.
var ErrInvalid = errs.Class("invalid input")

// Load reads and packs a starting value from path, or from stdin when
// path is "-". Gzip is handled transparently.
func Load(path string) ([]uint64, uint64, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, 0, ErrInvalid.Wrap(err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, 0, ErrInvalid.Wrap(err)
	}
	return Parse(data)
}

// Parse packs a binary string into 64-bit words, least significant word
// first, and returns the exact bit length. One trailing newline (LF or
// CRLF) is tolerated. Leading zeros are stripped so the top word is
// always nonzero.
func Parse(data []byte) ([]uint64, uint64, error) {
	if n := len(data); n > 0 && data[n-1] == '\n' {
		data = data[:n-1]
		if n := len(data); n > 0 && data[n-1] == '\r' {
			data = data[:n-1]
		}
	}
	if len(data) == 0 {
		return nil, 0, ErrInvalid.New("empty input")
	}
	for i, b := range data {
		if b != '0' && b != '1' {
			return nil, 0, ErrInvalid.New("byte %q at offset %d, want '0' or '1'", b, i)
		}
	}

	for len(data) > 0 && data[0] == '0' {
		data = data[1:]
	}
	if len(data) == 0 {
		return nil, 0, ErrInvalid.New("value is zero")
	}

	// 64-character chunks from the least significant end; the partial
	// top chunk packs right-aligned.
	bitLen := uint64(len(data))
	words := make([]uint64, (len(data)+63)/64)
	w := 0
	end := len(data)
	for ; end >= 64; end -= 64 {
		words[w] = packWord(data[end-64 : end])
		w++
	}
	if end > 0 {
		words[w] = packWord(data[:end])
	}
	return words, bitLen, nil
}

func packWord(chunk []byte) uint64 {
	var v uint64
	for _, b := range chunk {
		v = v<<1 | uint64(b-'0')
	}
	return v
}
