// SPDX-License-Identifier: Unlicense OR MIT

// Package utf8str converts UTF-8 text held in foreign memory to Go
// strings.
//
// A nil address is not an error: the functions report it through their
// ok result, so callers can tell an absent string from an empty one.
package utf8str

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrRange is returned when a NUL-terminated string is longer than
	// math.MaxInt32 bytes.
	ErrRange = errors.New("utf8str: string too large")
	// ErrDecode is returned for byte sequences that are not valid UTF-8.
	ErrDecode = errors.New("utf8str: invalid UTF-8")
)

// maxLen is the longest string a scan will accept.
const maxLen = math.MaxInt32

// Memory is a read-only view of bytes owned by someone else, typically
// C.
type Memory interface {
	// Nil reports whether the view has no address.
	Nil() bool
	// Chunk returns the readable bytes starting at off. An empty
	// chunk marks the end of the memory.
	Chunk(off int64) []byte
}

// String returns the NUL-terminated string at p.
func String(p unsafe.Pointer) (s string, ok bool, err error) {
	return Decode(Pointer(p))
}

// StringN returns the n bytes at p as a string. The bytes may include
// NULs; the caller guarantees that n bytes are readable.
func StringN(p unsafe.Pointer, n int) (s string, ok bool, err error) {
	return DecodeN(Pointer(p), n)
}

// Decode scans m for a NUL byte and decodes the bytes before it. If m
// ends without a NUL, the whole of m is decoded.
func Decode(m Memory) (string, bool, error) {
	if m == nil || m.Nil() {
		return "", false, nil
	}
	n, err := scan(m)
	if err != nil {
		return "", true, err
	}
	s, err := decode(read(m, n))
	return s, true, err
}

// DecodeN decodes the first n bytes of m.
func DecodeN(m Memory, n int) (string, bool, error) {
	if m == nil || m.Nil() {
		return "", false, nil
	}
	if n < 0 {
		return "", true, fmt.Errorf("%w: negative length %d", ErrRange, n)
	}
	s, err := decode(read(m, n))
	return s, true, err
}

// Lossy returns the n bytes at p as a string, replacing invalid UTF-8
// with U+FFFD instead of failing. A negative n yields the empty string.
func Lossy(p unsafe.Pointer, n int) (string, bool) {
	if p == nil {
		return "", false
	}
	if n <= 0 {
		return "", true
	}
	// The UTF-8 decoder replaces invalid input; it never fails on it.
	out, _ := unicode.UTF8.NewDecoder().Bytes(read(Pointer(p), n))
	return string(out), true
}

// scan returns the number of bytes before the first NUL in m.
func scan(m Memory) (int, error) {
	var off int64
	for {
		c := m.Chunk(off)
		if len(c) == 0 {
			break
		}
		if i := bytes.IndexByte(c, 0); i >= 0 {
			off += int64(i)
			break
		}
		off += int64(len(c))
		if off > maxLen {
			// Still no terminator; the string can't be represented.
			return 0, fmt.Errorf("%w: more than %d bytes", ErrRange, maxLen)
		}
	}
	if off > maxLen {
		return 0, fmt.Errorf("%w: %d bytes", ErrRange, off)
	}
	return int(off), nil
}

func read(m Memory, n int) []byte {
	buf := make([]byte, 0, n)
	for len(buf) < n {
		c := m.Chunk(int64(len(buf)))
		if len(c) == 0 {
			break
		}
		if rem := n - len(buf); len(c) > rem {
			c = c[:rem]
		}
		buf = append(buf, c...)
	}
	return buf
}

func decode(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	off := 0
	for off < len(b) {
		r, size := utf8.DecodeRune(b[off:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		off += size
	}
	return "", fmt.Errorf("%w at byte %d", ErrDecode, off)
}
