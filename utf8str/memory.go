// SPDX-License-Identifier: Unlicense OR MIT

package utf8str

import "unsafe"

// granule is the smallest page size of the supported platforms. Chunks
// of native memory end at granule boundaries, so a scan never reads from
// a page that doesn't also hold bytes of the string or its terminator.
const granule = 4096

type pointer struct {
	p unsafe.Pointer
}

type slice []byte

// Pointer returns the native memory starting at p.
func Pointer(p unsafe.Pointer) Memory {
	return pointer{p: p}
}

// Bytes returns a Memory backed by b. The memory ends at len(b).
func Bytes(b []byte) Memory {
	return slice(b)
}

func (m pointer) Nil() bool {
	return m.p == nil
}

func (m pointer) Chunk(off int64) []byte {
	start := unsafe.Add(m.p, off)
	n := granule - int(uintptr(start)%granule)
	return unsafe.Slice((*byte)(start), n)
}

func (m slice) Nil() bool {
	return m == nil
}

func (m slice) Chunk(off int64) []byte {
	if off >= int64(len(m)) {
		return nil
	}
	return m[off:]
}
