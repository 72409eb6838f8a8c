package axml

import (
	"encoding/binary"
	"math"
)

// buffer is a read-only view over one binary XML document. All accessors
// validate their range before touching the underlying bytes.
type buffer []byte

// offset sums base and deltas, reporting false if any term is negative
// or the sum overflows.
func offset(base int, deltas ...int) (int, bool) {
	if base < 0 {
		return 0, false
	}

	for _, d := range deltas {
		if d < 0 || base > math.MaxInt-d {
			return 0, false
		}
		base += d
	}

	return base, true
}

// has reports whether n bytes starting at off are inside of b.
func (b buffer) has(off, n int) bool {
	return off >= 0 && n >= 0 && off <= len(b) && n <= len(b)-off
}

func (b buffer) bytes(off, n int) ([]byte, error) {
	if !b.has(off, n) {
		return nil, ErrTruncated
	}

	return b[off : off+n], nil
}

func (b buffer) u8(off int) (uint8, error) {
	if !b.has(off, 1) {
		return 0, ErrTruncated
	}

	return b[off], nil
}

func (b buffer) u16(off int) (uint16, error) {
	p, err := b.bytes(off, 2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(p), nil
}

func (b buffer) u32(off int) (uint32, error) {
	p, err := b.bytes(off, 4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(p), nil
}
