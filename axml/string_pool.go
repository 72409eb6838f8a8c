package axml

import (
	"fmt"
	"math"

	"golang.org/x/text/encoding/unicode"
)

const (
	// stringPoolHeaderSize is where the string offsets array begins,
	// relative to the start of the string pool chunk.
	stringPoolHeaderSize = 28

	// flagUTF8 marks a string pool whose strings are UTF-8 encoded
	// rather than UTF-16.
	flagUTF8 = 0x100
)

// StringPool is the table of string literals referenced by index from
// the rest of the document. Strings are decoded on demand.
type StringPool struct {
	buf          buffer
	count        int
	offsetsStart int
	stringsStart int
	utf8         bool
}

func parseStringPool(b buffer, start int) (*StringPool, error) {
	count, err := b.u32(start + 8)
	if err != nil {
		return nil, fmt.Errorf("%w: string count: %w", ErrStringPoolMissing, err)
	}

	flags, err := b.u32(start + 16)
	if err != nil {
		return nil, fmt.Errorf("%w: flags: %w", ErrStringPoolMissing, err)
	}

	stringsStart, err := b.u32(start + 20)
	if err != nil {
		return nil, fmt.Errorf("%w: strings start: %w", ErrStringPoolMissing, err)
	}

	sp := &StringPool{
		buf:          b,
		count:        int(count),
		offsetsStart: start + stringPoolHeaderSize,
		utf8:         flags&flagUTF8 != 0,
	}

	if sp.count < 0 {
		sp.count = 0
	}

	var ok bool
	if sp.stringsStart, ok = offset(start, int(stringsStart)); !ok {
		sp.stringsStart = len(b)
	}

	return sp, nil
}

// Len returns the number of strings the pool declares.
func (sp *StringPool) Len() int {
	return sp.count
}

// IsUTF8 reports whether the pool's strings are UTF-8 encoded.
func (sp *StringPool) IsUTF8() bool {
	return sp.utf8
}

// String decodes the i'th string. Indices out of range, as well as
// entries that point outside of the buffer, decode to "".
func (sp *StringPool) String(i int) string {
	if i < 0 || i >= sp.count {
		return ""
	}

	if i > math.MaxInt/4 {
		return ""
	}

	entry, ok := offset(sp.offsetsStart, i*4)
	if !ok {
		return ""
	}

	rel, err := sp.buf.u32(entry)
	if err != nil {
		return ""
	}

	pos, ok := offset(sp.stringsStart, int(rel))
	if !ok || pos >= len(sp.buf) {
		return ""
	}

	if sp.utf8 {
		return sp.utf8At(pos)
	}

	return sp.utf16At(pos)
}

// lookup resolves idx if it refers to a string in the pool.
func (sp *StringPool) lookup(idx uint32) (string, bool) {
	if uint64(idx) >= uint64(sp.count) {
		return "", false
	}

	return sp.String(int(idx)), true
}

// utf8Length reads the variable width length prefix used by UTF-8
// string pools: one byte, or two if the high bit of the first is set.
func (sp *StringPool) utf8Length(pos int) (int, int, error) {
	b0, err := sp.buf.u8(pos)
	if err != nil {
		return 0, pos, err
	}

	if b0&0x80 == 0 {
		return int(b0), pos + 1, nil
	}

	b1, err := sp.buf.u8(pos + 1)
	if err != nil {
		return 0, pos, err
	}

	return int(b0&0x7f)<<8 | int(b1), pos + 2, nil
}

func (sp *StringPool) utf8At(pos int) string {
	// The character count is not needed, only its width.
	_, pos, err := sp.utf8Length(pos)
	if err != nil {
		return ""
	}

	n, pos, err := sp.utf8Length(pos)
	if err != nil {
		return ""
	}

	if pos > len(sp.buf) {
		return ""
	}

	n = min(n, len(sp.buf)-pos)

	s, err := unicode.UTF8.NewDecoder().Bytes(sp.buf[pos : pos+n])
	if err != nil {
		return ""
	}

	return string(s)
}

func (sp *StringPool) utf16At(pos int) string {
	n, err := sp.buf.u16(pos)
	if err != nil {
		return ""
	}

	pos += 2
	size := min(int(n)*2, (len(sp.buf)-pos)&^1)

	raw, err := sp.buf.bytes(pos, size)
	if err != nil {
		return ""
	}

	s, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw)
	if err != nil {
		return ""
	}

	return string(s)
}
