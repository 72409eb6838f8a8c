// Package axmltest builds synthetic binary XML documents for tests.
package axmltest

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"
)

var le = binary.LittleEndian

// NoEntry is the string index meaning "no string".
const NoEntry uint32 = 0xffffffff

// Attribute is one entry of an element-start chunk's attribute array.
type Attribute struct {
	Namespace uint32
	Name      uint32
	RawValue  uint32
	Size      uint16
	DataType  uint8
	Data      uint32
}

// StringAttribute returns an attribute named by the string at name whose
// value is the string at value, referenced both raw and typed.
func StringAttribute(name, value uint32) Attribute {
	return Attribute{
		Namespace: NoEntry,
		Name:      name,
		RawValue:  value,
		Size:      8,
		DataType:  0x03,
		Data:      value,
	}
}

// IntAttribute returns an attribute named by the string at name with a
// decimal integer value.
func IntAttribute(name uint32, value int32) Attribute {
	return Attribute{
		Namespace: NoEntry,
		Name:      name,
		RawValue:  NoEntry,
		Size:      8,
		DataType:  0x10,
		Data:      uint32(value),
	}
}

// Chunk wraps body in a chunk header. headerSize counts the 8 bytes of
// the header triple plus any type-specific header at the start of body.
func Chunk(typ uint16, headerSize uint16, body []byte) []byte {
	b := make([]byte, 0, 8+len(body))
	b = le.AppendUint16(b, typ)
	b = le.AppendUint16(b, headerSize)
	b = le.AppendUint32(b, uint32(8+len(body)))
	return append(b, body...)
}

// StringPool encodes ss as a string pool chunk. Strings must be shorter
// than 0x7fff units.
func StringPool(ss []string, isUTF8 bool) []byte {
	var (
		offsets = []byte{}
		data    = []byte{}
		flags   uint32
	)

	if isUTF8 {
		flags = 0x100
	}

	for _, s := range ss {
		offsets = le.AppendUint32(offsets, uint32(len(data)))

		if isUTF8 {
			data = appendUTF8Length(data, utf8.RuneCountInString(s))
			data = appendUTF8Length(data, len(s))
			data = append(data, s...)
			data = append(data, 0)
		} else {
			units := utf16.Encode([]rune(s))
			data = le.AppendUint16(data, uint16(len(units)))
			for _, u := range units {
				data = le.AppendUint16(data, u)
			}
			data = le.AppendUint16(data, 0)
		}
	}

	for len(data)%4 != 0 {
		data = append(data, 0)
	}

	body := []byte{}
	body = le.AppendUint32(body, uint32(len(ss)))
	body = le.AppendUint32(body, 0)
	body = le.AppendUint32(body, flags)
	body = le.AppendUint32(body, uint32(28+len(offsets)))
	body = le.AppendUint32(body, 0)
	body = append(body, offsets...)
	body = append(body, data...)

	return Chunk(0x0001, 28, body)
}

func appendUTF8Length(b []byte, n int) []byte {
	if n > 0x7f {
		return append(b, byte(0x80|n>>8), byte(n))
	}

	return append(b, byte(n))
}

// StartElement encodes an element-start chunk for the element named by
// the string at name.
func StartElement(name uint32, attrs ...Attribute) []byte {
	body := []byte{}
	body = le.AppendUint32(body, 1)
	body = le.AppendUint32(body, NoEntry)
	body = le.AppendUint32(body, NoEntry)
	body = le.AppendUint32(body, name)
	body = le.AppendUint16(body, 20)
	body = le.AppendUint16(body, 20)
	body = le.AppendUint16(body, uint16(len(attrs)))
	body = le.AppendUint16(body, 0)
	body = le.AppendUint16(body, 0)
	body = le.AppendUint16(body, 0)

	for _, a := range attrs {
		body = le.AppendUint32(body, a.Namespace)
		body = le.AppendUint32(body, a.Name)
		body = le.AppendUint32(body, a.RawValue)
		body = le.AppendUint16(body, a.Size)
		body = append(body, 0, a.DataType)
		body = le.AppendUint32(body, a.Data)
	}

	return Chunk(0x0102, 16, body)
}

// EndElement encodes an element-end chunk for the element named by the
// string at name.
func EndElement(name uint32) []byte {
	body := []byte{}
	body = le.AppendUint32(body, 1)
	body = le.AppendUint32(body, NoEntry)
	body = le.AppendUint32(body, NoEntry)
	body = le.AppendUint32(body, name)

	return Chunk(0x0103, 16, body)
}

// Document concatenates a string pool and chunks behind a binary XML
// document header.
func Document(pool []byte, chunks ...[]byte) []byte {
	body := append([]byte{}, pool...)
	for _, c := range chunks {
		body = append(body, c...)
	}

	return Chunk(0x0003, 8, body)
}

// Manifest returns a document with a single manifest element whose
// attributes are given as name/value string pairs.
func Manifest(isUTF8 bool, kv ...string) []byte {
	var (
		ss    = []string{"manifest"}
		attrs = []Attribute{}
	)

	for i := 0; i+1 < len(kv); i += 2 {
		ss = append(ss, kv[i], kv[i+1])
		attrs = append(attrs, StringAttribute(uint32(len(ss)-2), uint32(len(ss)-1)))
	}

	return Document(
		StringPool(ss, isUTF8),
		StartElement(0, attrs...),
		EndElement(0),
	)
}
