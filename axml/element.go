package axml

import "math"

// DataType identifies how the data of a TypedValue is interpreted.
type DataType uint8

const (
	TypeNull             DataType = 0x00
	TypeReference        DataType = 0x01
	TypeAttribute        DataType = 0x02
	TypeString           DataType = 0x03
	TypeFloat            DataType = 0x04
	TypeDimension        DataType = 0x05
	TypeFraction         DataType = 0x06
	TypeDynamicReference DataType = 0x07
	TypeIntDec           DataType = 0x10
	TypeIntHex           DataType = 0x11
	TypeIntBoolean       DataType = 0x12
	TypeIntColorARGB8    DataType = 0x1c
	TypeIntColorRGB8     DataType = 0x1d
	TypeIntColorARGB4    DataType = 0x1e
	TypeIntColorRGB4     DataType = 0x1f
)

// NoEntry is the string index meaning "no string".
const NoEntry uint32 = 0xffffffff

const (
	// attributeSize is the stride of the attribute array.
	attributeSize = 20
)

// TypedValue is an attribute value encoded as a (type, data) pair.
type TypedValue struct {
	Size     uint16
	DataType DataType
	Data     uint32
}

// Attribute is one entry of an element's attribute array. Name is
// resolved; Namespace and RawValue are string pool indices.
type Attribute struct {
	Namespace  uint32
	Name       string
	RawValue   uint32
	TypedValue TypedValue
}

// Int returns the attribute's integer value if it is typed as one.
func (a Attribute) Int() (int64, bool) {
	switch a.TypedValue.DataType {
	case TypeIntDec:
		return int64(int32(a.TypedValue.Data)), true
	case TypeIntHex:
		return int64(a.TypedValue.Data), true
	case TypeIntBoolean:
		if a.TypedValue.Data != 0 {
			return 1, true
		}

		return 0, true
	}

	return 0, false
}

// Element is an element-start chunk.
type Element struct {
	Name           string
	AttributeCount int

	buf  buffer
	pool *StringPool
	off  int
}

func readElement(b buffer, pool *StringPool, off int) (*Element, error) {
	if !b.has(off, elementHeaderSize) {
		return nil, ErrTruncated
	}

	nameIdx, err := b.u32(off + 20)
	if err != nil {
		return nil, err
	}

	count, err := b.u16(off + 28)
	if err != nil {
		return nil, err
	}

	name, _ := pool.lookup(nameIdx)

	return &Element{
		Name:           name,
		AttributeCount: int(count),
		buf:            b,
		pool:           pool,
		off:            off,
	}, nil
}

func (e *Element) attribute(i int) (Attribute, error) {
	if i < 0 || i > math.MaxInt/attributeSize {
		return Attribute{}, ErrTruncated
	}

	ao, ok := offset(e.off, elementHeaderSize, i*attributeSize)
	if !ok || !e.buf.has(ao, attributeSize) {
		return Attribute{}, ErrTruncated
	}

	var (
		ns, _      = e.buf.u32(ao)
		nameIdx, _ = e.buf.u32(ao + 4)
		raw, _     = e.buf.u32(ao + 8)
		size, _    = e.buf.u16(ao + 12)
		typ, _     = e.buf.u8(ao + 15)
		data, _    = e.buf.u32(ao + 16)
		name, _    = e.pool.lookup(nameIdx)
	)

	return Attribute{
		Namespace: ns,
		Name:      name,
		RawValue:  raw,
		TypedValue: TypedValue{
			Size:     size,
			DataType: DataType(typ),
			Data:     data,
		},
	}, nil
}

// Attributes returns the element's attribute array, stopping early at
// the end of the buffer.
func (e *Element) Attributes() []Attribute {
	attrs := []Attribute{}
	for i := range e.AttributeCount {
		attr, err := e.attribute(i)
		if err != nil {
			break
		}

		attrs = append(attrs, attr)
	}

	return attrs
}

// Attribute returns the first attribute named name, unresolved.
func (e *Element) Attribute(name string) (Attribute, error) {
	for i := range e.AttributeCount {
		attr, err := e.attribute(i)
		if err != nil {
			break
		}

		if attr.Name == name {
			return attr, nil
		}
	}

	return Attribute{}, ErrAttributeNotFound
}

// Value resolves the string value of the first attribute named name
// that has one. The raw string reference is preferred; a TypeString
// typed value is used as a string index otherwise. Attributes with
// neither are skipped.
func (e *Element) Value(name string) (string, error) {
	for i := range e.AttributeCount {
		attr, err := e.attribute(i)
		if err != nil {
			break
		}

		if attr.Name != name {
			continue
		}

		if s, ok := e.pool.lookup(attr.RawValue); ok {
			return s, nil
		}

		// TODO: Check TypedValue.Size once a manifest with a non-8
		// byte string typed value turns up to test against.
		if attr.TypedValue.DataType == TypeString {
			if s, ok := e.pool.lookup(attr.TypedValue.Data); ok {
				return s, nil
			}
		}
	}

	return "", ErrAttributeNotFound
}
