package axml

import "fmt"

// ChunkType is the type tag at the start of every chunk.
type ChunkType uint16

const (
	ChunkNull           ChunkType = 0x0000
	ChunkStringPool     ChunkType = 0x0001
	ChunkXML            ChunkType = 0x0003
	ChunkStartNamespace ChunkType = 0x0100
	ChunkEndNamespace   ChunkType = 0x0101
	ChunkStartElement   ChunkType = 0x0102
	ChunkEndElement     ChunkType = 0x0103
	ChunkCData          ChunkType = 0x0104
	ChunkResourceMap    ChunkType = 0x0180
)

// Known reports whether t is one of the chunk types defined above.
// Document.Walk skips unknown chunks whatever their contents.
func (t ChunkType) Known() bool {
	switch t {
	case ChunkNull, ChunkStringPool, ChunkXML,
		ChunkStartNamespace, ChunkEndNamespace,
		ChunkStartElement, ChunkEndElement,
		ChunkCData, ChunkResourceMap:
		return true
	}

	return false
}

func (t ChunkType) String() string {
	switch t {
	case ChunkNull:
		return "null"
	case ChunkStringPool:
		return "string-pool"
	case ChunkXML:
		return "xml"
	case ChunkStartNamespace:
		return "start-namespace"
	case ChunkEndNamespace:
		return "end-namespace"
	case ChunkStartElement:
		return "start-element"
	case ChunkEndElement:
		return "end-element"
	case ChunkCData:
		return "cdata"
	case ChunkResourceMap:
		return "resource-map"
	}

	return fmt.Sprintf("unknown(0x%04x)", uint16(t))
}

const (
	// chunkHeaderSize is the size of the {type, header size, size} triple.
	chunkHeaderSize = 8

	// magic is the first word of a binary XML document: ChunkXML with an
	// 8 byte header.
	magic uint32 = 0x00080003

	// elementHeaderSize is where the attribute array of an
	// element-start chunk begins.
	elementHeaderSize = 36
)

// ChunkHeader begins every chunk.
type ChunkHeader struct {
	Type       ChunkType
	HeaderSize uint16
	Size       uint32
}

func readChunkHeader(b buffer, off int) (ChunkHeader, error) {
	typ, err := b.u16(off)
	if err != nil {
		return ChunkHeader{}, err
	}

	headerSize, err := b.u16(off + 2)
	if err != nil {
		return ChunkHeader{}, err
	}

	size, err := b.u32(off + 4)
	if err != nil {
		return ChunkHeader{}, err
	}

	return ChunkHeader{
		Type:       ChunkType(typ),
		HeaderSize: headerSize,
		Size:       size,
	}, nil
}
