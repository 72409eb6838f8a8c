package axml

import (
	"errors"
	"fmt"
)

const (
	// ManifestTag is the root element of AndroidManifest.xml.
	ManifestTag = "manifest"
	// PackageAttribute is the manifest attribute holding the
	// application's package name.
	PackageAttribute = "package"
)

// Document is a parsed binary XML document. It borrows the bytes it was
// parsed from and never modifies them.
type Document struct {
	buf  buffer
	pool *StringPool
	body int
}

// Parse validates the document header and string pool of b.
func Parse(b []byte) (*Document, error) {
	buf := buffer(b)

	if word, err := buf.u32(0); err != nil || word != magic {
		return nil, ErrNotBinaryXML
	}

	hdr, err := readChunkHeader(buf, chunkHeaderSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStringPoolMissing, err)
	} else if hdr.Type != ChunkStringPool {
		return nil, fmt.Errorf("%w: found %s chunk", ErrStringPoolMissing, hdr.Type)
	}

	pool, err := parseStringPool(buf, chunkHeaderSize)
	if err != nil {
		return nil, err
	}

	body, ok := offset(chunkHeaderSize, int(hdr.Size))
	if !ok {
		body = len(buf)
	}

	return &Document{buf: buf, pool: pool, body: body}, nil
}

// StringPool returns the document's string pool.
func (d *Document) StringPool() *StringPool {
	return d.pool
}

// errStopWalk ends a Walk early without an error.
var errStopWalk = errors.New("stop walk")

// Walk calls fn with each element-start chunk following the string pool,
// in document order. Chunks of other types, known or not, are skipped.
// A chunk with a size of zero ends the walk. If fn returns an error,
// Walk stops and returns it.
func (d *Document) Walk(fn func(*Element) error) error {
	pos := d.body
	for d.buf.has(pos, chunkHeaderSize) {
		hdr, err := readChunkHeader(d.buf, pos)
		if err != nil || hdr.Size == 0 {
			break
		}

		switch t := hdr.Type; {
		case t == ChunkStartElement:
			if !d.buf.has(pos, elementHeaderSize) {
				break
			}

			el, err := readElement(d.buf, d.pool, pos)
			if err == nil {
				if err = fn(el); err != nil {
					return err
				}
			}
		case t.Known():
			// Namespaces, end tags, CDATA and resource maps carry
			// nothing that Walk reports.
		default:
			// Unrecognized, skipped by its size like any other chunk.
		}

		next, ok := offset(pos, int(hdr.Size))
		if !ok {
			break
		}
		pos = next
	}

	return nil
}

// Element returns the first element named tag.
func (d *Document) Element(tag string) (*Element, error) {
	var found *Element
	if err := d.Walk(func(el *Element) error {
		if el.Name == tag {
			found = el
			return errStopWalk
		}

		return nil
	}); err != nil && !errors.Is(err, errStopWalk) {
		return nil, err
	}

	if found == nil {
		return nil, &LookupError{Tag: tag, Err: ErrElementNotFound}
	}

	return found, nil
}

// Find returns the string value of attribute attr on the first element
// named tag. The search does not continue past that element.
func (d *Document) Find(tag, attr string) (string, error) {
	el, err := d.Element(tag)
	if err != nil {
		return "", err
	}

	value, err := el.Value(attr)
	if err != nil {
		return "", &LookupError{Tag: tag, Attribute: attr, Err: err}
	}

	return value, nil
}

// Find parses b and returns the string value of attribute attr on the
// first element named tag.
func Find(b []byte, tag, attr string) (string, error) {
	d, err := Parse(b)
	if err != nil {
		return "", err
	}

	return d.Find(tag, attr)
}

// PackageName returns the package attribute of the manifest element of
// the AndroidManifest.xml b.
func PackageName(b []byte) (string, error) {
	return Find(b, ManifestTag, PackageAttribute)
}
