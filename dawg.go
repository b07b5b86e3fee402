package lexdawg

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by New when the buffer holds no records.
	ErrEmpty = errors.New("lexdawg: empty buffer")

	// ErrMisaligned is returned by New when the buffer length is not a
	// multiple of RecordSize.
	ErrMisaligned = errors.New("lexdawg: buffer length is not a multiple of the record size")
)

const rootNode = 0

// Dawg answers membership queries against a precompiled record buffer.
// It never modifies the buffer and is safe for concurrent use.
type Dawg struct {
	buf []byte
}

// New wraps buf. The caller must not modify buf afterwards.
//
// Only the length is checked; the edge runs themselves are trusted. A
// corrupt buffer makes Contains panic with a *RangeError.
func New(buf []byte) (*Dawg, error) {
	if len(buf) == 0 {
		return nil, ErrEmpty
	}
	if len(buf)%RecordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMisaligned, len(buf))
	}
	return &Dawg{buf: buf}, nil
}

// Contains reports whether word is in the lexicon. The word is matched
// byte for byte: callers normalise case and whitespace beforehand. A word
// containing Sentinel is never found.
func (d *Dawg) Contains(word string) bool {
	node := rootNode
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c == Sentinel {
			return false
		}

		child, ok := d.FindChild(node, c)
		if !ok {
			return false
		}
		node = child
	}

	_, ok := d.FindChild(node, Sentinel)
	return ok
}

// FindChild scans the edge run starting at record start for letter and
// returns the index of the child node it links to.
func (d *Dawg) FindChild(start int, letter byte) (int, bool) {
	for i := start; ; i++ {
		rec := DecodeRecord(d.buf, i)
		if rec.Letter == letter {
			return int(rec.Link), true
		}
		if !rec.More {
			return 0, false
		}
	}
}

// Record decodes record i. It panics with a *RangeError if i is out of range.
func (d *Dawg) Record(i int) Record {
	return DecodeRecord(d.buf, i)
}

// NumRecords returns the number of records in the buffer.
func (d *Dawg) NumRecords() int {
	return len(d.buf) / RecordSize
}

// Bytes returns the underlying buffer. It must not be modified.
func (d *Dawg) Bytes() []byte {
	return d.buf
}
