package lexdawg

import (
	"encoding/binary"
	"fmt"
)

// Record layout constants. See the package documentation for the full format.
const (
	// RecordSize is the size in bytes of one edge record.
	RecordSize = 4

	// Sentinel is the letter of the edge marking "a word ends here".
	Sentinel byte = '$'

	// MoreFlag is set when further sibling records follow in the same run.
	MoreFlag uint32 = 1 << 31

	// LinkMask selects the child record index from a record word.
	LinkMask uint32 = 0xFFFFFF

	// MaxLink is the largest record index a link can address.
	MaxLink = LinkMask

	letterShift = 24
	letterMask  = 0x7f
)

// Record is one decoded edge of the graph.
type Record struct {
	More   bool   // more siblings follow in this run
	Letter byte   // a-z, or Sentinel
	Link   uint32 // first record of the child node; unused for Sentinel
}

func (r Record) String() string {
	return fmt.Sprintf("more=%t letter=%q link=%d", r.More, r.Letter, r.Link)
}

// IsSentinel reports whether r marks the end of a word.
func (r Record) IsSentinel() bool {
	return r.Letter == Sentinel
}

// RangeError is the panic value raised when a record index falls outside
// the buffer. It means the buffer is corrupt or a link points nowhere.
type RangeError struct {
	Index   int // requested record index
	Records int // number of whole records in the buffer
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("lexdawg: record %d out of range [0,%d)", e.Index, e.Records)
}

// DecodeRecord decodes record i of buf. It panics with a *RangeError when
// bytes [4i, 4i+4) are not inside buf.
func DecodeRecord(buf []byte, i int) Record {
	n := len(buf) / RecordSize
	if i < 0 || i >= n {
		panic(&RangeError{Index: i, Records: n})
	}

	off := i * RecordSize
	v := binary.LittleEndian.Uint32(buf[off : off+RecordSize])
	return Record{
		More:   v&MoreFlag != 0,
		Letter: byte(v>>letterShift) & letterMask,
		Link:   v & LinkMask,
	}
}
