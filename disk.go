package lexdawg

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

// Load reads a raw record image from disk. The file is mapped read-only,
// copied into memory and unmapped again, so the returned Dawg owns its
// buffer and needs no Close.
func Load(filename string) (*Dawg, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, int64(f.Len()))
}

// Read loads size bytes of record image from r, starting at offset 0.
func Read(r io.ReaderAt, size int64) (*Dawg, error) {
	if size == 0 {
		return nil, ErrEmpty
	}
	if size%RecordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMisaligned, size)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(io.NewSectionReader(r, 0, size), buf); err != nil {
		return nil, fmt.Errorf("lexdawg: read records: %w", err)
	}
	return New(buf)
}

// Span returns the record range [from, end) covering count records starting
// at from, clipped to the buffer. A count below zero runs to the last record.
func (d *Dawg) Span(from, count int) (int, int, error) {
	n := d.NumRecords()
	if from < 0 || from > n {
		return 0, 0, fmt.Errorf("lexdawg: start %d out of range [0,%d]", from, n)
	}

	end := n
	if count >= 0 && count < n-from {
		end = from + count
	}
	return from, end, nil
}

// Dump writes count records starting at from, one per line, in the form
//
//	index  more  letter  link
//
// A count below zero dumps through the last record.
func (d *Dawg) Dump(w io.Writer, from, count int) error {
	from, end, err := d.Span(from, count)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for i := from; i < end; i++ {
		rec := d.Record(i)
		more := 0
		if rec.More {
			more = 1
		}
		if _, err := fmt.Fprintf(bw, "%8d  %d  %c  %d\n", i, more, rec.Letter, rec.Link); err != nil {
			return err
		}
	}
	return bw.Flush()
}
