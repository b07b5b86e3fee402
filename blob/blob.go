// Package blob decodes lexicons shipped as text: a base64 encoding of a
// compressed lexdawg record image.
package blob

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"

	"github.com/milden6/lexdawg"
)

// ErrUnknownCodec is returned for a codec name or value that is not supported.
var ErrUnknownCodec = errors.New("blob: unknown codec")

// Codec is the compression applied to the record image before base64.
type Codec int

// Supported codecs.
const (
	// Deflate is raw DEFLATE (RFC 1951) under base64.
	Deflate Codec = iota
	// Zlib is DEFLATE with a zlib header and checksum (RFC 1950) under base64.
	Zlib
	// Snappy is a snappy block under base64.
	Snappy
	// Raw is the bare record image: no base64, no compression.
	Raw
	unknownCodec
)

var codecNames = [...]string{
	Deflate: "deflate",
	Zlib:    "zlib",
	Snappy:  "snappy",
	Raw:     "raw",
}

func (c Codec) isValid() bool {
	return c >= Deflate && c < unknownCodec
}

func (c Codec) String() string {
	if !c.isValid() {
		return fmt.Sprintf("codec(%d)", int(c))
	}
	return codecNames[c]
}

// ParseCodec parses a codec name as returned by Codec.String.
func ParseCodec(s string) (Codec, error) {
	for c, name := range codecNames {
		if strings.EqualFold(s, name) {
			return Codec(c), nil
		}
	}
	return unknownCodec, fmt.Errorf("%w: %q", ErrUnknownCodec, s)
}

// Options configure decoding and encoding.
type Options struct {
	// Codec of the blob.
	// Default: Deflate.
	Codec Codec

	// Logger receives load diagnostics at debug level.
	// Default: discard.
	Logger *slog.Logger
}

func (o *Options) norm() *Options {
	var oo Options
	if o != nil {
		oo = *o
	}

	if oo.Logger == nil {
		oo.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &oo
}

// Decode reads a whole blob from r and returns the record image.
func Decode(r io.Reader, o *Options) ([]byte, error) {
	o = o.norm()
	if !o.Codec.isValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCodec, o.Codec)
	}

	if o.Codec == Raw {
		return io.ReadAll(r)
	}

	// base64 decoding skips line breaks
	br := base64.NewDecoder(base64.StdEncoding, r)

	var (
		data []byte
		err  error
	)
	switch o.Codec {
	case Deflate:
		fr := flate.NewReader(br)
		data, err = io.ReadAll(fr)
		if cerr := fr.Close(); err == nil {
			err = cerr
		}
	case Zlib:
		var zr io.ReadCloser
		if zr, err = zlib.NewReader(br); err != nil {
			break
		}
		data, err = io.ReadAll(zr)
		if cerr := zr.Close(); err == nil {
			err = cerr
		}
	case Snappy:
		var block []byte
		if block, err = io.ReadAll(br); err != nil {
			break
		}
		data, err = snappy.Decode(nil, block)
	}
	if err != nil {
		return nil, fmt.Errorf("blob: %v decode: %w", o.Codec, err)
	}
	return data, nil
}

// DecodeString is Decode for a blob held in a string.
func DecodeString(s string, o *Options) ([]byte, error) {
	return Decode(strings.NewReader(s), o)
}

// Encode writes records to w as a blob. It is the inverse of Decode.
func Encode(w io.Writer, records []byte, o *Options) error {
	o = o.norm()
	if !o.Codec.isValid() {
		return fmt.Errorf("%w: %v", ErrUnknownCodec, o.Codec)
	}

	if o.Codec == Raw {
		_, err := w.Write(records)
		return err
	}

	var payload bytes.Buffer
	switch o.Codec {
	case Deflate:
		fw, err := flate.NewWriter(&payload, flate.BestCompression)
		if err != nil {
			return err
		}
		if _, err := fw.Write(records); err != nil {
			return err
		}
		if err := fw.Close(); err != nil {
			return err
		}
	case Zlib:
		zw, err := zlib.NewWriterLevel(&payload, zlib.BestCompression)
		if err != nil {
			return err
		}
		if _, err := zw.Write(records); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
	case Snappy:
		payload.Write(snappy.Encode(nil, records))
	}

	bw := base64.NewEncoder(base64.StdEncoding, w)
	if _, err := bw.Write(payload.Bytes()); err != nil {
		return err
	}
	return bw.Close()
}

// Parse decodes a blob from r and wraps the records in a Dawg.
func Parse(r io.Reader, o *Options) (*lexdawg.Dawg, error) {
	o = o.norm()

	records, err := Decode(r, o)
	if err != nil {
		return nil, err
	}

	d, err := lexdawg.New(records)
	if err != nil {
		return nil, err
	}

	o.Logger.Debug("lexicon loaded",
		slog.String("codec", o.Codec.String()),
		slog.Int("bytes", len(records)),
		slog.Int("records", d.NumRecords()),
	)
	return d, nil
}

// Open decodes the blob stored in the file at path.
func Open(path string, o *Options) (*lexdawg.Dawg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Parse(f, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
