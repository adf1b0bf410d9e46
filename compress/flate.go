package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

// FlateCodec implements the raw-deflate session compression, algorithm 0 of
// the NetworkSettings negotiation.
type FlateCodec struct {
	level int
}

var _ Codec = (*FlateCodec)(nil)

// NewFlateCodec creates a flate codec at the default compression level.
func NewFlateCodec() *FlateCodec {
	return &FlateCodec{level: flate.DefaultCompression}
}

// Compress compresses data as a raw deflate stream.
func (c *FlateCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := flate.NewWriter(&buf, c.level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress inflates a raw deflate stream.
func (c *FlateCodec) Decompress(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return out, nil
}
