// Package capture wraps the external "wrapper" collaborators spec.md §1
// and §6.4 describe as out of scope for the decoding core itself: opening
// a capture stream with transparent decompression, and stripping the
// optional RFF sequence-number prefix from a frame before the core sees
// it. Splitting the stream into frames is left to the caller. None of this is ASTERIX decoding; it only prepares
// the byte slice the core's on_frame-equivalent call expects.
package capture

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec names a capture file's compression, auto-detected from its magic
// bytes by Detect/OpenAuto, or forced by the caller through Open.
type Codec uint8

const (
	CodecNone Codec = iota
	CodecGzip
	CodecZstd
	CodecLZ4
)

var magic = map[Codec][]byte{
	CodecGzip: {0x1f, 0x8b},
	CodecZstd: {0x28, 0xb5, 0x2f, 0xfd},
	CodecLZ4:  {0x04, 0x22, 0x4d, 0x18},
}

// Detect inspects the first bytes of a stream to pick a Codec, falling
// back to CodecNone when nothing matches.
func Detect(peeked []byte) Codec {
	for codec, sig := range magic {
		if len(peeked) >= len(sig) && bytesEqual(peeked[:len(sig)], sig) {
			return codec
		}
	}
	return CodecNone
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Open wraps r with a decompressing reader for the given codec. Passing
// CodecNone returns r unchanged.
func Open(r io.Reader, codec Codec) (io.Reader, error) {
	switch codec {
	case CodecNone:
		return r, nil
	case CodecGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening gzip capture: %w", err)
		}
		return gz, nil
	case CodecZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening zstd capture: %w", err)
		}
		return zr.IOReadCloser(), nil
	case CodecLZ4:
		return lz4.NewReader(r), nil
	default:
		return nil, fmt.Errorf("unknown capture codec %d", codec)
	}
}

// OpenAuto peeks at the stream, auto-detects its codec, and returns a
// decompressing reader alongside the detected Codec for diagnostics.
func OpenAuto(r io.Reader) (io.Reader, Codec, error) {
	br := bufio.NewReader(r)
	peek, _ := br.Peek(4)
	codec := Detect(peek)
	opened, err := Open(br, codec)
	return opened, codec, err
}

// StripSequenceNumber removes the 4-byte big-endian RFF sequence number
// that may prefix a frame's data area (config.Config.WithSequenceNumber),
// returning the sequence number alongside the remaining payload.
func StripSequenceNumber(frame []byte, enabled bool) (seq uint32, payload []byte, err error) {
	if !enabled {
		return 0, frame, nil
	}
	if len(frame) < 4 {
		return 0, nil, fmt.Errorf("frame too short for sequence number: %d bytes", len(frame))
	}
	return binary.BigEndian.Uint32(frame[:4]), frame[4:], nil
}
