// cat/cat065/dataitems/v13/reserved_expansion.go
package v13

import (
	"bytes"
	"fmt"
	"io"
)

// ReservedExpansion implements RE065 - Reserved Expansion Field. Edition
// 1.3 defines a system-reference-point subfield here; this pass keeps the
// field opaque (length-prefixed raw bytes) rather than modeling that
// subfield individually.
type ReservedExpansion struct {
	Data []byte
}

func (r *ReservedExpansion) Decode(buf *bytes.Buffer) (int, error) {
	lenBytes := make([]byte, 1)
	n, err := buf.Read(lenBytes)
	if err != nil {
		return n, fmt.Errorf("reading reserved expansion length: %w", err)
	}

	length := int(lenBytes[0])
	data := make([]byte, length)
	m, err := buf.Read(data)
	if err != nil && err != io.EOF {
		return n + m, fmt.Errorf("reading reserved expansion data: %w", err)
	}

	r.Data = append(lenBytes, data[:m]...)
	return n + m, nil
}

func (r *ReservedExpansion) Encode(buf *bytes.Buffer) (int, error) {
	if len(r.Data) == 0 {
		return buf.Write([]byte{0})
	}
	return buf.Write(r.Data)
}

func (r *ReservedExpansion) Validate() error {
	return nil
}

func (r *ReservedExpansion) String() string {
	if len(r.Data) <= 1 {
		return "ReservedExpansion[empty]"
	}
	return fmt.Sprintf("ReservedExpansion[%d bytes]", len(r.Data)-1)
}
