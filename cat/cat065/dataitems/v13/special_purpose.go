// cat/cat065/dataitems/v13/special_purpose.go
package v13

import (
	"bytes"
	"fmt"
	"io"
)

// SpecialPurpose implements SPF065 - Special Purpose Field.
type SpecialPurpose struct {
	Data []byte
}

func (s *SpecialPurpose) Decode(buf *bytes.Buffer) (int, error) {
	lenBytes := make([]byte, 1)
	n, err := buf.Read(lenBytes)
	if err != nil {
		return n, fmt.Errorf("reading special purpose length: %w", err)
	}

	length := int(lenBytes[0])
	data := make([]byte, length)
	m, err := buf.Read(data)
	if err != nil && err != io.EOF {
		return n + m, fmt.Errorf("reading special purpose data: %w", err)
	}

	s.Data = append(lenBytes, data[:m]...)
	return n + m, nil
}

func (s *SpecialPurpose) Encode(buf *bytes.Buffer) (int, error) {
	if len(s.Data) == 0 {
		return buf.Write([]byte{0})
	}
	return buf.Write(s.Data)
}

func (s *SpecialPurpose) Validate() error {
	return nil
}

func (s *SpecialPurpose) String() string {
	if len(s.Data) <= 1 {
		return "SpecialPurpose[empty]"
	}
	return fmt.Sprintf("SpecialPurpose[%d bytes]", len(s.Data)-1)
}
