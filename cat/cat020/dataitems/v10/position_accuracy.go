// cat/cat020/dataitems/v10/position_accuracy.go
package v10

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/davidkohl/gobelix/asterix"
)

// PositionAccuracy represents I020/500 - Position Accuracy, edition 1.0.
// This edition defines only two 4-octet secondaries (DOP, Standard
// Deviation of Position); length is 1 + 4*ord(sf1) + 4*ord(sf2). Bits for
// subfields #3/#4 and the FX bit are invalid in this edition and MUST be
// rejected rather than silently accepted.
type PositionAccuracy struct {
	DOPPresent bool
	DOPx       float64 // LSB = 0.25
	DOPy       float64 // LSB = 0.25

	SDPPresent bool
	SDPx       float64 // LSB = 0.25 m
	SDPy       float64 // LSB = 0.25 m
}

// NewPositionAccuracy creates a new Position Accuracy data item
func NewPositionAccuracy() *PositionAccuracy {
	return &PositionAccuracy{}
}

// Decode decodes the Position Accuracy from bytes
func (p *PositionAccuracy) Decode(buf *bytes.Buffer) (int, error) {
	if buf.Len() < 1 {
		return 0, fmt.Errorf("%w: need at least 1 byte, have %d", asterix.ErrBufferTooShort, buf.Len())
	}

	primary := buf.Next(1)[0]
	bytesRead := 1

	if primary&0x01 != 0 {
		return bytesRead, fmt.Errorf("%w: I020/500 edition 1.0 primary sets FX, single-octet primary only",
			asterix.ErrInvalidMessage)
	}
	if primary&0x30 != 0 {
		return bytesRead, fmt.Errorf("%w: I020/500 edition 1.0 subfields #3/#4 are not defined in this edition",
			asterix.ErrInvalidMessage)
	}

	p.DOPPresent = (primary & 0x80) != 0
	p.SDPPresent = (primary & 0x40) != 0

	if p.DOPPresent {
		if buf.Len() < 4 {
			return bytesRead, fmt.Errorf("%w: need 4 bytes for DOP subfield", asterix.ErrBufferTooShort)
		}
		data := buf.Next(4)
		bytesRead += 4
		p.DOPx = float64(binary.BigEndian.Uint16(data[0:2])) * 0.25
		p.DOPy = float64(binary.BigEndian.Uint16(data[2:4])) * 0.25
	}

	if p.SDPPresent {
		if buf.Len() < 4 {
			return bytesRead, fmt.Errorf("%w: need 4 bytes for SDP subfield", asterix.ErrBufferTooShort)
		}
		data := buf.Next(4)
		bytesRead += 4
		p.SDPx = float64(binary.BigEndian.Uint16(data[0:2])) * 0.25
		p.SDPy = float64(binary.BigEndian.Uint16(data[2:4])) * 0.25
	}

	return bytesRead, nil
}

// Encode encodes the Position Accuracy to bytes
func (p *PositionAccuracy) Encode(buf *bytes.Buffer) (int, error) {
	bytesWritten := 0

	var primary byte
	if p.DOPPresent {
		primary |= 0x80
	}
	if p.SDPPresent {
		primary |= 0x40
	}

	if err := buf.WriteByte(primary); err != nil {
		return bytesWritten, fmt.Errorf("writing primary subfield: %w", err)
	}
	bytesWritten++

	if p.DOPPresent {
		if err := binary.Write(buf, binary.BigEndian, uint16(p.DOPx/0.25)); err != nil {
			return bytesWritten, fmt.Errorf("writing DOPx: %w", err)
		}
		if err := binary.Write(buf, binary.BigEndian, uint16(p.DOPy/0.25)); err != nil {
			return bytesWritten, fmt.Errorf("writing DOPy: %w", err)
		}
		bytesWritten += 4
	}

	if p.SDPPresent {
		if err := binary.Write(buf, binary.BigEndian, uint16(p.SDPx/0.25)); err != nil {
			return bytesWritten, fmt.Errorf("writing SDPx: %w", err)
		}
		if err := binary.Write(buf, binary.BigEndian, uint16(p.SDPy/0.25)); err != nil {
			return bytesWritten, fmt.Errorf("writing SDPy: %w", err)
		}
		bytesWritten += 4
	}

	return bytesWritten, nil
}

// Validate validates the Position Accuracy
func (p *PositionAccuracy) Validate() error {
	if math.IsNaN(p.DOPx) || math.IsNaN(p.SDPx) {
		return fmt.Errorf("%w: I020/500 non-finite value", asterix.ErrInvalidMessage)
	}
	return nil
}

// String returns a string representation
func (p *PositionAccuracy) String() string {
	result := ""
	if p.DOPPresent {
		result += fmt.Sprintf("DOP(x=%.2f, y=%.2f)", p.DOPx, p.DOPy)
	}
	if p.SDPPresent {
		if result != "" {
			result += ", "
		}
		result += fmt.Sprintf("SDP(σx=%.2fm, σy=%.2fm)", p.SDPx, p.SDPy)
	}
	if result == "" {
		result = "No accuracy data"
	}
	return result
}
