package v12

import (
	"bytes"
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
)

// Mode2Code represents I001/050 - Mode-2 Code in Octal Representation
type Mode2Code struct {
	V    bool   // Validated
	G    bool   // Garbled
	L    bool   // Late
	Code uint16 // Mode-2 code (12 bits)
}

func (m *Mode2Code) Decode(buf *bytes.Buffer) (int, error) {
	if buf.Len() < 2 {
		return 0, fmt.Errorf("%w: need 2 bytes for Mode-2 code, have %d", asterix.ErrBufferTooShort, buf.Len())
	}

	data := buf.Next(2)

	// First byte: bit 8 = V, bit 7 = G, bit 6 = L, bit 5 = spare, bits 4-1 = high bits of code
	m.V = (data[0] & 0x80) != 0
	m.G = (data[0] & 0x40) != 0
	m.L = (data[0] & 0x20) != 0

	// Mode-2 code in bits 12-1 (low nibble of first byte + second byte)
	m.Code = (uint16(data[0]&0x0F) << 8) | uint16(data[1])

	return 2, nil
}

func (m *Mode2Code) Encode(buf *bytes.Buffer) (int, error) {
	octet1 := uint8((m.Code >> 8) & 0x0F)
	if m.V {
		octet1 |= 0x80
	}
	if m.G {
		octet1 |= 0x40
	}
	if m.L {
		octet1 |= 0x20
	}

	octet2 := uint8(m.Code & 0xFF)

	buf.WriteByte(octet1)
	buf.WriteByte(octet2)
	return 2, nil
}

func (m *Mode2Code) String() string {
	flags := ""
	if !m.V {
		flags += " NOT_VALIDATED"
	}
	if m.G {
		flags += " GARBLED"
	}
	if m.L {
		flags += " LATE"
	}
	return fmt.Sprintf("%04o%s", m.Code, flags)
}

func (m *Mode2Code) Validate() error {
	return nil
}
