// cat/cat065/dataitems/v13/message_type.go
package v13

import (
	"bytes"
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
)

// MessageType represents I065/000 - Message Type
type MessageType struct {
	MessageType uint8 // 1=SDPS status, 2=end of batch, 3=service status report
}

func (m *MessageType) Decode(buf *bytes.Buffer) (int, error) {
	if buf.Len() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte for message type, have %d", asterix.ErrBufferTooShort, buf.Len())
	}
	data := buf.Next(1)
	m.MessageType = data[0]
	return 1, nil
}

func (m *MessageType) Encode(buf *bytes.Buffer) (int, error) {
	buf.WriteByte(m.MessageType)
	return 1, nil
}

func (m *MessageType) Validate() error {
	return nil
}

func (m *MessageType) String() string {
	switch m.MessageType {
	case 1:
		return "SDPS status"
	case 2:
		return "end of batch"
	case 3:
		return "service status report"
	default:
		return fmt.Sprintf("unknown (%d)", m.MessageType)
	}
}
