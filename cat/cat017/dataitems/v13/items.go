// cat/cat017/dataitems/v13/items.go
package v13

import (
	"bytes"
	"fmt"
)

// MessageType implements I017/000: Mode S coordination message type
// (1 = initiation, 2 = update, 3 = termination, 4 = service message).
type MessageType struct {
	Value uint8
}

func (m *MessageType) Decode(buf *bytes.Buffer) (int, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("reading message type: %w", err)
	}
	m.Value = b
	return 1, nil
}

func (m *MessageType) Encode(buf *bytes.Buffer) (int, error) {
	return 1, buf.WriteByte(m.Value)
}

func (m *MessageType) Validate() error { return nil }

// TargetAddress implements I017/220: the ICAO 24-bit address of the
// coordinated target.
type TargetAddress struct {
	Address uint32
}

func (t *TargetAddress) Decode(buf *bytes.Buffer) (int, error) {
	data := make([]byte, 3)
	n, err := buf.Read(data)
	if err != nil || n != 3 {
		return n, fmt.Errorf("reading target address: %w", err)
	}
	t.Address = uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])
	return 3, nil
}

func (t *TargetAddress) Encode(buf *bytes.Buffer) (int, error) {
	data := []byte{byte(t.Address >> 16), byte(t.Address >> 8), byte(t.Address)}
	return buf.Write(data)
}

func (t *TargetAddress) Validate() error { return nil }

// CoordinationStatus implements I017/290: a one-octet request/response
// handshake status for the coordination exchange.
type CoordinationStatus struct {
	Value uint8
}

func (c *CoordinationStatus) Decode(buf *bytes.Buffer) (int, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return 0, err
	}
	c.Value = b
	return 1, nil
}

func (c *CoordinationStatus) Encode(buf *bytes.Buffer) (int, error) {
	return 1, buf.WriteByte(c.Value)
}

func (c *CoordinationStatus) Validate() error { return nil }
