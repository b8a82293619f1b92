// cat/cat019/dataitems/v12/items.go
package v12

import (
	"bytes"
	"fmt"
)

// MessageType implements I019/000: MLAT system status message type.
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

func (m *MessageType) Encode(buf *bytes.Buffer) (int, error) { return 1, buf.WriteByte(m.Value) }
func (m *MessageType) Validate() error                       { return nil }

// SystemStatus implements I019/550: a one-octet bitmask of MLAT system
// station/processing availability.
type SystemStatus struct {
	Value uint8
}

func (s *SystemStatus) Decode(buf *bytes.Buffer) (int, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("reading system status: %w", err)
	}
	s.Value = b
	return 1, nil
}

func (s *SystemStatus) Encode(buf *bytes.Buffer) (int, error) { return 1, buf.WriteByte(s.Value) }
func (s *SystemStatus) Validate() error                       { return nil }

// StationConfigurationStatus implements I019/551: two-octet per-station
// configuration/availability bitmask list header.
type StationConfigurationStatus struct {
	Value uint16
}

func (s *StationConfigurationStatus) Decode(buf *bytes.Buffer) (int, error) {
	data := make([]byte, 2)
	n, err := buf.Read(data)
	if err != nil || n != 2 {
		return n, fmt.Errorf("reading station configuration status: %w", err)
	}
	s.Value = uint16(data[0])<<8 | uint16(data[1])
	return 2, nil
}

func (s *StationConfigurationStatus) Encode(buf *bytes.Buffer) (int, error) {
	return buf.Write([]byte{byte(s.Value >> 8), byte(s.Value)})
}
func (s *StationConfigurationStatus) Validate() error { return nil }
