// cat/cat023/dataitems/v12/items.go
package v12

import (
	"bytes"
	"fmt"
)

// ServiceType implements I023/000: report type (1 = periodic, 2 = event-driven).
type ServiceType struct {
	Value uint8
}

func (s *ServiceType) Decode(buf *bytes.Buffer) (int, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("reading service type: %w", err)
	}
	s.Value = b
	return 1, nil
}
func (s *ServiceType) Encode(buf *bytes.Buffer) (int, error) { return 1, buf.WriteByte(s.Value) }
func (s *ServiceType) Validate() error                       { return nil }

// GroundStationStatus implements I023/100: a one-octet ground station
// operational status bitmask (NOGO, ODP, OVL, etc).
type GroundStationStatus struct {
	Value uint8
}

func (g *GroundStationStatus) Decode(buf *bytes.Buffer) (int, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("reading ground station status: %w", err)
	}
	g.Value = b
	return 1, nil
}
func (g *GroundStationStatus) Encode(buf *bytes.Buffer) (int, error) { return 1, buf.WriteByte(g.Value) }
func (g *GroundStationStatus) Validate() error                       { return nil }

// ServiceConfiguration implements I023/110: two-octet service
// configuration bitmask.
type ServiceConfiguration struct {
	Value uint16
}

func (s *ServiceConfiguration) Decode(buf *bytes.Buffer) (int, error) {
	data := make([]byte, 2)
	n, err := buf.Read(data)
	if err != nil || n != 2 {
		return n, fmt.Errorf("reading service configuration: %w", err)
	}
	s.Value = uint16(data[0])<<8 | uint16(data[1])
	return 2, nil
}
func (s *ServiceConfiguration) Encode(buf *bytes.Buffer) (int, error) {
	return buf.Write([]byte{byte(s.Value >> 8), byte(s.Value)})
}
func (s *ServiceConfiguration) Validate() error { return nil }
