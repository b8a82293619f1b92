// cat/cat008/dataitems/v11/items.go
package v11

import (
	"bytes"
	"fmt"
)

// MessageType implements I008/000: the single-octet message type
// (1 = Polar vector, 2 = Cartesian vector, 3 = Contour record, 4 = Contour
// request/cancellation).
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
	if err := buf.WriteByte(m.Value); err != nil {
		return 0, fmt.Errorf("writing message type: %w", err)
	}
	return 1, nil
}

func (m *MessageType) Validate() error { return nil }

// VectorQualifier implements I008/020: a variable-length FX-chained
// qualifier describing the vector's nature (forecast/observed, focus
// type).
type VectorQualifier struct {
	Octets []byte
}

func (v *VectorQualifier) Decode(buf *bytes.Buffer) (int, error) {
	var octets []byte
	for {
		b, err := buf.ReadByte()
		if err != nil {
			return len(octets), fmt.Errorf("reading vector qualifier: %w", err)
		}
		octets = append(octets, b)
		if b&0x01 == 0 {
			break
		}
	}
	v.Octets = octets
	return len(octets), nil
}

func (v *VectorQualifier) Encode(buf *bytes.Buffer) (int, error) {
	for i, b := range v.Octets {
		if i < len(v.Octets)-1 {
			b |= 0x01
		} else {
			b &^= 0x01
		}
		if err := buf.WriteByte(b); err != nil {
			return i, fmt.Errorf("writing vector qualifier: %w", err)
		}
	}
	return len(v.Octets), nil
}

func (v *VectorQualifier) Validate() error { return nil }

// ContourIdentifier implements I008/036: a one-octet contour sequence
// identifier.
type ContourIdentifier struct {
	Value uint8
}

func (c *ContourIdentifier) Decode(buf *bytes.Buffer) (int, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("reading contour identifier: %w", err)
	}
	c.Value = b
	return 1, nil
}

func (c *ContourIdentifier) Encode(buf *bytes.Buffer) (int, error) {
	if err := buf.WriteByte(c.Value); err != nil {
		return 0, err
	}
	return 1, nil
}

func (c *ContourIdentifier) Validate() error { return nil }

// ContourPoint is one polar point (rho, theta) within I008/034's
// repetitive contour-point list.
type ContourPoint struct {
	RhoNM     float64 // nautical miles
	ThetaDeg  float64 // degrees
}

// ContourSequence implements I008/034: REP-prefixed list of 4-byte
// (2+2) polar contour points.
type ContourSequence struct {
	Points []ContourPoint
}

func (c *ContourSequence) Decode(buf *bytes.Buffer) (int, error) {
	rep, err := buf.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("reading contour sequence REP: %w", err)
	}
	total := 1
	c.Points = make([]ContourPoint, 0, rep)
	for i := 0; i < int(rep); i++ {
		data := make([]byte, 4)
		n, err := buf.Read(data)
		total += n
		if err != nil || n != 4 {
			return total, fmt.Errorf("reading contour point %d: %w", i, err)
		}
		rho := int16(uint16(data[0])<<8 | uint16(data[1]))
		theta := int16(uint16(data[2])<<8 | uint16(data[3]))
		c.Points = append(c.Points, ContourPoint{
			RhoNM:    float64(rho) / 256.0,
			ThetaDeg: float64(theta) * 360.0 / 65536.0,
		})
	}
	return total, nil
}

func (c *ContourSequence) Encode(buf *bytes.Buffer) (int, error) {
	if len(c.Points) > 255 {
		return 0, fmt.Errorf("contour sequence exceeds 255 points: %d", len(c.Points))
	}
	if err := buf.WriteByte(byte(len(c.Points))); err != nil {
		return 0, err
	}
	n := 1
	for _, p := range c.Points {
		rho := int16(p.RhoNM * 256.0)
		theta := int16(p.ThetaDeg * 65536.0 / 360.0)
		if err := buf.WriteByte(byte(rho >> 8)); err != nil {
			return n, err
		}
		if err := buf.WriteByte(byte(rho)); err != nil {
			return n, err
		}
		if err := buf.WriteByte(byte(theta >> 8)); err != nil {
			return n, err
		}
		if err := buf.WriteByte(byte(theta)); err != nil {
			return n, err
		}
		n += 4
	}
	return n, nil
}

func (c *ContourSequence) Validate() error { return nil }

// CartesianContour implements I008/040: fixed 1-octet Cartesian contour
// qualifier.
type CartesianContour struct {
	Value uint8
}

func (c *CartesianContour) Decode(buf *bytes.Buffer) (int, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return 0, err
	}
	c.Value = b
	return 1, nil
}
func (c *CartesianContour) Encode(buf *bytes.Buffer) (int, error) {
	return 1, buf.WriteByte(c.Value)
}
func (c *CartesianContour) Validate() error { return nil }

// TotalSpaceCovered implements I008/038: two-octet total count of
// contour points transmitted in this record.
type TotalSpaceCovered struct {
	Value uint16
}

func (t *TotalSpaceCovered) Decode(buf *bytes.Buffer) (int, error) {
	data := make([]byte, 2)
	n, err := buf.Read(data)
	if err != nil || n != 2 {
		return n, fmt.Errorf("reading total space covered: %w", err)
	}
	t.Value = uint16(data[0])<<8 | uint16(data[1])
	return 2, nil
}
func (t *TotalSpaceCovered) Encode(buf *bytes.Buffer) (int, error) {
	if err := buf.WriteByte(byte(t.Value >> 8)); err != nil {
		return 0, err
	}
	return 2, buf.WriteByte(byte(t.Value))
}
func (t *TotalSpaceCovered) Validate() error { return nil }

// ProcessingStatus implements I008/100: an Immediate item whose first
// octet is its own total length (including itself), carrying opaque
// processing-status flags.
type ProcessingStatus struct {
	Raw []byte
}

func (p *ProcessingStatus) Decode(buf *bytes.Buffer) (int, error) {
	lenByte, err := buf.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("reading processing status length: %w", err)
	}
	if lenByte == 0 {
		return 1, fmt.Errorf("processing status length must be >= 1")
	}
	rest := int(lenByte) - 1
	data := make([]byte, rest)
	n, err := buf.Read(data)
	if err != nil || n != rest {
		return 1 + n, fmt.Errorf("reading processing status body: %w", err)
	}
	p.Raw = append([]byte{lenByte}, data...)
	return 1 + n, nil
}

func (p *ProcessingStatus) Encode(buf *bytes.Buffer) (int, error) {
	n, err := buf.Write(p.Raw)
	if err != nil {
		return n, err
	}
	return n, nil
}

func (p *ProcessingStatus) Validate() error {
	if len(p.Raw) == 0 {
		return fmt.Errorf("processing status has no length octet")
	}
	return nil
}

// WeatherClutterData implements I008/110: fixed 2-octet weather/ground
// clutter radar data.
type WeatherClutterData struct {
	Value uint16
}

func (w *WeatherClutterData) Decode(buf *bytes.Buffer) (int, error) {
	data := make([]byte, 2)
	n, err := buf.Read(data)
	if err != nil || n != 2 {
		return n, fmt.Errorf("reading weather/clutter data: %w", err)
	}
	w.Value = uint16(data[0])<<8 | uint16(data[1])
	return 2, nil
}
func (w *WeatherClutterData) Encode(buf *bytes.Buffer) (int, error) {
	if err := buf.WriteByte(byte(w.Value >> 8)); err != nil {
		return 0, err
	}
	return 2, buf.WriteByte(byte(w.Value))
}
func (w *WeatherClutterData) Validate() error { return nil }

// CharacteristicCategory implements I008/120: fixed 1-octet category of
// the derived weather feature.
type CharacteristicCategory struct {
	Value uint8
}

func (c *CharacteristicCategory) Decode(buf *bytes.Buffer) (int, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return 0, err
	}
	c.Value = b
	return 1, nil
}
func (c *CharacteristicCategory) Encode(buf *bytes.Buffer) (int, error) {
	return 1, buf.WriteByte(c.Value)
}
func (c *CharacteristicCategory) Validate() error { return nil }

// SpecialPurposeField implements the SPF terminal slot: an Immediate item
// whose first octet is its own total length.
type SpecialPurposeField struct {
	Raw []byte
}

func (s *SpecialPurposeField) Decode(buf *bytes.Buffer) (int, error) {
	lenByte, err := buf.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("reading SPF length: %w", err)
	}
	rest := int(lenByte) - 1
	if rest < 0 {
		return 1, fmt.Errorf("SPF length must be >= 1")
	}
	data := make([]byte, rest)
	n, err := buf.Read(data)
	if err != nil || n != rest {
		return 1 + n, fmt.Errorf("reading SPF body: %w", err)
	}
	s.Raw = append([]byte{lenByte}, data...)
	return 1 + n, nil
}

func (s *SpecialPurposeField) Encode(buf *bytes.Buffer) (int, error) {
	return buf.Write(s.Raw)
}

func (s *SpecialPurposeField) Validate() error { return nil }

// ReservedExpansionField implements the REF terminal slot: an Immediate
// item whose first octet is its own total length.
type ReservedExpansionField struct {
	Raw []byte
}

func (r *ReservedExpansionField) Decode(buf *bytes.Buffer) (int, error) {
	lenByte, err := buf.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("reading RE length: %w", err)
	}
	rest := int(lenByte) - 1
	if rest < 0 {
		return 1, fmt.Errorf("RE length must be >= 1")
	}
	data := make([]byte, rest)
	n, err := buf.Read(data)
	if err != nil || n != rest {
		return 1 + n, fmt.Errorf("reading RE body: %w", err)
	}
	r.Raw = append([]byte{lenByte}, data...)
	return 1 + n, nil
}

func (r *ReservedExpansionField) Encode(buf *bytes.Buffer) (int, error) {
	return buf.Write(r.Raw)
}

func (r *ReservedExpansionField) Validate() error { return nil }
