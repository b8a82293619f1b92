// cat/cat011/dataitems/v17/items.go
package v17

import (
	"bytes"
	"fmt"
)

// CalculatedPosition implements I011/042: Calculated Position in Cartesian
// Co-ordinates. Its on-wire length is version-dependent (spec.md §4.5.4):
// editions other than "0.14Sensis" pack two 16-bit coordinates (LSB =
// 0.5 m), while "0.14Sensis" packs two 32-bit coordinates (LSB =
// 0.01 m). WideCoordinates must be set by the UAP that constructs this
// item before Decode/Encode run, since the descriptor table itself is
// what changes per version (spec.md's "rebuild on set_version" rule).
type CalculatedPosition struct {
	WideCoordinates bool
	XMetres         float64
	YMetres         float64
}

func (c *CalculatedPosition) Decode(buf *bytes.Buffer) (int, error) {
	if c.WideCoordinates {
		data := make([]byte, 8)
		n, err := buf.Read(data)
		if err != nil || n != 8 {
			return n, fmt.Errorf("reading wide calculated position: need 8 bytes, got %d: %w", n, err)
		}
		x := int32(data[0])<<24 | int32(data[1])<<16 | int32(data[2])<<8 | int32(data[3])
		y := int32(data[4])<<24 | int32(data[5])<<16 | int32(data[6])<<8 | int32(data[7])
		c.XMetres = float64(x) * 0.01
		c.YMetres = float64(y) * 0.01
		return 8, nil
	}

	data := make([]byte, 4)
	n, err := buf.Read(data)
	if err != nil || n != 4 {
		return n, fmt.Errorf("reading calculated position: need 4 bytes, got %d: %w", n, err)
	}
	x := int16(uint16(data[0])<<8 | uint16(data[1]))
	y := int16(uint16(data[2])<<8 | uint16(data[3]))
	c.XMetres = float64(x) * 0.5
	c.YMetres = float64(y) * 0.5
	return 4, nil
}

func (c *CalculatedPosition) Encode(buf *bytes.Buffer) (int, error) {
	if c.WideCoordinates {
		x := int32(c.XMetres / 0.01)
		y := int32(c.YMetres / 0.01)
		data := []byte{
			byte(x >> 24), byte(x >> 16), byte(x >> 8), byte(x),
			byte(y >> 24), byte(y >> 16), byte(y >> 8), byte(y),
		}
		return buf.Write(data)
	}

	x := int16(c.XMetres / 0.5)
	y := int16(c.YMetres / 0.5)
	data := []byte{byte(x >> 8), byte(x), byte(y >> 8), byte(y)}
	return buf.Write(data)
}

func (c *CalculatedPosition) Validate() error { return nil }

// TrackNumber implements I011/161: a two-octet system track number.
type TrackNumber struct {
	Value uint16
}

func (t *TrackNumber) Decode(buf *bytes.Buffer) (int, error) {
	data := make([]byte, 2)
	n, err := buf.Read(data)
	if err != nil || n != 2 {
		return n, fmt.Errorf("reading track number: %w", err)
	}
	t.Value = uint16(data[0]&0x0F)<<8 | uint16(data[1])
	return 2, nil
}

func (t *TrackNumber) Encode(buf *bytes.Buffer) (int, error) {
	data := []byte{byte(t.Value >> 8 & 0x0F), byte(t.Value)}
	return buf.Write(data)
}

func (t *TrackNumber) Validate() error { return nil }

// Mode3ACode implements I011/060: Mode-3/A code in octal representation,
// reusing the same packed-octal convention as Cat048.
type Mode3ACode struct {
	V    bool
	G    bool
	Code uint16
}

func (m *Mode3ACode) Decode(buf *bytes.Buffer) (int, error) {
	data := make([]byte, 2)
	n, err := buf.Read(data)
	if err != nil || n != 2 {
		return n, fmt.Errorf("reading Mode-3/A code: %w", err)
	}
	m.V = data[0]&0x80 != 0
	m.G = data[0]&0x40 != 0
	a := (data[0] & 0x0E) >> 1
	b := ((data[0] & 0x01) << 2) | ((data[1] & 0xC0) >> 6)
	c := (data[1] & 0x38) >> 3
	d := data[1] & 0x07
	m.Code = uint16(a)*1000 + uint16(b)*100 + uint16(c)*10 + uint16(d)
	return 2, nil
}

func (m *Mode3ACode) Encode(buf *bytes.Buffer) (int, error) {
	a := byte(m.Code/1000) % 10
	b := byte(m.Code/100) % 10
	c := byte(m.Code/10) % 10
	d := byte(m.Code) % 10
	b0 := (a << 1) | (b >> 2)
	b1 := (b&0x03)<<6 | c<<3 | d
	if m.V {
		b0 |= 0x80
	}
	if m.G {
		b0 |= 0x40
	}
	return buf.Write([]byte{b0, b1})
}

func (m *Mode3ACode) Validate() error { return nil }

// TargetAddress implements I011/380-style ICAO 24-bit address subset used
// directly (not compound) in this category's simplified layout.
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
