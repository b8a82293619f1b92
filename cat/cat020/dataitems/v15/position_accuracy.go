// cat/cat020/dataitems/v15/position_accuracy.go
package v15

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/davidkohl/gobelix/asterix"
)

// PositionAccuracy implements I020/500 - Position Accuracy for editions 1.2
// and 1.5. The primary subfield declares up to four secondaries; their
// combined length follows 1 + 6*sf1 + 6*sf2 + 2*sf3 + 6*sf4. The primary is
// a single octet: setting its FX bit is invalid, since this item defines no
// further primary extension.
type PositionAccuracy struct {
	DOPPresent bool
	DOPx       float64
	DOPy       float64
	DOPxy      float64

	SDPPresent bool
	SDPx       float64
	SDPy       float64
	SDPxy      float64

	SDHPresent bool
	SDH        float64 // Std dev of geometric height, LSB = 0.5m

	SDWPresent bool
	SDWLat     float64 // Std dev of WGS-84 latitude, LSB = 180/2^25 deg
	SDWLon     float64 // Std dev of WGS-84 longitude, LSB = 180/2^25 deg
	SDWLatLon  float64 // Correlation coefficient, LSB = 0.01
}

func NewPositionAccuracy() *PositionAccuracy { return &PositionAccuracy{} }

func (p *PositionAccuracy) Decode(buf *bytes.Buffer) (int, error) {
	if buf.Len() < 1 {
		return 0, fmt.Errorf("%w: I020/500 primary subfield", asterix.ErrBufferTooShort)
	}
	primary := buf.Next(1)[0]
	if primary&0x01 != 0 {
		return 1, fmt.Errorf("%w: I020/500 primary subfield sets FX, but this item has no extension",
			asterix.ErrInvalidMessage)
	}

	p.DOPPresent = primary&0x80 != 0
	p.SDPPresent = primary&0x40 != 0
	p.SDHPresent = primary&0x20 != 0
	p.SDWPresent = primary&0x10 != 0

	read := 1

	if p.DOPPresent {
		if buf.Len() < 6 {
			return read, fmt.Errorf("%w: I020/500 DOP subfield", asterix.ErrBufferTooShort)
		}
		d := buf.Next(6)
		read += 6
		p.DOPx = float64(binary.BigEndian.Uint16(d[0:2])) * 0.25
		p.DOPy = float64(binary.BigEndian.Uint16(d[2:4])) * 0.25
		p.DOPxy = float64(binary.BigEndian.Uint16(d[4:6])) * 0.25
	}

	if p.SDPPresent {
		if buf.Len() < 6 {
			return read, fmt.Errorf("%w: I020/500 SDP subfield", asterix.ErrBufferTooShort)
		}
		d := buf.Next(6)
		read += 6
		p.SDPx = float64(binary.BigEndian.Uint16(d[0:2])) * 0.25
		p.SDPy = float64(binary.BigEndian.Uint16(d[2:4])) * 0.25
		p.SDPxy = float64(int16(binary.BigEndian.Uint16(d[4:6]))) * 0.25
	}

	if p.SDHPresent {
		if buf.Len() < 2 {
			return read, fmt.Errorf("%w: I020/500 SDH subfield", asterix.ErrBufferTooShort)
		}
		d := buf.Next(2)
		read += 2
		p.SDH = float64(binary.BigEndian.Uint16(d)) * 0.5
	}

	if p.SDWPresent {
		if buf.Len() < 6 {
			return read, fmt.Errorf("%w: I020/500 SDW subfield", asterix.ErrBufferTooShort)
		}
		d := buf.Next(6)
		read += 6
		p.SDWLat = float64(binary.BigEndian.Uint16(d[0:2])) * math.Pow(2, -25) * 180.0
		p.SDWLon = float64(binary.BigEndian.Uint16(d[2:4])) * math.Pow(2, -25) * 180.0
		p.SDWLatLon = float64(int16(binary.BigEndian.Uint16(d[4:6]))) * 0.01
	}

	return read, nil
}

func (p *PositionAccuracy) Encode(buf *bytes.Buffer) (int, error) {
	var primary byte
	if p.DOPPresent {
		primary |= 0x80
	}
	if p.SDPPresent {
		primary |= 0x40
	}
	if p.SDHPresent {
		primary |= 0x20
	}
	if p.SDWPresent {
		primary |= 0x10
	}
	if err := buf.WriteByte(primary); err != nil {
		return 0, fmt.Errorf("writing I020/500 primary: %w", err)
	}
	written := 1

	if p.DOPPresent {
		if err := binary.Write(buf, binary.BigEndian, uint16(p.DOPx/0.25)); err != nil {
			return written, err
		}
		if err := binary.Write(buf, binary.BigEndian, uint16(p.DOPy/0.25)); err != nil {
			return written, err
		}
		if err := binary.Write(buf, binary.BigEndian, uint16(p.DOPxy/0.25)); err != nil {
			return written, err
		}
		written += 6
	}
	if p.SDPPresent {
		if err := binary.Write(buf, binary.BigEndian, uint16(p.SDPx/0.25)); err != nil {
			return written, err
		}
		if err := binary.Write(buf, binary.BigEndian, uint16(p.SDPy/0.25)); err != nil {
			return written, err
		}
		if err := binary.Write(buf, binary.BigEndian, int16(p.SDPxy/0.25)); err != nil {
			return written, err
		}
		written += 6
	}
	if p.SDHPresent {
		if err := binary.Write(buf, binary.BigEndian, uint16(p.SDH/0.5)); err != nil {
			return written, err
		}
		written += 2
	}
	if p.SDWPresent {
		if err := binary.Write(buf, binary.BigEndian, uint16(p.SDWLat/(math.Pow(2, -25)*180.0))); err != nil {
			return written, err
		}
		if err := binary.Write(buf, binary.BigEndian, uint16(p.SDWLon/(math.Pow(2, -25)*180.0))); err != nil {
			return written, err
		}
		if err := binary.Write(buf, binary.BigEndian, int16(p.SDWLatLon/0.01)); err != nil {
			return written, err
		}
		written += 6
	}

	return written, nil
}

func (p *PositionAccuracy) Validate() error {
	if p.SDPPresent && math.Abs(p.SDPxy) > 1.0 {
		return fmt.Errorf("%w: I020/500 SDPxy correlation coefficient out of [-1,1]: %.2f",
			asterix.ErrInvalidMessage, p.SDPxy)
	}
	if p.SDWPresent && math.Abs(p.SDWLatLon) > 1.0 {
		return fmt.Errorf("%w: I020/500 SDWLatLon correlation coefficient out of [-1,1]: %.2f",
			asterix.ErrInvalidMessage, p.SDWLatLon)
	}
	return nil
}

func (p *PositionAccuracy) String() string {
	parts := []string{}
	if p.DOPPresent {
		parts = append(parts, fmt.Sprintf("DOP(x=%.2f,y=%.2f,xy=%.2f)", p.DOPx, p.DOPy, p.DOPxy))
	}
	if p.SDPPresent {
		parts = append(parts, fmt.Sprintf("SDP(x=%.2fm,y=%.2fm,xy=%.2f)", p.SDPx, p.SDPy, p.SDPxy))
	}
	if p.SDHPresent {
		parts = append(parts, fmt.Sprintf("SDH(%.2fm)", p.SDH))
	}
	if p.SDWPresent {
		parts = append(parts, fmt.Sprintf("SDW(lat=%.7f,lon=%.7f,corr=%.2f)", p.SDWLat, p.SDWLon, p.SDWLatLon))
	}
	if len(parts) == 0 {
		return "Position Accuracy: (no subfields)"
	}
	return fmt.Sprintf("Position Accuracy: %v", parts)
}
