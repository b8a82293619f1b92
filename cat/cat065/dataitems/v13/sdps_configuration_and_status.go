// cat/cat065/dataitems/v13/sdps_configuration_and_status.go
package v13

import (
	"bytes"
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
)

// NOGOStatus is the SDPS operational status reported in I065/040.
type NOGOStatus uint8

const (
	NOGOOperational NOGOStatus = iota
	NOGODegraded
	NOGONotConnected
	NOGOUnknown
)

func (n NOGOStatus) String() string {
	switch n {
	case NOGOOperational:
		return "operational"
	case NOGODegraded:
		return "degraded"
	case NOGONotConnected:
		return "not currently connected"
	default:
		return "unknown"
	}
}

// SdpsConfigurationAndStatus represents I065/040 - SDPS Configuration
// and Status: a single octet carrying the SDPS's own operational
// status alongside overload and time-source-valid flags.
type SdpsConfigurationAndStatus struct {
	NOGO NOGOStatus // bits 8/7
	OVL  bool       // bit 6: overload
	TSV  bool       // bit 5: time source invalid
	PSS  uint8      // bits 4/3: SDPS configuration in use (0=single,1=redundant-1,2=redundant-2,3=unknown)
}

func (s *SdpsConfigurationAndStatus) Decode(buf *bytes.Buffer) (int, error) {
	if buf.Len() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte for SDPS configuration and status, have %d", asterix.ErrBufferTooShort, buf.Len())
	}
	b := buf.Next(1)[0]
	s.NOGO = NOGOStatus((b >> 6) & 0x03)
	s.OVL = (b>>5)&0x01 != 0
	s.TSV = (b>>4)&0x01 != 0
	s.PSS = (b >> 2) & 0x03
	return 1, nil
}

func (s *SdpsConfigurationAndStatus) Encode(buf *bytes.Buffer) (int, error) {
	var b byte
	b |= byte(s.NOGO) << 6
	if s.OVL {
		b |= 1 << 5
	}
	if s.TSV {
		b |= 1 << 4
	}
	b |= (s.PSS & 0x03) << 2
	return buf.Write([]byte{b})
}

func (s *SdpsConfigurationAndStatus) Validate() error {
	return nil
}

func (s *SdpsConfigurationAndStatus) String() string {
	return fmt.Sprintf("nogo=%s ovl=%t tsv=%t pss=%d", s.NOGO, s.OVL, s.TSV, s.PSS)
}
