// cat/cat020/dataitems/v15/target_report_descriptor.go
package v15

import (
	"bytes"
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
)

// TargetReportDescriptor implements I020/020 - Target Report Descriptor.
// SPI and Simulated are distinct bits of the first extension octet (0x40
// and 0x04); they stay separate tri-state fields here rather than being
// folded onto one flag the way an earlier single-bit reading of this item
// did. Both report Undefined when the extension octet itself is absent.
type TargetReportDescriptor struct {
	SSR  bool
	MS   bool
	HF   bool
	VDL4 bool
	UAT  bool
	DME  bool

	ExtentPresent bool
	RAB           asterix.Tres
	SPI           asterix.Tres
	CHN           asterix.Tres
	GBS           asterix.Tres
	CRT           asterix.Tres
	Simulated     asterix.Tres
	TST           asterix.Tres
}

func NewTargetReportDescriptor() *TargetReportDescriptor { return &TargetReportDescriptor{} }

func (t *TargetReportDescriptor) Decode(buf *bytes.Buffer) (int, error) {
	if buf.Len() < 1 {
		return 0, fmt.Errorf("%w: I020/020 first octet", asterix.ErrBufferTooShort)
	}
	first := buf.Next(1)[0]
	read := 1

	t.SSR = first&0x80 != 0
	t.MS = first&0x40 != 0
	t.HF = first&0x20 != 0
	t.VDL4 = first&0x10 != 0
	t.UAT = first&0x08 != 0
	t.DME = first&0x04 != 0

	if first&0x01 != 0 {
		if buf.Len() < 1 {
			return read, fmt.Errorf("%w: I020/020 extension octet", asterix.ErrBufferTooShort)
		}
		ext := buf.Next(1)[0]
		read++
		t.ExtentPresent = true
		t.RAB = asterix.TresFromBit(ext&0x80 != 0)
		t.SPI = asterix.TresFromBit(ext&0x40 != 0)
		t.CHN = asterix.TresFromBit(ext&0x20 != 0)
		t.GBS = asterix.TresFromBit(ext&0x10 != 0)
		t.CRT = asterix.TresFromBit(ext&0x08 != 0)
		t.Simulated = asterix.TresFromBit(ext&0x04 != 0)
		t.TST = asterix.TresFromBit(ext&0x02 != 0)
	}

	return read, nil
}

func (t *TargetReportDescriptor) Encode(buf *bytes.Buffer) (int, error) {
	var first byte
	if t.SSR {
		first |= 0x80
	}
	if t.MS {
		first |= 0x40
	}
	if t.HF {
		first |= 0x20
	}
	if t.VDL4 {
		first |= 0x10
	}
	if t.UAT {
		first |= 0x08
	}
	if t.DME {
		first |= 0x04
	}
	if t.ExtentPresent {
		first |= 0x01
	}
	if err := buf.WriteByte(first); err != nil {
		return 0, fmt.Errorf("writing I020/020 first octet: %w", err)
	}
	written := 1

	if t.ExtentPresent {
		var ext byte
		if v, _ := t.RAB.Bool(); v {
			ext |= 0x80
		}
		if v, _ := t.SPI.Bool(); v {
			ext |= 0x40
		}
		if v, _ := t.CHN.Bool(); v {
			ext |= 0x20
		}
		if v, _ := t.GBS.Bool(); v {
			ext |= 0x10
		}
		if v, _ := t.CRT.Bool(); v {
			ext |= 0x08
		}
		if v, _ := t.Simulated.Bool(); v {
			ext |= 0x04
		}
		if v, _ := t.TST.Bool(); v {
			ext |= 0x02
		}
		if err := buf.WriteByte(ext); err != nil {
			return written, fmt.Errorf("writing I020/020 extension octet: %w", err)
		}
		written++
	}

	return written, nil
}

func (t *TargetReportDescriptor) Validate() error {
	if !t.SSR && !t.MS && !t.HF && !t.VDL4 && !t.UAT && !t.DME {
		return fmt.Errorf("%w: I020/020 at least one multilateration type must be set", asterix.ErrInvalidMessage)
	}
	return nil
}

func (t *TargetReportDescriptor) String() string {
	s := "TYP:"
	if t.SSR {
		s += " SSR"
	}
	if t.MS {
		s += " MS"
	}
	if t.HF {
		s += " HF"
	}
	if t.VDL4 {
		s += " VDL4"
	}
	if t.UAT {
		s += " UAT"
	}
	if t.DME {
		s += " DME"
	}
	if t.ExtentPresent {
		s += fmt.Sprintf(" SPI=%s SIM=%s", t.SPI, t.Simulated)
	}
	return s
}
