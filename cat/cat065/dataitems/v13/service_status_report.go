// cat/cat065/dataitems/v13/service_status_report.go
package v13

import (
	"bytes"
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
)

var reportText = [...]string{
	1:  "service degradation",
	2:  "service degradation ended",
	3:  "main radar out of service",
	4:  "service interrupted by the operator",
	5:  "service interrupted due to contingency",
	6:  "ready for service restart after contingency",
	7:  "service ended by the operator",
	8:  "failure of user main radar",
	9:  "service restarted by the operator",
	10: "main radar becoming operational",
	11: "main radar becoming degraded",
	12: "service continuity interrupted due to disconnection with adjacent unit",
	13: "service continuity restarted",
	14: "service synchronised on backup radar",
	15: "service synchronised on main radar",
	16: "main and backup radar, if any, failed",
}

// ServiceStatusReport represents I065/050 - Service Status Report, a
// single-octet enumeration of the reason for a service status message.
type ServiceStatusReport struct {
	Report uint8
}

func (s *ServiceStatusReport) Decode(buf *bytes.Buffer) (int, error) {
	if buf.Len() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte for service status report, have %d", asterix.ErrBufferTooShort, buf.Len())
	}
	data := buf.Next(1)
	s.Report = data[0]
	return 1, nil
}

func (s *ServiceStatusReport) Encode(buf *bytes.Buffer) (int, error) {
	buf.WriteByte(s.Report)
	return 1, nil
}

func (s *ServiceStatusReport) Validate() error {
	return nil
}

func (s *ServiceStatusReport) String() string {
	if int(s.Report) < len(reportText) && reportText[s.Report] != "" {
		return reportText[s.Report]
	}
	return fmt.Sprintf("unknown (%d)", s.Report)
}
