// cat/cat065/dataitems/v13/time_of_message.go
package v13

import (
	"bytes"
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
)

// TimeOfMessage represents I065/030 - Time of Message, the absolute
// time stamp of the message expressed as elapsed time since last
// midnight UTC. 3 bytes, LSB = 1/128 second.
type TimeOfMessage struct {
	Time float64
}

func (t *TimeOfMessage) Decode(buf *bytes.Buffer) (int, error) {
	if buf.Len() < 3 {
		return 0, fmt.Errorf("%w: need 3 bytes for time of message, have %d", asterix.ErrBufferTooShort, buf.Len())
	}
	data := buf.Next(3)
	raw := uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])
	t.Time = float64(raw) / 128.0
	return 3, nil
}

func (t *TimeOfMessage) Encode(buf *bytes.Buffer) (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	raw := uint32(t.Time * 128.0)
	data := []byte{byte(raw >> 16), byte(raw >> 8), byte(raw)}
	n, err := buf.Write(data)
	if err != nil {
		return 0, fmt.Errorf("writing time of message: %w", err)
	}
	return n, nil
}

// FillupTOD records this message's time as the fill-up baseline for
// ctx's category, the same way every other category's full-width
// time-of-day item does.
func (t *TimeOfMessage) FillupTOD(ctx *asterix.DecoderContext) error {
	ctx.ObserveTOD(uint32(t.Time * 128.0))
	return nil
}

func (t *TimeOfMessage) Validate() error {
	if t.Time < 0 || t.Time >= 86400 {
		return fmt.Errorf("time of message must be 0-86400 seconds, got %.3f", t.Time)
	}
	return nil
}

func (t *TimeOfMessage) String() string {
	hours := int(t.Time / 3600)
	minutes := int((t.Time - float64(hours*3600)) / 60)
	seconds := t.Time - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, seconds)
}
