// cat/cat065/dataitems/v13/batch_number.go
package v13

import (
	"bytes"
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
)

// BatchNumber represents I065/020 - Batch Number, incremented for every
// batch of Cat065 records a given SDPS sends.
type BatchNumber struct {
	Value uint8
}

func (b *BatchNumber) Decode(buf *bytes.Buffer) (int, error) {
	if buf.Len() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte for batch number, have %d", asterix.ErrBufferTooShort, buf.Len())
	}
	data := buf.Next(1)
	b.Value = data[0]
	return 1, nil
}

func (b *BatchNumber) Encode(buf *bytes.Buffer) (int, error) {
	buf.WriteByte(b.Value)
	return 1, nil
}

func (b *BatchNumber) Validate() error {
	return nil
}

func (b *BatchNumber) String() string {
	return fmt.Sprintf("%d", b.Value)
}
