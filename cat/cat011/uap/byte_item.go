package uap

import (
	"bytes"
	"fmt"
)

// byteItem is a generic one-octet value used for Cat011 fields whose
// internal structure this pass does not decode further (message type,
// service identification) — still consumed and round-tripped faithfully.
type byteItem struct {
	Value uint8
}

func (b *byteItem) Decode(buf *bytes.Buffer) (int, error) {
	v, err := buf.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("reading byte item: %w", err)
	}
	b.Value = v
	return 1, nil
}

func (b *byteItem) Encode(buf *bytes.Buffer) (int, error) {
	if err := buf.WriteByte(b.Value); err != nil {
		return 0, err
	}
	return 1, nil
}

func (b *byteItem) Validate() error { return nil }
