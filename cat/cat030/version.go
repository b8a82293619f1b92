// cat/cat030/version.go
//
// Category 030 (ARTAS System Track Messages) is carried as a UAP skeleton
// only: the common header items decode, but the bulk of ARTAS-specific
// track-state subfields are not modeled in this pass (documented in
// DESIGN.md's "bounded gap" entry rather than silently dropped).
package cat030

import (
	"bytes"
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
	common "github.com/davidkohl/gobelix/cat/common/dataitems"
)

const Version10 = "1.0"

type uap10 struct {
	*asterix.BaseUAP
}

var fields = []asterix.DataField{
	{FRN: 1, DataItem: "I030/010", Description: "Data Source Identifier", Type: asterix.Fixed, Length: 2, Mandatory: true},
	{FRN: 2, DataItem: "I030/000", Description: "Message Type", Type: asterix.Fixed, Length: 1, Mandatory: true},
	{FRN: 3, DataItem: "I030/015", Description: "User Number", Type: asterix.Fixed, Length: 2},
}

func (u *uap10) CreateDataItem(id string) (asterix.DataItem, error) {
	switch id {
	case "I030/010":
		return &common.DataSourceIdentifier{}, nil
	case "I030/000":
		return &skeletonItem{width: 1}, nil
	case "I030/015":
		return &skeletonItem{width: 2}, nil
	default:
		return nil, fmt.Errorf("%w: %s (Cat030 beyond the header is a documented skeleton, not a decode bug)",
			asterix.ErrUnknownDataItem, id)
	}
}

// skeletonItem consumes and round-trips an opaque fixed-width blob for
// items this pass does not model individually.
type skeletonItem struct {
	width int
	raw   []byte
}

func (s *skeletonItem) Decode(buf *bytes.Buffer) (int, error) {
	w := s.width
	if w == 0 {
		w = 1
	}
	data := make([]byte, w)
	n, err := buf.Read(data)
	if err != nil || n != w {
		return n, fmt.Errorf("reading skeleton item: want %d bytes, got %d: %w", w, n, err)
	}
	s.raw = data
	return n, nil
}

func (s *skeletonItem) Encode(buf *bytes.Buffer) (int, error) { return buf.Write(s.raw) }
func (s *skeletonItem) Validate() error                       { return nil }

// NewUAP returns the skeleton UAP for the specified version of CAT030.
func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version10:
		base, err := asterix.NewBaseUAP(asterix.Cat030, version, fields)
		if err != nil {
			return nil, err
		}
		return &uap10{BaseUAP: base}, nil
	default:
		return nil, fmt.Errorf("unsupported CAT030 version: %s", version)
	}
}

func LatestVersion() string       { return Version10 }
func AvailableVersions() []string { return []string{Version10} }
