// cat/cat032/version.go
//
// Category 032 (ARTAS Consolidated Track Messages) is carried as a UAP
// skeleton only, for the same documented-gap reason as Cat030: see
// DESIGN.md.
package cat032

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
	{FRN: 1, DataItem: "I032/010", Description: "Data Source Identifier", Type: asterix.Fixed, Length: 2, Mandatory: true},
	{FRN: 2, DataItem: "I032/015", Description: "User Number", Type: asterix.Fixed, Length: 2},
	{FRN: 3, DataItem: "I032/018", Description: "Message Type", Type: asterix.Fixed, Length: 1, Mandatory: true},
}

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

func (u *uap10) CreateDataItem(id string) (asterix.DataItem, error) {
	switch id {
	case "I032/010":
		return &common.DataSourceIdentifier{}, nil
	case "I032/015":
		return &skeletonItem{width: 2}, nil
	case "I032/018":
		return &skeletonItem{width: 1}, nil
	default:
		return nil, fmt.Errorf("%w: %s (Cat032 beyond the header is a documented skeleton, not a decode bug)",
			asterix.ErrUnknownDataItem, id)
	}
}

// NewUAP returns the skeleton UAP for the specified version of CAT032.
func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version10:
		base, err := asterix.NewBaseUAP(asterix.Cat032, version, fields)
		if err != nil {
			return nil, err
		}
		return &uap10{BaseUAP: base}, nil
	default:
		return nil, fmt.Errorf("unsupported CAT032 version: %s", version)
	}
}

func LatestVersion() string       { return Version10 }
func AvailableVersions() []string { return []string{Version10} }
