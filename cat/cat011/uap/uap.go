// cat/cat011/uap/uap.go
package uap

import (
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
	v17 "github.com/davidkohl/gobelix/cat/cat011/dataitems/v17"
	common "github.com/davidkohl/gobelix/cat/common/dataitems"
)

// UAP implements the User Application Profile for ASTERIX Category 011,
// across the three editions that disagree on I011/042's on-wire width
// (spec.md §4.5.4). wideCoordinates selects which width this instance's
// CreateDataItem hands back; the field table's own Length entry for
// I011/042 is rebuilt to match so the dispatcher's length check agrees
// with what the extractor actually consumes.
type UAP struct {
	*asterix.BaseUAP
	wideCoordinates bool
}

func fields(wide bool) []asterix.DataField {
	posLen := uint8(4)
	if wide {
		posLen = 8
	}
	return []asterix.DataField{
		{FRN: 1, DataItem: "I011/010", Description: "Data Source Identifier", Type: asterix.Fixed, Length: 2, Mandatory: true},
		{FRN: 2, DataItem: "I011/000", Description: "Message Type", Type: asterix.Fixed, Length: 1, Mandatory: true},
		{FRN: 3, DataItem: "I011/015", Description: "Service Identification", Type: asterix.Fixed, Length: 1},
		{FRN: 4, DataItem: "I011/140", Description: "Time of Track Information", Type: asterix.Fixed, Length: 3, Mandatory: true},
		{FRN: 5, DataItem: "I011/041", Description: "Position in WGS-84", Type: asterix.Fixed, Length: 8},
		{FRN: 6, DataItem: "I011/042", Description: "Calculated Position in Cartesian Co-ordinates", Type: asterix.Fixed, Length: posLen},
		{FRN: 7, DataItem: "I011/060", Description: "Mode-3/A Code", Type: asterix.Fixed, Length: 2},
		{FRN: 8, DataItem: "I011/161", Description: "Track Number", Type: asterix.Fixed, Length: 2},
		{FRN: 9, DataItem: "I011/380", Description: "Target Address", Type: asterix.Fixed, Length: 3},
	}
}

func newUAP(version string, wide bool) (*UAP, error) {
	base, err := asterix.NewBaseUAP(asterix.Cat011, version, fields(wide))
	if err != nil {
		return nil, err
	}
	return &UAP{BaseUAP: base, wideCoordinates: wide}, nil
}

// New014 builds the edition "0.14" UAP (narrow, 4-byte I011/042).
func New014() (*UAP, error) { return newUAP("0.14", false) }

// New014Sensis builds the edition "0.14Sensis" UAP (wide, 8-byte I011/042).
func New014Sensis() (*UAP, error) { return newUAP("0.14Sensis", true) }

// New017 builds the edition "0.17" UAP (narrow, 4-byte I011/042).
func New017() (*UAP, error) { return newUAP("0.17", false) }

// CreateDataItem creates a new instance of a Cat011 data item.
func (u *UAP) CreateDataItem(id string) (asterix.DataItem, error) {
	switch id {
	case "I011/010":
		return &common.DataSourceIdentifier{}, nil
	case "I011/000":
		return &byteItem{}, nil
	case "I011/015":
		return &byteItem{}, nil
	case "I011/140":
		return &common.TimeOfDay{}, nil
	case "I011/041":
		return &common.Position{}, nil
	case "I011/042":
		return &v17.CalculatedPosition{WideCoordinates: u.wideCoordinates}, nil
	case "I011/060":
		return &v17.Mode3ACode{}, nil
	case "I011/161":
		return &v17.TrackNumber{}, nil
	case "I011/380":
		return &v17.TargetAddress{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", asterix.ErrUnknownDataItem, id)
	}
}
