// cat/cat252/version.go
//
// Category 252 (ARTAS Reference Trajectory) is carried as a UAP skeleton
// only, for the same documented-gap reason as Cat030: see DESIGN.md.
package cat252

import (
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
	common "github.com/davidkohl/gobelix/cat/common/dataitems"
)

const Version10 = "1.0"

type uap10 struct {
	*asterix.BaseUAP
}

var fields = []asterix.DataField{
	{FRN: 1, DataItem: "I252/010", Description: "Data Source Identifier", Type: asterix.Fixed, Length: 2, Mandatory: true},
	{FRN: 2, DataItem: "I252/020", Description: "Time of Day", Type: asterix.Fixed, Length: 3, Mandatory: true},
}

func (u *uap10) CreateDataItem(id string) (asterix.DataItem, error) {
	switch id {
	case "I252/010":
		return &common.DataSourceIdentifier{}, nil
	case "I252/020":
		return &common.TimeOfDay{}, nil
	default:
		return nil, fmt.Errorf("%w: %s (Cat252 beyond the header is a documented skeleton, not a decode bug)",
			asterix.ErrUnknownDataItem, id)
	}
}

// NewUAP returns the skeleton UAP for the specified version of CAT252.
func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version10:
		base, err := asterix.NewBaseUAP(asterix.Cat252, version, fields)
		if err != nil {
			return nil, err
		}
		return &uap10{BaseUAP: base}, nil
	default:
		return nil, fmt.Errorf("unsupported CAT252 version: %s", version)
	}
}

func LatestVersion() string       { return Version10 }
func AvailableVersions() []string { return []string{Version10} }
