// cat/cat019/uap/uap_v12.go
package uap

import (
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
	v12 "github.com/davidkohl/gobelix/cat/cat019/dataitems/v12"
	common "github.com/davidkohl/gobelix/cat/common/dataitems"
)

// UAP12 implements the User Application Profile for ASTERIX Category 019
// edition 1.2 (MLAT System Status).
type UAP12 struct {
	*asterix.BaseUAP
}

var cat019Fields = []asterix.DataField{
	{FRN: 1, DataItem: "I019/010", Description: "Data Source Identifier", Type: asterix.Fixed, Length: 2, Mandatory: true},
	{FRN: 2, DataItem: "I019/000", Description: "Message Type", Type: asterix.Fixed, Length: 1, Mandatory: true},
	{FRN: 3, DataItem: "I019/140", Description: "Time of Message", Type: asterix.Fixed, Length: 3},
	{FRN: 4, DataItem: "I019/550", Description: "System Status", Type: asterix.Fixed, Length: 1},
	{FRN: 5, DataItem: "I019/551", Description: "Station Configuration Status", Type: asterix.Fixed, Length: 2},
}

// NewUAP12 creates a new instance of the Category 019 v1.2 UAP.
func NewUAP12() (*UAP12, error) {
	base, err := asterix.NewBaseUAP(asterix.Cat019, "1.2", cat019Fields)
	if err != nil {
		return nil, err
	}
	return &UAP12{BaseUAP: base}, nil
}

// CreateDataItem creates a new instance of a Cat019 data item.
func (u *UAP12) CreateDataItem(id string) (asterix.DataItem, error) {
	switch id {
	case "I019/010":
		return &common.DataSourceIdentifier{}, nil
	case "I019/000":
		return &v12.MessageType{}, nil
	case "I019/140":
		return &common.TimeOfDay{}, nil
	case "I019/550":
		return &v12.SystemStatus{}, nil
	case "I019/551":
		return &v12.StationConfigurationStatus{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", asterix.ErrUnknownDataItem, id)
	}
}
