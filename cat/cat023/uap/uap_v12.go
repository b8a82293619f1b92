// cat/cat023/uap/uap_v12.go
package uap

import (
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
	v12 "github.com/davidkohl/gobelix/cat/cat023/dataitems/v12"
	common "github.com/davidkohl/gobelix/cat/common/dataitems"
)

// UAP12 implements the User Application Profile for ASTERIX Category 023
// edition 1.2 (CNS/ATM Ground Station Status).
type UAP12 struct {
	*asterix.BaseUAP
}

var cat023Fields = []asterix.DataField{
	{FRN: 1, DataItem: "I023/010", Description: "Data Source Identifier", Type: asterix.Fixed, Length: 2, Mandatory: true},
	{FRN: 2, DataItem: "I023/000", Description: "Report Type", Type: asterix.Fixed, Length: 1, Mandatory: true},
	{FRN: 3, DataItem: "I023/015", Description: "Service Identification", Type: asterix.Fixed, Length: 1},
	{FRN: 4, DataItem: "I023/070", Description: "Time of Day", Type: asterix.Fixed, Length: 3},
	{FRN: 5, DataItem: "I023/100", Description: "Ground Station Status", Type: asterix.Fixed, Length: 1},
	{FRN: 6, DataItem: "I023/110", Description: "Service Configuration", Type: asterix.Fixed, Length: 2},
}

// NewUAP12 creates a new instance of the Category 023 v1.2 UAP.
func NewUAP12() (*UAP12, error) {
	base, err := asterix.NewBaseUAP(asterix.Cat023, "1.2", cat023Fields)
	if err != nil {
		return nil, err
	}
	return &UAP12{BaseUAP: base}, nil
}

// CreateDataItem creates a new instance of a Cat023 data item.
func (u *UAP12) CreateDataItem(id string) (asterix.DataItem, error) {
	switch id {
	case "I023/010":
		return &common.DataSourceIdentifier{}, nil
	case "I023/000":
		return &v12.ServiceType{}, nil
	case "I023/015":
		return &v12.ServiceType{}, nil
	case "I023/070":
		return &common.TimeOfDay{}, nil
	case "I023/100":
		return &v12.GroundStationStatus{}, nil
	case "I023/110":
		return &v12.ServiceConfiguration{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", asterix.ErrUnknownDataItem, id)
	}
}
