// cat/cat017/uap/uap_v13.go
package uap

import (
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
	v13 "github.com/davidkohl/gobelix/cat/cat017/dataitems/v13"
	common "github.com/davidkohl/gobelix/cat/common/dataitems"
)

// UAP13 implements the User Application Profile for ASTERIX Category 017
// edition 1.3 (Mode S Coordination).
type UAP13 struct {
	*asterix.BaseUAP
}

var cat017Fields = []asterix.DataField{
	{FRN: 1, DataItem: "I017/010", Description: "Data Source Identifier", Type: asterix.Fixed, Length: 2, Mandatory: true},
	{FRN: 2, DataItem: "I017/000", Description: "Message Type", Type: asterix.Fixed, Length: 1, Mandatory: true},
	{FRN: 3, DataItem: "I017/140", Description: "Time of Message", Type: asterix.Fixed, Length: 3},
	{FRN: 4, DataItem: "I017/220", Description: "Target Address", Type: asterix.Fixed, Length: 3},
	{FRN: 5, DataItem: "I017/290", Description: "Coordination Status", Type: asterix.Fixed, Length: 1},
}

// NewUAP13 creates a new instance of the Category 017 v1.3 UAP.
func NewUAP13() (*UAP13, error) {
	base, err := asterix.NewBaseUAP(asterix.Cat017, "1.3", cat017Fields)
	if err != nil {
		return nil, err
	}
	return &UAP13{BaseUAP: base}, nil
}

// CreateDataItem creates a new instance of a Cat017 data item.
func (u *UAP13) CreateDataItem(id string) (asterix.DataItem, error) {
	switch id {
	case "I017/010":
		return &common.DataSourceIdentifier{}, nil
	case "I017/000":
		return &v13.MessageType{}, nil
	case "I017/140":
		return &common.TimeOfDay{}, nil
	case "I017/220":
		return &v13.TargetAddress{}, nil
	case "I017/290":
		return &v13.CoordinationStatus{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", asterix.ErrUnknownDataItem, id)
	}
}
