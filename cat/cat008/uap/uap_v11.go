// cat/cat008/uap/uap_v11.go
package uap

import (
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
	v11 "github.com/davidkohl/gobelix/cat/cat008/dataitems/v11"
	common "github.com/davidkohl/gobelix/cat/common/dataitems"
)

// UAP11 implements the User Application Profile for ASTERIX Category 008
// edition 1.1 (Monoradar Derived Weather Information).
type UAP11 struct {
	*asterix.BaseUAP
}

var cat008Fields = []asterix.DataField{
	{FRN: 1, DataItem: "I008/010", Description: "Data Source Identifier", Type: asterix.Fixed, Length: 2, Mandatory: true},
	{FRN: 2, DataItem: "I008/000", Description: "Message Type", Type: asterix.Fixed, Length: 1, Mandatory: true},
	{FRN: 3, DataItem: "I008/020", Description: "Vector Qualifier", Type: asterix.Extended},
	{FRN: 4, DataItem: "I008/036", Description: "Contour Identifier", Type: asterix.Fixed, Length: 1},
	{FRN: 5, DataItem: "I008/034", Description: "Contour Sequence", Type: asterix.Repetitive, Length: 4},
	{FRN: 6, DataItem: "I008/040", Description: "Cartesian Contour", Type: asterix.Fixed, Length: 1},
	{FRN: 7, DataItem: "I008/050", Description: "Time of Day", Type: asterix.Fixed, Length: 3},
	{FRN: 8, DataItem: "I008/090", Description: "Radar Reflectivity Level", Type: asterix.Fixed, Length: 2},
	{FRN: 9, DataItem: "I008/100", Description: "Platform Processing Status", Type: asterix.Immediate},
	{FRN: 10, DataItem: "I008/110", Description: "Weather/Ground Clutter Radar Data", Type: asterix.Fixed, Length: 2},
	{FRN: 11, DataItem: "I008/120", Description: "Characteristic Category", Type: asterix.Fixed, Length: 1},
	{FRN: 12, DataItem: "I008/038", Description: "Total Space Covered", Type: asterix.Fixed, Length: 2},
	{FRN: 13, DataItem: "I008/SPF", Description: "Special Purpose Field", Type: asterix.Immediate},
	{FRN: 14, DataItem: "I008/RE", Description: "Reserved Expansion Field", Type: asterix.Immediate},
}

// NewUAP11 creates a new instance of the Category 008 v1.1 UAP.
func NewUAP11() (*UAP11, error) {
	base, err := asterix.NewBaseUAP(asterix.Cat008, "1.1", cat008Fields)
	if err != nil {
		return nil, err
	}
	return &UAP11{BaseUAP: base}, nil
}

// CreateDataItem creates a new instance of a Cat008 data item.
func (u *UAP11) CreateDataItem(id string) (asterix.DataItem, error) {
	switch id {
	case "I008/010":
		return &common.DataSourceIdentifier{}, nil
	case "I008/000":
		return &v11.MessageType{}, nil
	case "I008/020":
		return &v11.VectorQualifier{}, nil
	case "I008/036":
		return &v11.ContourIdentifier{}, nil
	case "I008/034":
		return &v11.ContourSequence{}, nil
	case "I008/040":
		return &v11.CartesianContour{}, nil
	case "I008/050":
		return &common.TimeOfDay{}, nil
	case "I008/090":
		return &v11.WeatherClutterData{}, nil
	case "I008/100":
		return &v11.ProcessingStatus{}, nil
	case "I008/110":
		return &v11.WeatherClutterData{}, nil
	case "I008/120":
		return &v11.CharacteristicCategory{}, nil
	case "I008/038":
		return &v11.TotalSpaceCovered{}, nil
	case "I008/SPF":
		return &v11.SpecialPurposeField{}, nil
	case "I008/RE":
		return &v11.ReservedExpansionField{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", asterix.ErrUnknownDataItem, id)
	}
}
