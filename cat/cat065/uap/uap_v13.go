// cat/cat065/uap/uap_v13.go
package uap

import (
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
	v13 "github.com/davidkohl/gobelix/cat/cat065/dataitems/v13"
	common "github.com/davidkohl/gobelix/cat/common/dataitems"
)

// UAP065 implements the User Application Profile for ASTERIX Category
// 065, SDPS Service Status Messages.
type UAP065 struct {
	*asterix.BaseUAP
}

// NewUAP065 creates a new instance of the Category 065 UAP.
func NewUAP065() (*UAP065, error) {
	base, err := asterix.NewBaseUAP(asterix.Cat065, "1.3", cat065Fields)
	if err != nil {
		return nil, err
	}

	return &UAP065{
		BaseUAP: base,
	}, nil
}

// CreateDataItem creates a new instance of a Cat065 data item.
func (u *UAP065) CreateDataItem(id string) (asterix.DataItem, error) {
	switch id {
	case "I065/010":
		return &common.DataSourceIdentifier{}, nil
	case "I065/000":
		return &v13.MessageType{}, nil
	case "I065/015":
		return &common.ServiceIdentification{}, nil
	case "I065/030":
		return &v13.TimeOfMessage{}, nil
	case "I065/020":
		return &v13.BatchNumber{}, nil
	case "I065/040":
		return &v13.SdpsConfigurationAndStatus{}, nil
	case "I065/050":
		return &v13.ServiceStatusReport{}, nil
	case "RE065":
		return &v13.ReservedExpansion{}, nil
	case "SP065":
		return &v13.SpecialPurpose{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", asterix.ErrUnknownDataItem, id)
	}
}

// Validate implements critical validations for Cat065.
func (u *UAP065) Validate(items map[string]asterix.DataItem) error {
	if err := u.BaseUAP.Validate(items); err != nil {
		return err
	}

	_, dataSourceExists := items["I065/010"]
	_, messageTypeExists := items["I065/000"]

	if !dataSourceExists || !messageTypeExists {
		return fmt.Errorf("%w: missing mandatory field(s)", asterix.ErrMandatoryField)
	}

	return nil
}

// cat065Fields defines the complete UAP for Category 065, per FRN order
// 1..14 (data_source, message_type, service_id, time_of_message,
// batch_number, sdps_status, service_status_report, spares, REF, SPF).
var cat065Fields = []asterix.DataField{
	{
		FRN:         1,
		DataItem:    "I065/010",
		Description: "Data Source Identifier",
		Type:        asterix.Fixed,
		Length:      2,
		Mandatory:   true,
	},
	{
		FRN:         2,
		DataItem:    "I065/000",
		Description: "Message Type",
		Type:        asterix.Fixed,
		Length:      1,
		Mandatory:   true,
	},
	{
		FRN:         3,
		DataItem:    "I065/015",
		Description: "Service Identification",
		Type:        asterix.Fixed,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         4,
		DataItem:    "I065/030",
		Description: "Time of Message",
		Type:        asterix.Fixed,
		Length:      3,
		Mandatory:   false,
	},
	{
		FRN:         5,
		DataItem:    "I065/020",
		Description: "Batch Number",
		Type:        asterix.Fixed,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         6,
		DataItem:    "I065/040",
		Description: "SDPS Configuration and Status",
		Type:        asterix.Fixed,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         7,
		DataItem:    "I065/050",
		Description: "Service Status Report",
		Type:        asterix.Fixed,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         8,
		DataItem:    "",
		Description: "Spare",
		Type:        asterix.Fixed,
		Length:      0,
		Mandatory:   false,
	},
	{
		FRN:         9,
		DataItem:    "",
		Description: "Spare",
		Type:        asterix.Fixed,
		Length:      0,
		Mandatory:   false,
	},
	{
		FRN:         10,
		DataItem:    "",
		Description: "Spare",
		Type:        asterix.Fixed,
		Length:      0,
		Mandatory:   false,
	},
	{
		FRN:         11,
		DataItem:    "",
		Description: "Spare",
		Type:        asterix.Fixed,
		Length:      0,
		Mandatory:   false,
	},
	{
		FRN:         12,
		DataItem:    "",
		Description: "Spare",
		Type:        asterix.Fixed,
		Length:      0,
		Mandatory:   false,
	},
	{
		FRN:         13,
		DataItem:    "RE065",
		Description: "Reserved Expansion Field",
		Type:        asterix.Repetitive,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         14,
		DataItem:    "SP065",
		Description: "Special Purpose Field",
		Type:        asterix.Repetitive,
		Length:      1,
		Mandatory:   false,
	},
}
