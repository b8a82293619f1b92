// cat/cat065/cat065_test.go
package cat065_test

import (
	"testing"

	"github.com/davidkohl/gobelix/asterix"
	"github.com/davidkohl/gobelix/cat/cat065"
	v13 "github.com/davidkohl/gobelix/cat/cat065/dataitems/v13"
	common "github.com/davidkohl/gobelix/cat/common/dataitems"
)

func TestCat065UAP(t *testing.T) {
	uap, err := cat065.NewUAP(cat065.Version13)
	if err != nil {
		t.Fatalf("failed to create UAP: %v", err)
	}

	if uap.Category() != asterix.Cat065 {
		t.Errorf("expected category 65, got %d", uap.Category())
	}
	if uap.Version() != "1.3" {
		t.Errorf("expected version 1.3, got %s", uap.Version())
	}
}

func TestCat065EncodeDecode(t *testing.T) {
	uap, err := cat065.NewUAP(cat065.Version13)
	if err != nil {
		t.Fatalf("failed to create UAP: %v", err)
	}

	record, err := asterix.NewRecord(asterix.Cat065, uap)
	if err != nil {
		t.Fatalf("failed to create record: %v", err)
	}

	record.SetDataItem("I065/010", &common.DataSourceIdentifier{SAC: 10, SIC: 20})
	record.SetDataItem("I065/000", &v13.MessageType{MessageType: 3}) // service status report
	record.SetDataItem("I065/015", &common.ServiceIdentification{Value: 1})
	record.SetDataItem("I065/030", &v13.TimeOfMessage{Time: 36000.0})
	record.SetDataItem("I065/050", &v13.ServiceStatusReport{Report: 2})

	dataBlock, err := asterix.NewDataBlock(asterix.Cat065, uap)
	if err != nil {
		t.Fatalf("failed to create data block: %v", err)
	}
	if err := dataBlock.AddRecord(record); err != nil {
		t.Fatalf("failed to add record: %v", err)
	}

	encoded, err := dataBlock.Encode()
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	decoder, err := asterix.NewDecoder(uap)
	if err != nil {
		t.Fatalf("failed to create decoder: %v", err)
	}

	decoded, err := decoder.Decode(encoded)
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	if decoded.Category != asterix.Cat065 {
		t.Errorf("expected category 65, got %d", decoded.Category)
	}
	if decoded.GetRecordCount() != 1 {
		t.Fatalf("expected 1 record, got %d", decoded.GetRecordCount())
	}
}

func TestCat065MissingMandatoryField(t *testing.T) {
	uap, err := cat065.NewUAP(cat065.Version13)
	if err != nil {
		t.Fatalf("failed to create UAP: %v", err)
	}

	if err := uap.Validate(map[string]asterix.DataItem{
		"I065/010": &common.DataSourceIdentifier{SAC: 1, SIC: 1},
	}); err == nil {
		t.Fatal("expected validation error when I065/000 is missing, got nil")
	}
}
