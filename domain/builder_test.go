// domain/builder_test.go
package domain

import (
	"testing"

	"github.com/davidkohl/gobelix/asterix"
	cat065 "github.com/davidkohl/gobelix/cat/cat065/dataitems/v13"
	common "github.com/davidkohl/gobelix/cat/common/dataitems"
)

func TestStampFrameNilContext(t *testing.T) {
	f := stampFrame(nil)
	if f.LineNumber.Present || f.FrameDate.Present || f.FrameTime.Present {
		t.Fatalf("expected all-absent Frame for nil context, got %+v", f)
	}
}

func TestStampFrameLineNumber(t *testing.T) {
	ctx := asterix.NewDecoderContext()
	ctx.LineNumber = 7

	r := RadarTargetBuilder{}.Build(map[string]asterix.DataItem{
		"I048/010": &common.DataSourceIdentifier{SAC: 1, SIC: 2},
	}, ctx)

	target, ok := r.(*RadarTarget)
	if !ok {
		t.Fatalf("expected *RadarTarget, got %T", r)
	}
	if !target.Frame.LineNumber.Present || target.Frame.LineNumber.Value != 7 {
		t.Fatalf("expected LineNumber 7, got %+v", target.Frame.LineNumber)
	}
}

func TestServiceStepBuilderCat065(t *testing.T) {
	items := map[string]asterix.DataItem{
		"I065/010": &common.DataSourceIdentifier{SAC: 10, SIC: 20},
		"I065/000": &cat065.MessageType{MessageType: 3},
		"I065/030": &cat065.TimeOfMessage{Time: 36000.0},
	}

	r := ServiceStepBuilder{}.Build(items, nil)
	step, ok := r.(*ServiceStep)
	if !ok {
		t.Fatalf("expected *ServiceStep, got %T", r)
	}

	if !step.DataSource.Present || step.DataSource.SAC != 10 || step.DataSource.SIC != 20 {
		t.Errorf("unexpected DataSource: %+v", step.DataSource)
	}
	if !step.MessageType.Present || step.MessageType.Value != 3 {
		t.Errorf("unexpected MessageType: %+v", step.MessageType)
	}
	if !step.TimeOfDay.Present || step.TimeOfDay.Value != 36000.0 {
		t.Errorf("unexpected TimeOfDay: %+v", step.TimeOfDay)
	}
	if step.SectorNumber.Present {
		t.Errorf("expected SectorNumber absent for a Cat065 record, got %+v", step.SectorNumber)
	}
}

func TestDispatchEmptyItemsSkips(t *testing.T) {
	d := NewDispatcher(NewCollectorSink())

	result, err := d.Dispatch(asterix.Cat048, map[string]asterix.DataItem{}, nil)
	if err != nil {
		t.Fatalf("unexpected error for empty items: %v", err)
	}
	if result != asterix.Skip {
		t.Fatalf("expected Skip for empty items, got %v", result)
	}
}

func TestDispatchUnknownCategory(t *testing.T) {
	d := NewDispatcher(NewCollectorSink())

	_, err := d.Dispatch(asterix.Category(200), map[string]asterix.DataItem{
		"I200/010": &common.DataSourceIdentifier{SAC: 1, SIC: 1},
	}, nil)
	if err == nil {
		t.Fatal("expected error for a category with no registered builder")
	}
}

func TestDispatchCat065RoutesToServiceStep(t *testing.T) {
	sink := NewCollectorSink()
	d := NewDispatcher(sink)

	items := map[string]asterix.DataItem{
		"I065/010": &common.DataSourceIdentifier{SAC: 1, SIC: 1},
		"I065/000": &cat065.MessageType{MessageType: 1},
	}

	result, err := d.Dispatch(asterix.Cat065, items, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != asterix.OK {
		t.Fatalf("expected OK, got %v", result)
	}
	if len(sink.ServiceSteps) != 1 {
		t.Fatalf("expected 1 collected ServiceStep, got %d", len(sink.ServiceSteps))
	}
}
