package domain

import (
	"math"

	"github.com/davidkohl/gobelix/asterix"
	cat002 "github.com/davidkohl/gobelix/cat/cat002/dataitems/v10"
	cat034 "github.com/davidkohl/gobelix/cat/cat034/dataitems/v129"
	cat048 "github.com/davidkohl/gobelix/cat/cat048/dataitems/v132"
	cat062 "github.com/davidkohl/gobelix/cat/cat062/dataitems/v120"
	cat063 "github.com/davidkohl/gobelix/cat/cat063/dataitems/v16"
	cat065 "github.com/davidkohl/gobelix/cat/cat065/dataitems/v13"
	v110 "github.com/davidkohl/gobelix/cat/cat020/dataitems/v110"
	v15 "github.com/davidkohl/gobelix/cat/cat020/dataitems/v15"
	v26 "github.com/davidkohl/gobelix/cat/cat021/dataitems/v26"
	common "github.com/davidkohl/gobelix/cat/common/dataitems"
)

// Builder translates a decoded record (a category's data-item map, keyed
// by "I0NN/xxx" as every UAP.CreateDataItem switch names it) into the
// corresponding DomainRecord variant. One Builder per category; the
// dispatcher owns calling the right builder for the message category it
// just decoded. ctx is the DecoderContext the record was decoded under;
// every Builder stamps its Frame provenance from it before returning.
type Builder interface {
	Build(items map[string]asterix.DataItem, ctx *asterix.DecoderContext) any
}

// dataSourceFrom extracts the common SAC/SIC item under the given key, if
// present.
func dataSourceFrom(items map[string]asterix.DataItem, key string) DataSource {
	if raw, ok := items[key]; ok {
		if ds, ok := raw.(*common.DataSourceIdentifier); ok {
			return DataSource{Present: true, SAC: ds.SAC, SIC: ds.SIC}
		}
	}
	return DataSource{}
}

func timeOfDayFrom(items map[string]asterix.DataItem, key string) Seconds {
	if raw, ok := items[key]; ok {
		if t, ok := raw.(*common.TimeOfDay); ok {
			return Seconds{Present: true, Value: t.TimeOfDay}
		}
	}
	return Seconds{}
}

// RadarTargetBuilder builds a RadarTarget from a Cat048 record.
type RadarTargetBuilder struct{}

func (RadarTargetBuilder) Build(items map[string]asterix.DataItem, ctx *asterix.DecoderContext) any {
	t := &RadarTarget{
		DataSource: dataSourceFrom(items, "I048/010"),
		TimeOfDay:  timeOfDayFrom(items, "I048/140"),
		Frame:      stampFrame(ctx),
	}

	if raw, ok := items["I048/070"].(*cat048.Mode3ACode); ok {
		t.Mode3ACode = OptUint16{Present: true, Value: raw.Code}
		t.Mode3AGarbled = asterix.TresFromBit(raw.G)
		t.Mode3AInvalid = asterix.TresFromBit(!raw.V)
	}

	if raw, ok := items["I048/161"].(*cat048.TrackNumber); ok {
		t.TrackNumber = OptUint16{Present: true, Value: raw.Value}
	}

	if raw, ok := items["I048/240"].(*cat048.AircraftIdentification); ok {
		t.Callsign = OptString{Present: true, Value: raw.Ident}
	}

	return t
}

// AdsbReportBuilder builds an AdsbReport from a Cat021 record.
type AdsbReportBuilder struct{}

func (AdsbReportBuilder) Build(items map[string]asterix.DataItem, ctx *asterix.DecoderContext) any {
	r := &AdsbReport{
		DataSource: dataSourceFrom(items, "I021/010"),
		Frame:      stampFrame(ctx),
	}

	if raw, ok := items["I021/130"].(*common.Position); ok {
		r.Position = Position2D{
			Present: true,
			LatRad:  raw.Latitude * math.Pi / 180.0,
			LonRad:  raw.Longitude * math.Pi / 180.0,
		}
	}

	if raw, ok := items["I021/080"].(*v26.TargetAddress); ok {
		r.TargetAddress = OptUint32{Present: true, Value: raw.Address}
	}

	return r
}

// MlatReportBuilder builds an MlatReport from a Cat020 record. Editions
// 1.10 and 1.5 share the same Go types for every item except I020/020 and
// I020/500, so both are handled here.
type MlatReportBuilder struct{}

func (MlatReportBuilder) Build(items map[string]asterix.DataItem, ctx *asterix.DecoderContext) any {
	r := &MlatReport{
		DataSource: dataSourceFrom(items, "I020/010"),
		TimeOfDay:  timeOfDayFrom(items, "I020/140"),
		Frame:      stampFrame(ctx),
	}

	if raw, ok := items["I020/041"].(*v110.PositionWGS84); ok {
		r.Position = Position2D{Present: true, LatRad: raw.Latitude * math.Pi / 180.0, LonRad: raw.Longitude * math.Pi / 180.0}
	}
	if raw, ok := items["I020/042"].(*v110.PositionCartesian); ok {
		r.CartesianX = OptFloat64{Present: true, Value: raw.X}
		r.CartesianY = OptFloat64{Present: true, Value: raw.Y}
	}
	if raw, ok := items["I020/070"].(*v110.Mode3ACode); ok {
		r.Mode3ACode = OptUint16{Present: true, Value: raw.Mode3A}
	}
	if raw, ok := items["I020/090"].(*v110.FlightLevel); ok {
		r.FlightLevel = OptFloat64{Present: true, Value: float64(raw.FlightLevel) / 4.0}
	}
	if raw, ok := items["I020/220"].(*v110.TargetAddress); ok {
		r.TargetAddress = OptUint32{Present: true, Value: raw.Address}
	}
	if raw, ok := items["I020/245"].(*v110.TargetIdentification); ok {
		r.Callsign = OptString{Present: true, Value: raw.Callsign}
	}
	if raw, ok := items["I020/202"].(*v110.CalculatedTrackVelocity); ok {
		vx := float64(raw.Vx) * 0.25
		vy := float64(raw.Vy) * 0.25
		r.GroundSpeed = OptFloat64{Present: true, Value: math.Hypot(vx, vy)}
		r.Heading = OptFloat64{Present: true, Value: math.Atan2(vx, vy)}
	}

	switch raw := items["I020/020"].(type) {
	case *v15.TargetReportDescriptor:
		r.SPI = raw.SPI
		r.Simulated = raw.Simulated
	case *v110.TargetReportDescriptor:
		r.SPI = raw.SPI
		r.Simulated = raw.Simulated
	}

	switch raw := items["I020/500"].(type) {
	case *v15.PositionAccuracy:
		if raw.DOPPresent {
			r.PositionAccuracyDOPX = OptFloat64{Present: true, Value: raw.DOPx}
			r.PositionAccuracyDOPY = OptFloat64{Present: true, Value: raw.DOPy}
			r.PositionAccuracyDOPXY = OptFloat64{Present: true, Value: raw.DOPxy}
		}
	case *v110.PositionAccuracy:
		// v110 carries position accuracy as an opaque blob; no typed
		// subfields to surface yet (see DESIGN.md).
	}

	return r
}

// SystemTrackBuilder builds a SystemTrack from a Cat062 record.
type SystemTrackBuilder struct{}

func (SystemTrackBuilder) Build(items map[string]asterix.DataItem, ctx *asterix.DecoderContext) any {
	s := &SystemTrack{
		DataSource: dataSourceFrom(items, "I062/010"),
		Frame:      stampFrame(ctx),
	}

	if raw, ok := items["I062/105"].(*cat062.CalculatedPositionWGS84); ok {
		s.Position = Position2D{
			Present: true,
			LatRad:  raw.Latitude * math.Pi / 180.0,
			LonRad:  raw.Longitude * math.Pi / 180.0,
		}
	}

	return s
}

// ServiceStepBuilder builds a ServiceStep from a Cat002, Cat034 or Cat065
// record. Cat002/034 report the same North-marker/sector-crossing message
// sequence for monoradar stations; Cat034 superseded Cat002 but the wire
// shapes this builder reads are identical in substance. Cat065 reports a
// disjoint SDPS-status message-type set with no sector number, so its
// SectorNumber is always absent here.
type ServiceStepBuilder struct{}

func (ServiceStepBuilder) Build(items map[string]asterix.DataItem, ctx *asterix.DecoderContext) any {
	s := &ServiceStep{Frame: stampFrame(ctx)}

	switch {
	case items["I002/010"] != nil:
		raw := items["I002/010"].(*common.DataSourceIdentifier)
		s.DataSource = DataSource{Present: true, SAC: raw.SAC, SIC: raw.SIC}
	case items["I034/010"] != nil:
		raw := items["I034/010"].(*common.DataSourceIdentifier)
		s.DataSource = DataSource{Present: true, SAC: raw.SAC, SIC: raw.SIC}
	case items["I065/010"] != nil:
		raw := items["I065/010"].(*common.DataSourceIdentifier)
		s.DataSource = DataSource{Present: true, SAC: raw.SAC, SIC: raw.SIC}
	}

	switch {
	case items["I002/000"] != nil:
		s.MessageType = OptUint8{Present: true, Value: items["I002/000"].(*cat002.MessageType).MessageType}
	case items["I034/000"] != nil:
		s.MessageType = OptUint8{Present: true, Value: items["I034/000"].(*cat034.MessageType).MessageType}
	case items["I065/000"] != nil:
		s.MessageType = OptUint8{Present: true, Value: items["I065/000"].(*cat065.MessageType).MessageType}
	}

	switch {
	case items["I002/030"] != nil:
		s.TimeOfDay = Seconds{Present: true, Value: items["I002/030"].(*common.TimeOfDay).TimeOfDay}
	case items["I034/030"] != nil:
		s.TimeOfDay = Seconds{Present: true, Value: items["I034/030"].(*common.TimeOfDay).TimeOfDay}
	case items["I065/030"] != nil:
		s.TimeOfDay = Seconds{Present: true, Value: items["I065/030"].(*cat065.TimeOfMessage).Time}
	}

	switch {
	case items["I002/020"] != nil:
		s.SectorNumber = OptFloat64{Present: true, Value: items["I002/020"].(*cat002.SectorNumber).SectorNumber}
	case items["I034/020"] != nil:
		s.SectorNumber = OptFloat64{Present: true, Value: items["I034/020"].(*cat034.SectorNumber).SectorNumber}
	}

	return s
}

// RadarServiceBuilder builds a RadarService from a Cat063 sensor
// status/service record.
type RadarServiceBuilder struct{}

func (RadarServiceBuilder) Build(items map[string]asterix.DataItem, ctx *asterix.DecoderContext) any {
	r := &RadarService{
		DataSource: dataSourceFrom(items, "I063/010"),
		Frame:      stampFrame(ctx),
	}

	if raw, ok := items["I063/030"].(*cat063.TimeOfMessage); ok {
		r.TimeOfDay = Seconds{Present: true, Value: raw.Time}
	}

	if raw, ok := items["I063/060"].(*cat063.SensorConfigurationAndStatus); ok {
		switch raw.CON {
		case cat063.StatusOperational, cat063.StatusDegraded:
			r.SensorConnected = asterix.True
		case cat063.StatusNotConnected:
			r.SensorConnected = asterix.False
		default:
			r.SensorConnected = asterix.Undefined
		}
		r.PrimaryAvail = asterix.TresFromBit(!raw.PSR)
		r.SecondaryAvail = asterix.TresFromBit(!raw.SSR)
		r.ModeSAvail = asterix.TresFromBit(!raw.MDS)
	}

	return r
}
