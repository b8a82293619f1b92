// Package domain holds the typed records the ASTERIX decoder populates
// once raw wire items have been extracted, and the Builder that assembles
// them from a decoded record's data-item map. Every field is either a
// "presence + value" pair (a bool plus the value, zero value when absent)
// or, where the wire itself carries a quality bit, a presence bool plus an
// asterix.Tres plus the value, so "absent" and "present but false" never
// collapse into each other on the way to a sink.
package domain

import (
	"time"

	"github.com/davidkohl/gobelix/asterix"
)

// DataSource identifies the sensor/system that produced a record, as
// carried by the common SAC/SIC data item present in nearly every
// category's UAP.
type DataSource struct {
	Present bool
	SAC     uint8
	SIC     uint8
}

// Position2D is a WGS-84 latitude/longitude pair in radians.
type Position2D struct {
	Present   bool
	LatRad    float64
	LonRad    float64
}

// Frame carries the per-record provenance a Builder stamps from the
// DecoderContext it is handed, rather than from any wire item (spec.md
// §6.4's "consumed interfaces": frame_date, frame_time,
// current_line_number). FrameDate/FrameTime are only present when an
// upstream reader has set them on the DecoderContext; LineNumber is
// always present once a decoder has processed at least one message.
type Frame struct {
	LineNumber OptUint32
	FrameDate  OptTime
	FrameTime  OptTime
}

// stampFrame reads the frame provenance fields off ctx. A nil ctx (e.g.
// building a record outside of a live decode, as tests do) yields a
// zero-value, all-absent Frame.
func stampFrame(ctx *asterix.DecoderContext) Frame {
	if ctx == nil {
		return Frame{}
	}

	f := Frame{}
	if ctx.LineNumber > 0 {
		f.LineNumber = OptUint32{Present: true, Value: uint32(ctx.LineNumber)}
	}
	if !ctx.FrameDate.IsZero() {
		f.FrameDate = OptTime{Present: true, Value: ctx.FrameDate}
	}
	if !ctx.FrameTime.IsZero() {
		f.FrameTime = OptTime{Present: true, Value: ctx.FrameTime}
	}
	return f
}

// RadarTarget is the monoradar target report record (Cat001/Cat048),
// populated from the primary plot/track items of those categories.
type RadarTarget struct {
	DataSource      DataSource
	TimeOfDay       Seconds
	SlantRange      OptFloat64 // metres
	Azimuth         OptFloat64 // radians
	Mode3ACode      OptUint16  // decimal-packed-octal
	Mode3AGarbled   asterix.Tres
	Mode3AInvalid   asterix.Tres
	FlightLevel     OptFloat64 // quarter-FL units
	FlightLevelGarbled asterix.Tres
	ModeCInvalid    asterix.Tres
	TrackNumber     OptUint16
	Callsign        OptString
	SPI             asterix.Tres
	Simulated       asterix.Tres
	Frame           Frame
}

// MlatReport is the multilateration target report record (Cat011/Cat020).
type MlatReport struct {
	DataSource    DataSource
	TimeOfDay     Seconds
	Position      Position2D
	CartesianX    OptFloat64 // metres
	CartesianY    OptFloat64 // metres
	Mode3ACode    OptUint16
	FlightLevel   OptFloat64
	TargetAddress OptUint32
	Callsign      OptString
	GroundSpeed   OptFloat64 // m/s
	Heading       OptFloat64 // radians
	SPI           asterix.Tres
	Simulated     asterix.Tres
	PositionAccuracyDOPX  OptFloat64
	PositionAccuracyDOPY  OptFloat64
	PositionAccuracyDOPXY OptFloat64
	Frame         Frame
}

// AdsbReport is the ADS-B target report record (Cat021).
type AdsbReport struct {
	DataSource      DataSource
	TimeOfDay       Seconds
	Position        Position2D
	TargetAddress   OptUint32
	FlightLevel     OptFloat64
	GeometricHeight OptFloat64 // metres
	GroundSpeed     OptFloat64 // m/s
	TrueTrackAngle  OptFloat64 // radians
	Callsign        OptString
	EmitterCategory OptUint8
	MOPSVersion     OptUint8
	Frame           Frame
}

// SystemTrack is the SDPS-calculated system track record (Cat062).
type SystemTrack struct {
	DataSource       DataSource
	TrackNumber      OptUint16
	TimeOfTrackInfo  Seconds
	Position         Position2D
	CartesianX       OptFloat64
	CartesianY       OptFloat64
	BarometricAlt    OptFloat64 // metres
	GeometricAlt     OptFloat64 // metres
	GroundSpeed      OptFloat64
	Heading          OptFloat64
	Mode3ACode       OptUint16
	Callsign         OptString
	TrackConfirmed   asterix.Tres
	TrackCoasted     asterix.Tres
	SimulatedTrack   asterix.Tres
	Frame            Frame
}

// ServiceStep is one step of a service/status message (Cat002/034/065),
// carrying the message-type-specific fields those categories report.
type ServiceStep struct {
	DataSource   DataSource
	MessageType  OptUint8
	TimeOfDay    Seconds
	SectorNumber OptFloat64 // degrees
	Frame        Frame
}

// RadarService is the sensor-status/service record (Cat063), reporting
// per-sensor configuration and availability.
type RadarService struct {
	DataSource      DataSource
	TimeOfDay       Seconds
	SensorConnected asterix.Tres
	PrimaryAvail    asterix.Tres
	SecondaryAvail  asterix.Tres
	ModeSAvail      asterix.Tres
	Frame           Frame
}

// Seconds is a presence-qualified time-of-day in seconds since UTC
// midnight (already scaled from the wire's 1/128 s units).
type Seconds struct {
	Present bool
	Value   float64
}

// OptFloat64/OptUint8/OptUint16/OptUint32/OptString are "presence + value"
// pairs for fields with no wire quality bit.
type (
	OptFloat64 struct {
		Present bool
		Value   float64
	}
	OptUint8 struct {
		Present bool
		Value   uint8
	}
	OptUint16 struct {
		Present bool
		Value   uint16
	}
	OptUint32 struct {
		Present bool
		Value   uint32
	}
	OptString struct {
		Present bool
		Value   string
	}
	OptTime struct {
		Present bool
		Value   time.Time
	}
)
