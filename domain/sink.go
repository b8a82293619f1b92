package domain

import "github.com/davidkohl/gobelix/asterix"

// Sink is the domain-object collaborator every category's Builder hands
// a completed record to. Implementations decide persistence, filtering and
// rendering; the decoder itself never blocks on them beyond the call.
type Sink interface {
	ProcessRadarTarget(*RadarTarget) asterix.Result
	ProcessMlatReport(*MlatReport) asterix.Result
	ProcessAdsbReport(*AdsbReport) asterix.Result
	ProcessSystemTrack(*SystemTrack) asterix.Result
	ProcessServiceStep(*ServiceStep) asterix.Result
	ProcessRadarService(*RadarService) asterix.Result
}

// DiscardSink drops every record with OK, useful as a default when only
// the listing output (not the domain model) is wanted.
type DiscardSink struct{}

func (DiscardSink) ProcessRadarTarget(*RadarTarget) asterix.Result   { return asterix.OK }
func (DiscardSink) ProcessMlatReport(*MlatReport) asterix.Result     { return asterix.OK }
func (DiscardSink) ProcessAdsbReport(*AdsbReport) asterix.Result     { return asterix.OK }
func (DiscardSink) ProcessSystemTrack(*SystemTrack) asterix.Result   { return asterix.OK }
func (DiscardSink) ProcessServiceStep(*ServiceStep) asterix.Result   { return asterix.OK }
func (DiscardSink) ProcessRadarService(*RadarService) asterix.Result { return asterix.OK }

// CollectorSink accumulates every record it sees in memory, for tests and
// for the idefix CLI's non-streaming inspection commands.
type CollectorSink struct {
	RadarTargets   []*RadarTarget
	MlatReports    []*MlatReport
	AdsbReports    []*AdsbReport
	SystemTracks   []*SystemTrack
	ServiceSteps   []*ServiceStep
	RadarServices  []*RadarService
}

func NewCollectorSink() *CollectorSink { return &CollectorSink{} }

func (c *CollectorSink) ProcessRadarTarget(r *RadarTarget) asterix.Result {
	c.RadarTargets = append(c.RadarTargets, r)
	return asterix.OK
}

func (c *CollectorSink) ProcessMlatReport(r *MlatReport) asterix.Result {
	c.MlatReports = append(c.MlatReports, r)
	return asterix.OK
}

func (c *CollectorSink) ProcessAdsbReport(r *AdsbReport) asterix.Result {
	c.AdsbReports = append(c.AdsbReports, r)
	return asterix.OK
}

func (c *CollectorSink) ProcessSystemTrack(r *SystemTrack) asterix.Result {
	c.SystemTracks = append(c.SystemTracks, r)
	return asterix.OK
}

func (c *CollectorSink) ProcessServiceStep(r *ServiceStep) asterix.Result {
	c.ServiceSteps = append(c.ServiceSteps, r)
	return asterix.OK
}

func (c *CollectorSink) ProcessRadarService(r *RadarService) asterix.Result {
	c.RadarServices = append(c.RadarServices, r)
	return asterix.OK
}
