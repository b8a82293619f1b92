// Package logr adapts the decoder's decode-event stream to a pluggable
// github.com/go-logr/logr.Logger, so an embedding application can route
// idefix's own diagnostics into whatever structured-logging backend it
// already runs (zap, logrus, klog) without this module depending on any
// one of them directly.
package logr

import (
	"github.com/go-logr/logr"

	"github.com/davidkohl/gobelix/asterix"
	"github.com/davidkohl/gobelix/domain"
)

// Sink logs every processed record at V(1) and never itself fails or
// skips a record; it exists purely as an observability tap alongside a
// real persistence sink in a domain.Sink chain built by the caller.
type Sink struct {
	log logr.Logger
}

// New wraps log as a domain.Sink.
func New(log logr.Logger) *Sink {
	return &Sink{log: log.WithName("asterix-decode")}
}

func (s *Sink) ProcessRadarTarget(r *domain.RadarTarget) asterix.Result {
	s.log.V(1).Info("radar target", "sac", r.DataSource.SAC, "sic", r.DataSource.SIC, "track", r.TrackNumber.Value)
	return asterix.OK
}

func (s *Sink) ProcessMlatReport(r *domain.MlatReport) asterix.Result {
	s.log.V(1).Info("mlat report", "sac", r.DataSource.SAC, "sic", r.DataSource.SIC)
	return asterix.OK
}

func (s *Sink) ProcessAdsbReport(r *domain.AdsbReport) asterix.Result {
	s.log.V(1).Info("adsb report", "address", r.TargetAddress.Value)
	return asterix.OK
}

func (s *Sink) ProcessSystemTrack(r *domain.SystemTrack) asterix.Result {
	s.log.V(1).Info("system track", "track", r.TrackNumber.Value)
	return asterix.OK
}

func (s *Sink) ProcessServiceStep(r *domain.ServiceStep) asterix.Result {
	s.log.V(1).Info("service step", "messageType", r.MessageType.Value)
	return asterix.OK
}

func (s *Sink) ProcessRadarService(r *domain.RadarService) asterix.Result {
	s.log.V(1).Info("radar service", "sac", r.DataSource.SAC, "sic", r.DataSource.SIC)
	return asterix.OK
}
