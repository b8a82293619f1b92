package domain

import (
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
)

// Dispatcher owns the Category -> Builder mapping and forwards every
// completed DomainRecord to the category-appropriate Sink method. A
// decoder calls Dispatch once per decoded record; the category drives
// both which Builder runs and which Sink method receives the result.
type Dispatcher struct {
	sink     Sink
	builders map[asterix.Category]Builder
}

// NewDispatcher wires the builtin builders for every category this tree
// models a DomainRecord for. Categories with no DomainRecord mapping
// (the ARTAS family, the cat008/011/017/019/023 group) are not routed
// here; callers decode those for their listing/log output only.
func NewDispatcher(sink Sink) *Dispatcher {
	return &Dispatcher{
		sink: sink,
		builders: map[asterix.Category]Builder{
			asterix.Cat001: RadarTargetBuilder{},
			asterix.Cat048: RadarTargetBuilder{},
			asterix.Cat020: MlatReportBuilder{},
			asterix.Cat021: AdsbReportBuilder{},
			asterix.Cat062: SystemTrackBuilder{},
			asterix.Cat002: ServiceStepBuilder{},
			asterix.Cat034: ServiceStepBuilder{},
			asterix.Cat065: ServiceStepBuilder{},
			asterix.Cat063: RadarServiceBuilder{},
		},
	}
}

// Dispatch builds the domain record for cat from items and forwards it
// to the matching Sink method. ctx is the DecoderContext the record was
// decoded under, so the builder can stamp Frame provenance; it may be nil
// when items didn't come from a live decode. An empty items map means the
// record's FSPEC carried no data items at all (spec.md §3.2) — that case
// is already filtered out before a real decode reaches here, but Dispatch
// skips it too rather than handing an empty record to a builder. Returns
// an error if cat has no builder registered; the caller decides whether
// that's fatal.
func (d *Dispatcher) Dispatch(cat asterix.Category, items map[string]asterix.DataItem, ctx *asterix.DecoderContext) (asterix.Result, error) {
	if len(items) == 0 {
		return asterix.Skip, nil
	}

	b, ok := d.builders[cat]
	if !ok {
		return asterix.Fail, fmt.Errorf("%w: no domain builder registered for category %d", asterix.ErrUnknownDataItem, cat)
	}

	switch record := b.Build(items, ctx).(type) {
	case *RadarTarget:
		return d.sink.ProcessRadarTarget(record), nil
	case *MlatReport:
		return d.sink.ProcessMlatReport(record), nil
	case *AdsbReport:
		return d.sink.ProcessAdsbReport(record), nil
	case *SystemTrack:
		return d.sink.ProcessSystemTrack(record), nil
	case *ServiceStep:
		return d.sink.ProcessServiceStep(record), nil
	case *RadarService:
		return d.sink.ProcessRadarService(record), nil
	default:
		return asterix.Fail, fmt.Errorf("%w: builder for category %d returned unhandled type %T", asterix.ErrUnknownDataItem, cat, record)
	}
}
