// asterix/context.go
package asterix

import "time"

// DecoderContext bundles the mutable state a single category decoder needs
// to carry across records: the time-of-day fill-up baseline, which
// reference-document version is active, and diagnostic frame markers. One
// CategoryDecoder owns exactly one DecoderContext, so two Decoder instances
// (or two categories in the same Decoder) never share mutable state and can
// safely run on separate goroutines.
type DecoderContext struct {
	tod TimeOfDayFiller

	// SelectedVersion records which reference-document edition this
	// context's UAP was constructed against, for categories (like Cat020)
	// whose item semantics branch by version.
	SelectedVersion string

	// LineNumber counts the messages decoded with this context: Decoder
	// increments it once per Decode call, and the domain package copies it
	// onto each record it builds.
	LineNumber int

	// FrameDate/FrameTime are optional operator-supplied frame markers
	// (e.g. from a capture file's own header). The domain package copies
	// them onto each record it builds; time-of-day fill-up does not read
	// them.
	FrameDate time.Time
	FrameTime time.Time
}

// NewDecoderContext returns a context with no time-of-day baseline yet.
func NewDecoderContext() *DecoderContext {
	return &DecoderContext{}
}

// TODFiller is implemented by data items whose value is a time-of-day
// (full or truncated) that participates in a category's fill-up baseline
// (spec.md §4.2). CategoryDecoder calls FillupTOD on every decoded item
// that implements this interface immediately after a successful Decode,
// passing the DecoderContext that owns that category's running baseline.
type TODFiller interface {
	FillupTOD(ctx *DecoderContext) error
}

// FillupTOD reconstructs a truncated 16-bit time-of-day partial against
// this context's running baseline. See TimeOfDayFiller.Fillup.
func (c *DecoderContext) FillupTOD(partial uint16) (uint32, bool) {
	return c.tod.Fillup(partial)
}

// ObserveTOD records a fully-qualified time-of-day as the new baseline.
func (c *DecoderContext) ObserveTOD(full uint32) {
	c.tod.Observe(full)
}

// ResetTOD clears the time-of-day baseline, e.g. when a new capture file
// or a sensor restart is detected upstream.
func (c *DecoderContext) ResetTOD() {
	c.tod.Reset()
}
