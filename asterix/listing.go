// asterix/listing.go
package asterix

import (
	"fmt"
	"io"
)

// Sink receives decoded messages and reports back whether the message was
// accepted, deliberately skipped, or failed downstream processing. Multiple
// sinks (a file writer, a dedup cache, an HTTP status pusher) can observe
// the same decode stream by each wrapping the same *AsterixMessage.
type Sink interface {
	Accept(msg *AsterixMessage) Result
}

// WriterSink renders each message with String() and writes it to an
// io.Writer, mirroring the plain-text output idefix's dump command already
// produces, but reachable as a Sink so replay/config-driven pipelines can
// chain it with other sinks uniformly.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink wraps w as a Sink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Accept(msg *AsterixMessage) Result {
	if msg == nil {
		return Skip
	}
	if _, err := fmt.Fprintln(s.w, msg.String()); err != nil {
		return Fail
	}
	return OK
}

// MultiSink fans a message out to every sink in order, returning the most
// severe result observed (Fail beats Skip beats OK), so a caller can decide
// whether to log a problem without needing to inspect each sink itself.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink combines sinks into one.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) Accept(msg *AsterixMessage) Result {
	worst := OK
	for _, s := range m.sinks {
		switch r := s.Accept(msg); r {
		case Fail:
			worst = Fail
		case Skip:
			if worst == OK {
				worst = Skip
			}
		}
	}
	return worst
}
