// Package msgpacksink appends each processed record to a per-category
// msgpack-encoded file, a compact alternative to the plain-text listing
// output for downstream batch consumers.
package msgpacksink

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/davidkohl/gobelix/asterix"
	"github.com/davidkohl/gobelix/domain"
	"github.com/vmihailenco/msgpack/v5"
)

// Sink writes one msgpack-encoded record per call, appending to a
// category-named file under dir.
type Sink struct {
	dir string

	mu    sync.Mutex
	files map[string]*os.File
}

// New returns a Sink writing under dir, which must already exist.
func New(dir string) *Sink {
	return &Sink{dir: dir, files: make(map[string]*os.File)}
}

func (s *Sink) writer(name string) (*os.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.files[name]; ok {
		return f, nil
	}
	f, err := os.OpenFile(filepath.Join(s.dir, name+".msgpack"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %s sink file: %w", name, err)
	}
	s.files[name] = f
	return f, nil
}

func (s *Sink) append(name string, v any) asterix.Result {
	f, err := s.writer(name)
	if err != nil {
		return asterix.Fail
	}
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(v); err != nil {
		return asterix.Fail
	}
	return asterix.OK
}

func (s *Sink) ProcessRadarTarget(r *domain.RadarTarget) asterix.Result {
	return s.append("radar_targets", r)
}

func (s *Sink) ProcessMlatReport(r *domain.MlatReport) asterix.Result {
	return s.append("mlat_reports", r)
}

func (s *Sink) ProcessAdsbReport(r *domain.AdsbReport) asterix.Result {
	return s.append("adsb_reports", r)
}

func (s *Sink) ProcessSystemTrack(r *domain.SystemTrack) asterix.Result {
	return s.append("system_tracks", r)
}

func (s *Sink) ProcessServiceStep(r *domain.ServiceStep) asterix.Result {
	return s.append("service_steps", r)
}

func (s *Sink) ProcessRadarService(r *domain.RadarService) asterix.Result {
	return s.append("radar_services", r)
}

// Close flushes and closes every file this sink has opened.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var firstErr error
	for _, f := range s.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
