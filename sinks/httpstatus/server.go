// Package httpstatus exposes a small JWT-authenticated HTTP status
// endpoint reporting per-category record counts, so an operator can poll
// liveness of a running idefix decode pipeline without tailing its text
// listing output.
package httpstatus

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
)

// Counters holds the running per-category totals the status endpoint
// reports; each field is updated with atomic.AddInt64 by the sink chain.
type Counters struct {
	RadarTargets  int64
	MlatReports   int64
	AdsbReports   int64
	SystemTracks  int64
	ServiceSteps  int64
	RadarServices int64
}

type statusResponse struct {
	Uptime        string `json:"uptime"`
	RadarTargets  int64  `json:"radar_targets"`
	MlatReports   int64  `json:"mlat_reports"`
	AdsbReports   int64  `json:"adsb_reports"`
	SystemTracks  int64  `json:"system_tracks"`
	ServiceSteps  int64  `json:"service_steps"`
	RadarServices int64  `json:"radar_services"`
}

// Server is the /status HTTP endpoint, gated by a shared-secret JWT.
type Server struct {
	counters  *Counters
	startedAt time.Time
	signKey   []byte
	router    chi.Router
}

// New builds a Server whose /status route requires a bearer JWT signed
// with signKey (HS256), and whose /healthz route is unauthenticated.
func New(counters *Counters, signKey []byte) *Server {
	s := &Server{counters: counters, startedAt: time.Now(), signKey: signKey}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealthz)
	r.Group(func(r chi.Router) {
		r.Use(s.requireJWT)
		r.Get("/status", s.handleStatus)
	})
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Uptime:        time.Since(s.startedAt).String(),
		RadarTargets:  atomic.LoadInt64(&s.counters.RadarTargets),
		MlatReports:   atomic.LoadInt64(&s.counters.MlatReports),
		AdsbReports:   atomic.LoadInt64(&s.counters.AdsbReports),
		SystemTracks:  atomic.LoadInt64(&s.counters.SystemTracks),
		ServiceSteps:  atomic.LoadInt64(&s.counters.ServiceSteps),
		RadarServices: atomic.LoadInt64(&s.counters.RadarServices),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) requireJWT(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == header {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		_, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			return s.signKey, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
