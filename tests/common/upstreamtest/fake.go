//go:build unit || e2e

// Package upstreamtest is an in-memory stand-in for the reservation and timer API.
package upstreamtest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type Reservation struct {
	ID             string
	ParkingPointID string
	LicensePlate   string
	Timers         []map[string]any
}

type Call struct {
	Method string
	Path   string
	Cookie string
	Body   map[string]any
}

// Server serves a single session. Requests with any other Cookie get 401.
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	token        string
	reservations []*Reservation
	failDeletes  map[string]int
	calls        []Call
	nextID       int
}

func NewServer(t *testing.T, token string, reservations ...*Reservation) *Server {
	t.Helper()
	s := &Server{
		token:        token,
		reservations: reservations,
		failDeletes:  map[string]int{},
		nextID:       100,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /reservationapi/reservations", s.listReservations)
	mux.HandleFunc("GET /reservationapi/reservations/{id}/plate", s.plate)
	mux.HandleFunc("GET /timerapi/reservations/{id}/timers", s.listTimers)
	mux.HandleFunc("GET /timerapi/reservations/{id}/timers/state", s.state)
	mux.HandleFunc("GET /timerapi/reservations/{id}/timers/configuration", s.configuration)
	mux.HandleFunc("POST /timerapi/reservations/{id}/timers", s.createTimer)
	mux.HandleFunc("DELETE /timerapi/reservations/{id}/timers/{timerId}", s.deleteTimer)

	s.Server = httptest.NewServer(s.record(mux))
	t.Cleanup(s.Close)
	return s
}

// FailDelete makes deletes of timerID answer with status.
func (s *Server) FailDelete(timerID string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failDeletes[timerID] = status
}

func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallsTo counts calls with the given method and path.
func (s *Server) CallsTo(method, path string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) TimerIDs(reservationID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.find(reservationID)
	if r == nil {
		return nil
	}
	ids := make([]string, 0, len(r.Timers))
	for _, tm := range r.Timers {
		ids = append(ids, fmt.Sprint(tm["timerId"]))
	}
	return ids
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := Call{Method: r.Method, Path: r.URL.Path, Cookie: r.Header.Get("Cookie")}
		if r.Body != nil && r.ContentLength != 0 {
			_ = json.NewDecoder(r.Body).Decode(&call.Body)
		}
		s.mu.Lock()
		s.calls = append(s.calls, call)
		s.mu.Unlock()

		if call.Cookie != s.token {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"session expired"}`))
			return
		}
		if call.Body != nil {
			r = r.WithContext(withBody(r.Context(), call.Body))
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listReservations(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	rows := make([]map[string]any, 0, len(s.reservations))
	for _, r := range s.reservations {
		rows = append(rows, map[string]any{"id": r.ID, "parkingPointId": r.ParkingPointID})
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) plate(w http.ResponseWriter, r *http.Request) {
	s.withReservation(w, r, func(rsv *Reservation) {
		writeJSON(w, http.StatusOK, map[string]any{"licensePlate": rsv.LicensePlate})
	})
}

func (s *Server) listTimers(w http.ResponseWriter, r *http.Request) {
	s.withReservation(w, r, func(rsv *Reservation) {
		writeJSON(w, http.StatusOK, rsv.Timers)
	})
}

func (s *Server) state(w http.ResponseWriter, r *http.Request) {
	s.withReservation(w, r, func(*Reservation) {
		writeJSON(w, http.StatusOK, map[string]any{"state": "ON", "consumption": 1.25})
	})
}

func (s *Server) configuration(w http.ResponseWriter, r *http.Request) {
	s.withReservation(w, r, func(*Reservation) {
		writeJSON(w, http.StatusOK, map[string]any{"temperature": -4})
	})
}

func (s *Server) createTimer(w http.ResponseWriter, r *http.Request) {
	body := bodyFrom(r.Context())
	s.withReservation(w, r, func(rsv *Reservation) {
		s.nextID++
		created := map[string]any{"timerId": s.nextID}
		for k, v := range body {
			created[k] = v
		}
		rsv.Timers = append(rsv.Timers, created)
		writeJSON(w, http.StatusOK, created)
	})
}

func (s *Server) deleteTimer(w http.ResponseWriter, r *http.Request) {
	timerID := r.PathValue("timerId")
	s.withReservation(w, r, func(rsv *Reservation) {
		if status, ok := s.failDeletes[timerID]; ok {
			writeJSON(w, status, map[string]any{"message": "cannot delete " + timerID})
			return
		}
		kept := rsv.Timers[:0]
		found := false
		for _, tm := range rsv.Timers {
			if fmt.Sprint(tm["timerId"]) == timerID {
				found = true
				continue
			}
			kept = append(kept, tm)
		}
		rsv.Timers = kept
		if !found {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "no such timer"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// withReservation runs fn under the server lock.
func (s *Server) withReservation(w http.ResponseWriter, r *http.Request, fn func(*Reservation)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rsv := s.find(r.PathValue("id"))
	if rsv == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "no such reservation"})
		return
	}
	fn(rsv)
}

func (s *Server) find(id string) *Reservation {
	for _, r := range s.reservations {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type bodyKey struct{}

func withBody(ctx context.Context, body map[string]any) context.Context {
	return context.WithValue(ctx, bodyKey{}, body)
}

func bodyFrom(ctx context.Context) map[string]any {
	body, _ := ctx.Value(bodyKey{}).(map[string]any)
	return body
}
