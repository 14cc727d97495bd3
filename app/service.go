package app

// Package app is the boundary the visualization shell binds to. A
// Service holds one session per opened telemetry log and exposes the
// read-only query surface the chart frontend renders from. Sessions are
// immutable after open, so every query is safe under concurrent readers;
// the session map itself is the only mutable state here.

import (
	"fmt"
	"sort"
	"sync"

	"telemview/app/csvdata"
	"telemview/app/fileloader"
	"telemview/app/settings"

	"github.com/google/uuid"
)

// Service is the query facade over all opened telemetry logs.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*Session // keyed by session ID
}

// NewService creates an empty Service.
func NewService() *Service {
	return &Service{
		sessions: make(map[string]*Session),
	}
}

// SessionInfo is the session metadata handed to the frontend.
type SessionInfo struct {
	ID          string `json:"id"`
	Path        string `json:"path"`
	Fingerprint string `json:"fingerprint"`
	Rows        int    `json:"rows"`
	Columns     int    `json:"columns"`
}

// Open loads the telemetry log at path with the default ingest profile
// and registers a session for it.
func (s *Service) Open(path string) (SessionInfo, error) {
	return s.OpenWithProfile(path, settings.DefaultProfile())
}

// OpenWithProfile loads the telemetry log at path using the given ingest
// profile. The whole file is read here, once; all later queries run
// against the in-memory table. Load failures surface unchanged from the
// fileloader and leave no session behind.
func (s *Service) OpenWithProfile(path string, profile settings.Profile) (SessionInfo, error) {
	ds, err := fileloader.LoadWithOptions(path, fileloader.Options{
		Delimiter: profile.DelimiterRune(),
		Quote:     profile.QuoteRune(),
	})
	if err != nil {
		return SessionInfo{}, err
	}

	session := &Session{
		id:          uuid.New().String(),
		path:        path,
		fingerprint: ds.Fingerprint,
		profile:     profile,
		table:       csvdata.New(ds),
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()

	return session.Info(), nil
}

// Session returns the open session with the given ID.
func (s *Service) Session(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("no open session with id %s", id)
	}
	return session, nil
}

// Close removes the session with the given ID.
func (s *Service) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("no open session with id %s", id)
	}
	delete(s.sessions, id)
	return nil
}

// Sessions lists the open sessions, ordered by path for stable display.
func (s *Service) Sessions() []SessionInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	infos := make([]SessionInfo, 0, len(s.sessions))
	for _, session := range s.sessions {
		infos = append(infos, session.Info())
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Path == infos[j].Path {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].Path < infos[j].Path
	})
	return infos
}
