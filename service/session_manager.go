// Package service keeps in-memory grid sessions for the HTTP shell. Each
// session owns one engine.Engine and serializes access to it.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/grid"
)

var (
	// ErrSessionNotFound indicates an unknown or deleted session id.
	ErrSessionNotFound = errors.New("service: session not found")
	// ErrDimensionTooLarge indicates a dimension above the configured maximum.
	ErrDimensionTooLarge = errors.New("service: dimension exceeds limit")
)

// Snapshot is a read-only view of a session grid.
type Snapshot struct {
	ID        uuid.UUID
	Dimension int
	Rows      []string
	Start     *grid.Position // nil when unset
	Target    *grid.Position // nil when unset
}

type session struct {
	engine *engine.Engine
	mu     sync.Mutex
}

// SessionManager maps session ids to engines.
type SessionManager struct {
	sessions     map[uuid.UUID]*session
	maxDimension int
	engineOpts   []engine.Option
	logger       *slog.Logger
	sync.RWMutex
}

// Config holds the settings of a SessionManager.
type Config struct {
	MaxDimension  int             // Upper bound for Create; <= 0 means unbounded
	EngineOptions []engine.Option // Applied to every engine the manager creates
	Logger        *slog.Logger    // Session lifecycle logs; defaults to slog.Default()
}

// NewSessionManager returns an empty manager.
func NewSessionManager(c Config) *SessionManager {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		sessions:     make(map[uuid.UUID]*session),
		maxDimension: c.MaxDimension,
		engineOpts:   c.EngineOptions,
		logger:       logger,
	}
}

// Create allocates an n×n grid session and returns its id.
// Returns grid.ErrInvalidDimension or ErrDimensionTooLarge.
func (m *SessionManager) Create(n int) (uuid.UUID, error) {
	if m.maxDimension > 0 && n > m.maxDimension {
		return uuid.Nil, fmt.Errorf("%w: %d > %d", ErrDimensionTooLarge, n, m.maxDimension)
	}
	eng, err := engine.New(n, m.engineOpts...)
	if err != nil {
		return uuid.Nil, err
	}

	m.Lock()
	id := uuid.New()
	for {
		if _, ok := m.sessions[id]; !ok {
			break
		}
		id = uuid.New()
	}
	m.sessions[id] = &session{engine: eng}
	m.Unlock()

	m.logger.Info("session_created",
		slog.String("session_id", id.String()),
		slog.Int("dimension", n),
	)
	return id, nil
}

// Get returns a snapshot of the session grid.
func (m *SessionManager) Get(id uuid.UUID) (Snapshot, error) {
	var snap Snapshot
	err := m.With(id, func(eng *engine.Engine) error {
		snap = snapshot(id, eng.Grid())
		return nil
	})
	return snap, err
}

// With runs fn with exclusive access to the session engine and returns its
// error. Returns ErrSessionNotFound for an unknown id.
func (m *SessionManager) With(id uuid.UUID, fn func(*engine.Engine) error) error {
	m.RLock()
	s, ok := m.sessions[id]
	m.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.engine)
}

// Delete removes a session. Returns ErrSessionNotFound for an unknown id.
func (m *SessionManager) Delete(id uuid.UUID) error {
	m.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	m.logger.Info("session_deleted", slog.String("session_id", id.String()))
	return nil
}

// Len returns the number of live sessions.
func (m *SessionManager) Len() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.sessions)
}

func snapshot(id uuid.UUID, g *grid.Grid) Snapshot {
	snap := Snapshot{ID: id, Dimension: g.Dimension(), Rows: g.Rows()}
	if p, ok := g.Start(); ok {
		snap.Start = &p
	}
	if p, ok := g.Target(); ok {
		snap.Target = &p
	}
	return snap
}
