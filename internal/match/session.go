package match

import (
	"errors"
	"sync"

	"github.com/Manishrdy/SimCricketX-sub000/internal/engine"
	"github.com/Manishrdy/SimCricketX-sub000/internal/team"
	"github.com/Manishrdy/SimCricketX-sub000/pkg/utils"
)

// Session pairs one match's state with its random source. All transitions on
// a session run under its mutex, so advances on one match never interleave
// while unrelated matches simulate concurrently.
type Session struct {
	mu    sync.Mutex
	State *MatchState
	rng   engine.RandomSource
	gen   *engine.OutcomeGenerator
}

// Do runs fn with exclusive ownership of the session's state.
func (s *Session) Do(fn func(*MatchState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.State)
}

// Advance simulates one delivery under the session lock.
func (s *Session) Advance(tables *engine.Tables) (*BallEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.State.AdvanceBall(s.rng, s.gen, tables)
}

// Manager is the in-memory registry of live match sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	tables   *engine.Tables

	// forcedSeed, when set, makes every new match deterministic. Used for
	// reproducible environments; individual requests may also carry a seed.
	forcedSeed *uint64
}

var ErrMatchNotFound = errors.New("match not found")

// NewManager builds a registry around loaded configuration tables.
func NewManager(tables *engine.Tables, forcedSeed *uint64) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		tables:   tables,
		forcedSeed: forcedSeed,
	}
}

// Tables exposes the read-only configuration.
func (mgr *Manager) Tables() *engine.Tables { return mgr.tables }

// StartMatch validates the squads, applies the toss, and registers a session.
func (mgr *Manager) StartMatch(teamA, teamB team.Team, pitch engine.PitchType, tossWinner int, decision TossDecision, seed *uint64) (*Session, error) {
	id := utils.GenerateRandomToken(12)
	state, err := NewMatch(id, teamA, teamB, pitch)
	if err != nil {
		return nil, err
	}
	if err := state.ApplyToss(tossWinner, decision); err != nil {
		return nil, err
	}

	var rng engine.RandomSource
	switch {
	case seed != nil:
		rng = engine.NewSeededRNG(*seed)
	case mgr.forcedSeed != nil:
		rng = engine.NewSeededRNG(*mgr.forcedSeed)
	default:
		rng = engine.DefaultRNG()
	}
	session := &Session{
		State: state,
		rng:   rng,
		gen:   engine.NewOutcomeGenerator(rng),
	}

	mgr.mu.Lock()
	mgr.sessions[id] = session
	mgr.mu.Unlock()
	return session, nil
}

// Get returns the session for a match id.
func (mgr *Manager) Get(id string) (*Session, error) {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()
	session, ok := mgr.sessions[id]
	if !ok {
		return nil, ErrMatchNotFound
	}
	return session, nil
}

// Archive drops a completed match from the registry.
func (mgr *Manager) Archive(id string) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	delete(mgr.sessions, id)
}

// Count reports live sessions, for the health endpoint.
func (mgr *Manager) Count() int {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()
	return len(mgr.sessions)
}
