package database

import (
	"sync/atomic"

	"gorm.io/gorm"
)

// State describes the lifecycle of the shared connection pool.
type State int32

const (
	// StateUnconnected means no connection attempt has been made.
	StateUnconnected State = iota
	// StateConnected means the pool is open and usable.
	StateConnected
	// StateFailed means the connection attempt failed and the service runs
	// in its degraded, database-less mode.
	StateFailed
)

// String implements fmt.Stringer for log output.
func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateFailed:
		return "failed"
	default:
		return "unconnected"
	}
}

// Store owns the shared gorm pool and its connection state. It is constructed
// once at startup and injected into every component that needs the database;
// the state is written once during initialization and read atomically per
// request thereafter.
type Store struct {
	db    *gorm.DB
	state atomic.Int32
}

// NewStore wraps an open gorm pool in a connected store.
func NewStore(db *gorm.DB) *Store {
	s := &Store{db: db}
	s.state.Store(int32(StateConnected))
	return s
}

// NewUnavailableStore returns a store representing a failed connection
// attempt. Every availability check against it reports the database as
// absent.
func NewUnavailableStore() *Store {
	s := &Store{}
	s.state.Store(int32(StateFailed))
	return s
}

// DB exposes the underlying gorm handle. It is nil unless Available reports
// true.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// State returns the current connection state.
func (s *Store) State() State {
	return State(s.state.Load())
}

// Available reports whether the pool can serve queries.
func (s *Store) Available() bool {
	return s.State() == StateConnected
}
