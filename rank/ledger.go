package rank

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/rally/parameter"
	"github.com/lixenwraith/rally/store"
)

// ErrInvalidRecord marks a decoded record with fields out of range
var ErrInvalidRecord = errors.New("rank: record out of range")

// Encode serializes a state into the persisted record format
func Encode(s State) ([]byte, error) {
	return json.Marshal(s)
}

// Decode parses and validates a persisted record
func Decode(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("rank: malformed record: %w", err)
	}
	if !s.Valid() {
		return Default(), fmt.Errorf("%w: %+v", ErrInvalidRecord, s)
	}
	return s, nil
}

// Ledger owns the rank state and is the only writer of its record
type Ledger struct {
	kv    store.KV
	state State
	log   zerolog.Logger
}

// NewLedger loads the record from kv, falling back to defaults
func NewLedger(kv store.KV, log zerolog.Logger) *Ledger {
	l := &Ledger{kv: kv, log: log}
	l.state = l.load()
	return l
}

// load never fails, an absent or unusable record yields the default state
func (l *Ledger) load() State {
	data, err := l.kv.Get(parameter.RankRecordKey)
	if errors.Is(err, store.ErrNotFound) {
		l.log.Info().Msg("No rank record, starting fresh")
		return Default()
	}
	if err != nil {
		l.log.Warn().Err(err).Msg("Rank record unreadable, using defaults")
		return Default()
	}
	s, err := Decode(data)
	if err != nil {
		l.log.Warn().Err(err).Msg("Rank record rejected, using defaults")
		return Default()
	}
	l.log.Info().Int("rank", s.Rank).Int("tier", s.Tier).Int("points", s.Points).Msg("Rank record loaded")
	return s
}

// State returns the current in-memory record
func (l *Ledger) State() State {
	return l.state
}

// Record applies a match result and persists the new state
// The in-memory state advances even when the write fails
func (l *Ledger) Record(won bool) (State, error) {
	before := l.state
	l.state = Apply(l.state, won)
	l.log.Info().
		Bool("won", won).
		Int("rank", l.state.Rank).
		Int("tier", l.state.Tier).
		Int("points", l.state.Points).
		Bool("promoted", l.state.Rank > before.Rank || (l.state.Rank == before.Rank && l.state.Tier > before.Tier)).
		Msg("Rank updated")

	if err := l.save(); err != nil {
		return l.state, err
	}
	return l.state, nil
}

func (l *Ledger) save() error {
	data, err := Encode(l.state)
	if err != nil {
		return fmt.Errorf("failed to encode rank record: %w", err)
	}
	if err := l.kv.Put(parameter.RankRecordKey, data); err != nil {
		return fmt.Errorf("failed to persist rank record: %w", err)
	}
	return nil
}
