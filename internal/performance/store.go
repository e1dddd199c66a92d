package performance

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoLog is returned by Append when no log exists for the learner.
// It indicates a caller that skipped GetOrCreate.
var ErrNoLog = errors.New("no performance log for learner")

// Log is the ordered answer history of one learner. Records are kept in
// insertion order, which is not necessarily timestamp order.
type Log struct {
	LearnerID   string
	DisplayName string
	Records     []AnswerRecord
}

// SessionRecords returns the records that belong to the given session.
func (l *Log) SessionRecords(sessionID string) []AnswerRecord {
	var out []AnswerRecord
	for _, r := range l.Records {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out
}

// Sessions returns the distinct session ids in first-seen order.
func (l *Log) Sessions() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range l.Records {
		if !seen[r.SessionID] {
			seen[r.SessionID] = true
			out = append(out, r.SessionID)
		}
	}
	return out
}

// Store holds one Log per learner. It defines no locking; callers that
// share a Store across goroutines must serialize access themselves.
type Store struct {
	logs map[string]*Log
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{logs: make(map[string]*Log)}
}

// GetOrCreate returns the log for learnerID, creating an empty one if absent.
// The display name is always refreshed to displayName.
func (s *Store) GetOrCreate(learnerID, displayName string) *Log {
	l, ok := s.logs[learnerID]
	if !ok {
		l = &Log{LearnerID: learnerID}
		s.logs[learnerID] = l
	}
	l.DisplayName = displayName
	return l
}

// Append adds rec to the end of the learner's log. The log must already
// exist. No deduplication takes place.
func (s *Store) Append(learnerID string, rec AnswerRecord) error {
	l, ok := s.logs[learnerID]
	if !ok {
		return fmt.Errorf("append for %q: %w", learnerID, ErrNoLog)
	}
	l.Records = append(l.Records, rec)
	return nil
}

// Get returns the learner's log, or false if the learner is unknown.
func (s *Store) Get(learnerID string) (*Log, bool) {
	l, ok := s.logs[learnerID]
	return l, ok
}

// Learners returns every learner id, sorted.
func (s *Store) Learners() []string {
	ids := make([]string, 0, len(s.logs))
	for id := range s.logs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
