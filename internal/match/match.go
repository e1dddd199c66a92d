// Package match records the answer events of a quiz match into learner
// performance logs.
package match

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/quizduel/internal/performance"
)

var validate = validator.New()

// Player is a learner taking part in a match.
type Player struct {
	ID   string
	Name string
}

// Match groups the answer events of one game.
type Match struct {
	ID      string
	Players []Player
}

// New starts a match between the given players with a fresh id.
func New(players ...Player) *Match {
	return &Match{ID: uuid.NewString(), Players: players}
}

// Answer is one answer given during a match.
type Answer struct {
	PlayerID        string `validate:"required"`
	QuestionID      string `validate:"required"`
	QuestionText    string
	Subject         performance.Subject    `validate:"gte=0,lte=5"`
	Difficulty      performance.Difficulty `validate:"gte=0,lte=2"`
	ChosenIndex     int                    `validate:"gte=-1,lte=3"`
	CorrectIndex    int                    `validate:"gte=0,lte=3"`
	ResponseSeconds float64
	At              time.Time `validate:"required"`
}

// Saver persists a log after it changes.
type Saver interface {
	SaveLog(ctx context.Context, log *performance.Log) error
}

// Recorder appends match answers to the performance store and hands every
// touched log to the saver.
type Recorder struct {
	store *performance.Store
	saver Saver
	log   *zap.Logger
}

// NewRecorder creates a Recorder. saver may be nil to keep logs in memory
// only; a nil logger disables logging.
func NewRecorder(store *performance.Store, saver Saver, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{store: store, saver: saver, log: logger}
}

// RecordAnswer appends the answerer's record and, for every other player in
// the match, a forced-wrong record without answer or response time.
func (r *Recorder) RecordAnswer(ctx context.Context, m *Match, a Answer) error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("invalid answer: %w", err)
	}
	if !m.hasPlayer(a.PlayerID) {
		return fmt.Errorf("player %q is not in match %s", a.PlayerID, m.ID)
	}

	base := performance.AnswerRecord{
		QuestionID:   a.QuestionID,
		QuestionText: a.QuestionText,
		Subject:      a.Subject,
		Difficulty:   a.Difficulty,
		CorrectIndex: a.CorrectIndex,
		Timestamp:    performance.FormatTimestamp(a.At),
		SessionID:    m.ID,
	}

	for _, p := range m.Players {
		rec := base
		if p.ID == a.PlayerID {
			rec.ChosenIndex = a.ChosenIndex
			rec.Correct = a.ChosenIndex == a.CorrectIndex
			rec.ResponseSeconds = a.ResponseSeconds
		} else {
			rec.ChosenIndex = performance.NoAnswer
			rec.ResponseSeconds = performance.NoResponseTime
		}
		if err := r.record(ctx, p, rec); err != nil {
			return err
		}
	}

	r.log.Debug("answer recorded",
		zap.String("match", m.ID),
		zap.String("player", a.PlayerID),
		zap.String("question", a.QuestionID))
	return nil
}

func (r *Recorder) record(ctx context.Context, p Player, rec performance.AnswerRecord) error {
	l := r.store.GetOrCreate(p.ID, p.Name)
	if err := r.store.Append(p.ID, rec); err != nil {
		return err
	}
	if r.saver == nil {
		return nil
	}
	if err := r.saver.SaveLog(ctx, l); err != nil {
		return fmt.Errorf("save log for %q: %w", p.ID, err)
	}
	return nil
}

func (m *Match) hasPlayer(id string) bool {
	for _, p := range m.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}
