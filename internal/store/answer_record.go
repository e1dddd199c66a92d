package store

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/quizduel/internal/performance"
)

const selectRecords = `
SELECT learner_id, question_id, question_text, subject, difficulty, correct,
       chosen_index, correct_index, response_secs, timestamp, session_id
FROM answer_records`

func (s *Store) SaveLog(ctx context.Context, log *performance.Log) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO learners (id, display_name) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET display_name = excluded.display_name`,
		log.LearnerID, log.DisplayName)
	if err != nil {
		return fmt.Errorf("upsert learner: %w", err)
	}

	var stored int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM answer_records WHERE learner_id = ?`, log.LearnerID,
	).Scan(&stored)
	if err != nil {
		return fmt.Errorf("count records: %w", err)
	}
	if stored > len(log.Records) {
		return fmt.Errorf("log for %q has %d records, %d already stored", log.LearnerID, len(log.Records), stored)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO answer_records (learner_id, position, question_id, question_text, subject,
			difficulty, correct, chosen_index, correct_index, response_secs, timestamp, session_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for pos := stored; pos < len(log.Records); pos++ {
		r := log.Records[pos]
		_, err := stmt.ExecContext(ctx,
			log.LearnerID, pos, r.QuestionID, r.QuestionText, r.Subject.String(),
			r.Difficulty.String(), r.Correct, r.ChosenIndex, r.CorrectIndex,
			r.ResponseSeconds, r.Timestamp, r.SessionID)
		if err != nil {
			return fmt.Errorf("insert record %d: %w", pos, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.log.Debug("log saved",
		zap.String("learner", log.LearnerID),
		zap.Int("new_records", len(log.Records)-stored))
	return nil
}

func (s *Store) LoadLog(ctx context.Context, learnerID string) (*performance.Log, error) {
	log := &performance.Log{LearnerID: learnerID}
	err := s.db.QueryRowContext(ctx,
		`SELECT display_name FROM learners WHERE id = ?`, learnerID,
	).Scan(&log.DisplayName)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query learner: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, selectRecords+` WHERE learner_id = ? ORDER BY position`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		_, rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		log.Records = append(log.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return log, nil
}

func (s *Store) LoadInto(ctx context.Context, dst *performance.Store) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, display_name FROM learners`)
	if err != nil {
		return fmt.Errorf("query learners: %w", err)
	}
	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			rows.Close()
			return fmt.Errorf("scan learner: %w", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterate learners: %w", err)
	}
	rows.Close()

	for id, name := range names {
		dst.GetOrCreate(id, name)
	}

	rows, err = s.db.QueryContext(ctx, selectRecords+` ORDER BY learner_id, position`)
	if err != nil {
		return fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		learnerID, rec, err := scanRecord(rows)
		if err != nil {
			return err
		}
		if err := dst.Append(learnerID, rec); err != nil {
			return fmt.Errorf("restore record: %w", err)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate records: %w", err)
	}

	s.log.Debug("logs loaded", zap.Int("learners", len(names)), zap.Int("records", count))
	return nil
}

func scanRecord(rows *sql.Rows) (string, performance.AnswerRecord, error) {
	var (
		learnerID           string
		rec                 performance.AnswerRecord
		subject, difficulty string
	)
	err := rows.Scan(&learnerID, &rec.QuestionID, &rec.QuestionText, &subject, &difficulty,
		&rec.Correct, &rec.ChosenIndex, &rec.CorrectIndex, &rec.ResponseSeconds,
		&rec.Timestamp, &rec.SessionID)
	if err != nil {
		return "", rec, fmt.Errorf("scan record: %w", err)
	}
	if rec.Subject, err = performance.ParseSubject(subject); err != nil {
		return "", rec, fmt.Errorf("record of %q: %w", learnerID, err)
	}
	if rec.Difficulty, err = performance.ParseDifficulty(difficulty); err != nil {
		return "", rec, fmt.Errorf("record of %q: %w", learnerID, err)
	}
	return learnerID, rec, nil
}
