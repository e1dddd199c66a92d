package analytics

import (
	"sort"

	"github.com/abhisek/quizduel/internal/performance"
)

const (
	// minWrongForRepeat is the number of wrong answers that makes a
	// question a repeated mistake.
	minWrongForRepeat = 2

	// minAttemptsForLearned and learnedStreak define mastery after repeated
	// failures: at least this many attempts, the last learnedStreak correct.
	minAttemptsForLearned = 3
	learnedStreak         = 2
)

// RepeatedMistake is a question the learner answered wrong more than once.
type RepeatedMistake struct {
	QuestionID         string
	QuestionText       string
	Subject            performance.Subject
	Difficulty         performance.Difficulty
	Attempts           int
	WrongCount         int
	LastAttemptCorrect bool
	Learned            bool
}

// QuestionHistory is the learner's full attempt history on one question.
type QuestionHistory struct {
	QuestionID          string
	QuestionText        string
	Subject             performance.Subject
	Difficulty          performance.Difficulty
	Attempts            []performance.AnswerRecord // chronological
	TotalAttempts       int
	CorrectCount        int
	WrongCount          int
	LastAttemptCorrect  bool
	FirstAttemptCorrect bool
}

// groupByQuestion groups records by question id, preserving first-seen
// order of the questions and insertion order within each group.
func groupByQuestion(records []performance.AnswerRecord) (order []string, groups map[string][]performance.AnswerRecord) {
	groups = make(map[string][]performance.AnswerRecord)
	for _, r := range records {
		if _, ok := groups[r.QuestionID]; !ok {
			order = append(order, r.QuestionID)
		}
		groups[r.QuestionID] = append(groups[r.QuestionID], r)
	}
	return order, groups
}

// chronological returns a copy of attempts sorted by timestamp. Equal
// timestamps keep insertion order.
func chronological(attempts []performance.AnswerRecord) []performance.AnswerRecord {
	sorted := make([]performance.AnswerRecord, len(attempts))
	copy(sorted, attempts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time().Before(sorted[j].Time())
	})
	return sorted
}

func countWrong(attempts []performance.AnswerRecord) int {
	n := 0
	for _, a := range attempts {
		if !a.Correct {
			n++
		}
	}
	return n
}

// isLearned reports whether chronologically sorted attempts show mastery.
// A single correct answer after repeated failures is not enough.
func isLearned(sorted []performance.AnswerRecord) bool {
	if len(sorted) < minAttemptsForLearned {
		return false
	}
	for _, a := range sorted[len(sorted)-learnedStreak:] {
		if !a.Correct {
			return false
		}
	}
	return true
}

// FindRepeatedMistakes returns every question with at least two wrong
// answers, most wrong answers first.
func FindRepeatedMistakes(log *performance.Log) []RepeatedMistake {
	if log == nil {
		return nil
	}

	order, groups := groupByQuestion(log.Records)
	var out []RepeatedMistake
	for _, id := range order {
		attempts := groups[id]
		wrong := countWrong(attempts)
		if wrong < minWrongForRepeat {
			continue
		}
		sorted := chronological(attempts)
		last := sorted[len(sorted)-1]
		out = append(out, RepeatedMistake{
			QuestionID:         id,
			QuestionText:       last.QuestionText,
			Subject:            last.Subject,
			Difficulty:         last.Difficulty,
			Attempts:           len(sorted),
			WrongCount:         wrong,
			LastAttemptCorrect: last.Correct,
			Learned:            isLearned(sorted),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WrongCount > out[j].WrongCount
	})
	return out
}

// History returns the learner's attempts on questionID in chronological
// order, or false if the learner never attempted it.
func History(log *performance.Log, questionID string) (QuestionHistory, bool) {
	if log == nil {
		return QuestionHistory{}, false
	}

	var attempts []performance.AnswerRecord
	for _, r := range log.Records {
		if r.QuestionID == questionID {
			attempts = append(attempts, r)
		}
	}
	if len(attempts) == 0 {
		return QuestionHistory{}, false
	}

	sorted := chronological(attempts)
	first, last := sorted[0], sorted[len(sorted)-1]
	wrong := countWrong(sorted)
	return QuestionHistory{
		QuestionID:          questionID,
		QuestionText:        last.QuestionText,
		Subject:             last.Subject,
		Difficulty:          last.Difficulty,
		Attempts:            sorted,
		TotalAttempts:       len(sorted),
		CorrectCount:        len(sorted) - wrong,
		WrongCount:          wrong,
		LastAttemptCorrect:  last.Correct,
		FirstAttemptCorrect: first.Correct,
	}, true
}
