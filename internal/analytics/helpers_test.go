package analytics

import (
	"fmt"

	"github.com/abhisek/quizduel/internal/performance"
)

// answer builds a record with sensible defaults for tests.
func answer(subject performance.Subject, correct bool, ts string) performance.AnswerRecord {
	return performance.AnswerRecord{
		QuestionID:      fmt.Sprintf("%s-%s-%t", subject, ts, correct),
		QuestionText:    "What is it?",
		Subject:         subject,
		Difficulty:      performance.Medium,
		Correct:         correct,
		ChosenIndex:     1,
		CorrectIndex:    1,
		ResponseSeconds: 4,
		Timestamp:       ts,
		SessionID:       "m1",
	}
}

func attempt(questionID string, correct bool, ts string) performance.AnswerRecord {
	r := answer(performance.Math, correct, ts)
	r.QuestionID = questionID
	r.QuestionText = "Q " + questionID
	return r
}

func logOf(records ...performance.AnswerRecord) *performance.Log {
	return &performance.Log{LearnerID: "s1", DisplayName: "S1", Records: records}
}

// scenarioLog is learner S1 on day 2024-03-06: four Math answers (three
// correct) and two wrong Science answers.
func scenarioLog() *performance.Log {
	const day = "2024-03-06 "
	return logOf(
		answer(performance.Math, true, day+"09:00:00"),
		answer(performance.Math, true, day+"09:01:00"),
		answer(performance.Math, true, day+"09:02:00"),
		answer(performance.Math, false, day+"09:03:00"),
		answer(performance.Science, false, day+"09:04:00"),
		answer(performance.Science, false, day+"09:05:00"),
	)
}
