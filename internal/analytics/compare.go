package analytics

import (
	"time"

	"github.com/abhisek/quizduel/internal/performance"
)

// WeekComparison is the change between the two most recent weekly windows.
type WeekComparison struct {
	Previous WeeklyReport
	Current  WeeklyReport

	// SuccessDelta is current minus previous success percentage.
	SuccessDelta float64

	// SubjectDeltas only holds subjects with data in both weeks.
	SubjectDeltas map[performance.Subject]float64
}

// CompareLastTwoWeeks compares the week containing now against the week
// before it. It returns false when the learner has no records at all.
func CompareLastTwoWeeks(log *performance.Log, now time.Time) (WeekComparison, bool) {
	if log == nil || len(log.Records) == 0 {
		return WeekComparison{}, false
	}
	weeks := WeeklyReports(log, 2, now)
	if len(weeks) < 2 {
		return WeekComparison{}, false
	}
	prev, cur := weeks[0], weeks[1]

	deltas := make(map[performance.Subject]float64)
	for _, s := range performance.Subjects {
		p, inPrev := prev.Subjects[s]
		c, inCur := cur.Subjects[s]
		if inPrev && inCur {
			deltas[s] = c - p
		}
	}

	return WeekComparison{
		Previous:      prev,
		Current:       cur,
		SuccessDelta:  cur.SuccessPercentage - prev.SuccessPercentage,
		SubjectDeltas: deltas,
	}, true
}
