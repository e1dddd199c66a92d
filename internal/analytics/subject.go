// Package analytics turns a learner's answer history into statistics:
// per-subject mastery, day and week reports, week-over-week comparisons,
// repeated-mistake detection and weak-subject detection.
//
// Every function is a pure computation over the records it is given. Results
// are fresh snapshots owned by the caller.
package analytics

import "github.com/abhisek/quizduel/internal/performance"

// SubjectStatistic summarizes a learner's answers in one subject.
type SubjectStatistic struct {
	Subject             performance.Subject
	Total               int
	Correct             int
	Wrong               int
	AverageResponseTime float64 // seconds, over records with a measurable time
	SuccessPercentage   float64 // 0-100

	EasyCorrect   int
	EasyWrong     int
	MediumCorrect int
	MediumWrong   int
	HardCorrect   int
	HardWrong     int
}

// ComputeSubject folds the records of one subject into a SubjectStatistic.
// It returns false when there are no records for the subject, which is
// distinct from a 0% success rate.
func ComputeSubject(records []performance.AnswerRecord, subject performance.Subject) (SubjectStatistic, bool) {
	st := SubjectStatistic{Subject: subject}
	var timed timeAccumulator

	for _, r := range records {
		if r.Subject != subject {
			continue
		}
		st.Total++
		timed.add(r)
		if r.Correct {
			st.Correct++
		} else {
			st.Wrong++
		}

		switch {
		case r.Difficulty == performance.Easy && r.Correct:
			st.EasyCorrect++
		case r.Difficulty == performance.Easy:
			st.EasyWrong++
		case r.Difficulty == performance.Medium && r.Correct:
			st.MediumCorrect++
		case r.Difficulty == performance.Medium:
			st.MediumWrong++
		case r.Difficulty == performance.Hard && r.Correct:
			st.HardCorrect++
		case r.Difficulty == performance.Hard:
			st.HardWrong++
		}
	}

	if st.Total == 0 {
		return SubjectStatistic{}, false
	}
	st.SuccessPercentage = successPercentage(st.Correct, st.Total)
	st.AverageResponseTime = timed.average()
	return st, true
}

// ComputeAll returns a SubjectStatistic for every subject with data, in
// declared subject order.
func ComputeAll(records []performance.AnswerRecord) []SubjectStatistic {
	var out []SubjectStatistic
	for _, s := range performance.Subjects {
		if st, ok := ComputeSubject(records, s); ok {
			out = append(out, st)
		}
	}
	return out
}

// successPercentage returns correct/total*100, or 0 when total is 0.
func successPercentage(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// timeAccumulator averages response times, skipping the no-time sentinel
// and any other non-positive value.
type timeAccumulator struct {
	sum   float64
	count int
}

func (a *timeAccumulator) add(r performance.AnswerRecord) {
	if !r.HasResponseTime() {
		return
	}
	a.sum += r.ResponseSeconds
	a.count++
}

func (a *timeAccumulator) average() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}
