package analytics

import "github.com/abhisek/quizduel/internal/performance"

// DefaultWeakThreshold is the success percentage below which a subject is weak.
const DefaultWeakThreshold = 50.0

// WeakSubjects returns, in declared subject order, the subjects whose
// success percentage over records is strictly below threshold. Subjects
// without answers are never weak. The caller picks the scope (one match or
// the whole history) through the records it passes.
func WeakSubjects(records []performance.AnswerRecord, threshold float64) []performance.Subject {
	correct := make(map[performance.Subject]int)
	wrong := make(map[performance.Subject]int)
	for _, r := range records {
		if r.Correct {
			correct[r.Subject]++
		} else {
			wrong[r.Subject]++
		}
	}

	var weak []performance.Subject
	for _, s := range performance.Subjects {
		total := correct[s] + wrong[s]
		if total == 0 {
			continue
		}
		if successPercentage(correct[s], total) < threshold {
			weak = append(weak, s)
		}
	}
	return weak
}
