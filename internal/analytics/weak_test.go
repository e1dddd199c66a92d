package analytics

import (
	"testing"

	"github.com/abhisek/quizduel/internal/performance"
)

func repeat(subject performance.Subject, correct bool, n int) []performance.AnswerRecord {
	var out []performance.AnswerRecord
	for i := 0; i < n; i++ {
		out = append(out, answer(subject, correct, "2024-03-06 10:00:00"))
	}
	return out
}

func TestWeakSubjects(t *testing.T) {
	tests := []struct {
		name    string
		records []performance.AnswerRecord
		want    []performance.Subject
	}{
		{
			name:    "exactly at threshold is not weak",
			records: append(repeat(performance.Math, true, 3), repeat(performance.Math, false, 3)...),
			want:    nil,
		},
		{
			name:    "below threshold is weak",
			records: append(repeat(performance.Math, true, 2), repeat(performance.Math, false, 3)...),
			want:    []performance.Subject{performance.Math},
		},
		{
			name:    "no answers",
			records: nil,
			want:    nil,
		},
		{
			name: "declared order",
			records: append(
				repeat(performance.GeneralKnowledge, false, 1),
				repeat(performance.Language, false, 2)...,
			),
			want: []performance.Subject{performance.Language, performance.GeneralKnowledge},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeakSubjects(tt.records, DefaultWeakThreshold)
			if len(got) != len(tt.want) {
				t.Fatalf("WeakSubjects() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("WeakSubjects()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWeakSubjects_Scenario(t *testing.T) {
	got := WeakSubjects(scenarioLog().Records, DefaultWeakThreshold)
	if len(got) != 1 || got[0] != performance.Science {
		t.Errorf("WeakSubjects() = %v, want [Science]", got)
	}
}

func TestWeakSubjects_MatchScope(t *testing.T) {
	l := scenarioLog()
	other := answer(performance.Language, false, "2024-03-07 10:00:00")
	other.SessionID = "m2"
	l.Records = append(l.Records, other)

	got := WeakSubjects(l.SessionRecords("m2"), DefaultWeakThreshold)
	if len(got) != 1 || got[0] != performance.Language {
		t.Errorf("WeakSubjects(m2) = %v, want [Language]", got)
	}
}
