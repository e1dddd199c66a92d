package analytics

import (
	"testing"

	"github.com/abhisek/quizduel/internal/performance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSubject_NoData(t *testing.T) {
	_, ok := ComputeSubject(scenarioLog().Records, performance.Language)
	assert.False(t, ok)

	_, ok = ComputeSubject(nil, performance.Math)
	assert.False(t, ok)
}

func TestComputeSubject_Counts(t *testing.T) {
	records := []performance.AnswerRecord{
		{Subject: performance.Math, Difficulty: performance.Easy, Correct: true, ResponseSeconds: 2},
		{Subject: performance.Math, Difficulty: performance.Easy, Correct: false, ResponseSeconds: 4},
		{Subject: performance.Math, Difficulty: performance.Medium, Correct: true, ResponseSeconds: performance.NoResponseTime},
		{Subject: performance.Math, Difficulty: performance.Hard, Correct: false, ResponseSeconds: 0},
		{Subject: performance.Math, Difficulty: performance.Hard, Correct: false, ResponseSeconds: 6},
		{Subject: performance.Science, Difficulty: performance.Hard, Correct: true, ResponseSeconds: 100},
	}

	st, ok := ComputeSubject(records, performance.Math)
	require.True(t, ok)
	assert.Equal(t, 5, st.Total)
	assert.Equal(t, 2, st.Correct)
	assert.Equal(t, 3, st.Wrong)
	assert.InDelta(t, 40.0, st.SuccessPercentage, 1e-9)
	// Only the 2s, 4s and 6s answers have a measurable time.
	assert.InDelta(t, 4.0, st.AverageResponseTime, 1e-9)

	assert.Equal(t, 1, st.EasyCorrect)
	assert.Equal(t, 1, st.EasyWrong)
	assert.Equal(t, 1, st.MediumCorrect)
	assert.Equal(t, 0, st.MediumWrong)
	assert.Equal(t, 0, st.HardCorrect)
	assert.Equal(t, 2, st.HardWrong)
}

func TestComputeSubject_NoMeasurableTime(t *testing.T) {
	records := []performance.AnswerRecord{
		{Subject: performance.Science, ResponseSeconds: performance.NoResponseTime},
		{Subject: performance.Science, ResponseSeconds: performance.NoResponseTime},
	}
	st, ok := ComputeSubject(records, performance.Science)
	require.True(t, ok)
	assert.Equal(t, 0.0, st.AverageResponseTime)
	assert.Equal(t, 0.0, st.SuccessPercentage)
}

func TestComputeAll_DeclaredOrder(t *testing.T) {
	records := []performance.AnswerRecord{
		{Subject: performance.GeneralKnowledge, Correct: true},
		{Subject: performance.Math, Correct: true},
		{Subject: performance.SocialStudies},
	}
	stats := ComputeAll(records)
	require.Len(t, stats, 3)
	assert.Equal(t, performance.Math, stats[0].Subject)
	assert.Equal(t, performance.SocialStudies, stats[1].Subject)
	assert.Equal(t, performance.GeneralKnowledge, stats[2].Subject)
}

func TestComputeAll_Scenario(t *testing.T) {
	stats := ComputeAll(scenarioLog().Records)
	require.Len(t, stats, 2)
	assert.Equal(t, performance.Math, stats[0].Subject)
	assert.InDelta(t, 75.0, stats[0].SuccessPercentage, 1e-9)
	assert.Equal(t, performance.Science, stats[1].Subject)
	assert.Equal(t, 0.0, stats[1].SuccessPercentage)
}

func TestSuccessPercentageBounds(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for correct := 0; correct <= total; correct++ {
			p := successPercentage(correct, total)
			if p < 0 || p > 100 {
				t.Errorf("successPercentage(%d, %d) = %v, out of [0, 100]", correct, total, p)
			}
		}
	}
	if got := successPercentage(0, 0); got != 0 {
		t.Errorf("successPercentage(0, 0) = %v, want 0", got)
	}
}
