package analytics

import (
	"testing"
	"time"

	"github.com/abhisek/quizduel/internal/performance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareLastTwoWeeks_NoRecords(t *testing.T) {
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	_, ok := CompareLastTwoWeeks(logOf(), now)
	assert.False(t, ok)

	_, ok = CompareLastTwoWeeks(nil, now)
	assert.False(t, ok)
}

func TestCompareLastTwoWeeks_Deltas(t *testing.T) {
	l := logOf(
		// Previous week (26 Feb - 3 Mar): Math 1/2, Language 1/1.
		answer(performance.Math, true, "2024-02-27 10:00:00"),
		answer(performance.Math, false, "2024-02-28 10:00:00"),
		answer(performance.Language, true, "2024-03-03 10:00:00"),
		// Current week (4 - 10 Mar): Math 3/4, Science 0/1.
		answer(performance.Math, true, "2024-03-04 10:00:00"),
		answer(performance.Math, true, "2024-03-05 10:00:00"),
		answer(performance.Math, true, "2024-03-06 10:00:00"),
		answer(performance.Math, false, "2024-03-06 11:00:00"),
		answer(performance.Science, false, "2024-03-06 12:00:00"),
	)
	now := time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC)

	cmp, ok := CompareLastTwoWeeks(l, now)
	require.True(t, ok)
	assert.True(t, cmp.Previous.Start.Equal(date(2024, 2, 26)))
	assert.True(t, cmp.Current.Start.Equal(date(2024, 3, 4)))

	// 3/5 = 60% now versus 2/3 before.
	assert.InDelta(t, 60.0-200.0/3.0, cmp.SuccessDelta, 1e-9)

	require.Len(t, cmp.SubjectDeltas, 1)
	assert.InDelta(t, 25.0, cmp.SubjectDeltas[performance.Math], 1e-9)
	_, hasLanguage := cmp.SubjectDeltas[performance.Language]
	assert.False(t, hasLanguage, "subject only in previous week must be excluded")
	_, hasScience := cmp.SubjectDeltas[performance.Science]
	assert.False(t, hasScience, "subject only in current week must be excluded")
}

func TestCompareLastTwoWeeks_OnlyOldData(t *testing.T) {
	l := logOf(answer(performance.Math, true, "2023-01-02 10:00:00"))
	now := time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC)

	cmp, ok := CompareLastTwoWeeks(l, now)
	require.True(t, ok)
	assert.Equal(t, 0, cmp.Previous.Total)
	assert.Equal(t, 0, cmp.Current.Total)
	assert.Equal(t, 0.0, cmp.SuccessDelta)
	assert.Empty(t, cmp.SubjectDeltas)
}
