package analytics

import (
	"testing"
	"time"

	"github.com/abhisek/quizduel/internal/performance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		day  time.Time
		want time.Time
	}{
		{date(2024, 3, 4), date(2024, 3, 4)},  // Monday
		{date(2024, 3, 6), date(2024, 3, 4)},  // Wednesday
		{date(2024, 3, 10), date(2024, 3, 4)}, // Sunday
		{date(2024, 3, 11), date(2024, 3, 11)},
		{time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC), date(2024, 3, 4)},
	}
	for _, tt := range tests {
		got := WeekStart(tt.day)
		if !got.Equal(tt.want) {
			t.Errorf("WeekStart(%s) = %s, want %s", tt.day.Format(time.DateOnly), got.Format(time.DateOnly), tt.want.Format(time.DateOnly))
		}
	}
}

func TestGroupByDay_SkipsEmptyDays(t *testing.T) {
	records := []performance.AnswerRecord{
		answer(performance.Math, true, "2024-03-08 10:00:00"),
		answer(performance.Math, true, "2024-03-06 10:00:00"),
		answer(performance.Math, false, "2024-03-08 11:00:00"),
	}
	groups := GroupByDay(records)
	require.Len(t, groups, 2)
	assert.True(t, groups[0].Date.Equal(date(2024, 3, 6)))
	assert.True(t, groups[1].Date.Equal(date(2024, 3, 8)))
	assert.Len(t, groups[1].Records, 2)
}

func TestDailyReports_Scenario(t *testing.T) {
	reports := DailyReports(scenarioLog(), time.Time{}, time.Time{})
	require.Len(t, reports, 1)

	d := reports[0]
	assert.True(t, d.Date.Equal(date(2024, 3, 6)))
	assert.Equal(t, 6, d.Total)
	assert.Equal(t, 3, d.Correct)
	assert.Equal(t, 3, d.Wrong)
	assert.InDelta(t, 50.0, d.SuccessPercentage, 1e-9)
	assert.Equal(t, 1, d.SessionCount)

	require.Len(t, d.Subjects, 2)
	assert.Equal(t, SubjectDay{Correct: 3, Wrong: 1, SuccessPercentage: 75}, d.Subjects[performance.Math])
	assert.Equal(t, SubjectDay{Correct: 0, Wrong: 2, SuccessPercentage: 0}, d.Subjects[performance.Science])
	_, hasLanguage := d.Subjects[performance.Language]
	assert.False(t, hasLanguage)
}

func TestDailyReports_Bounds(t *testing.T) {
	l := logOf(
		answer(performance.Math, true, "2024-03-01 10:00:00"),
		answer(performance.Math, true, "2024-03-02 10:00:00"),
		answer(performance.Math, true, "2024-03-03 23:59:59"),
		answer(performance.Math, true, "2024-03-04 00:00:00"),
	)
	reports := DailyReports(l, date(2024, 3, 2), date(2024, 3, 3))
	require.Len(t, reports, 2)
	assert.True(t, reports[0].Date.Equal(date(2024, 3, 2)))
	assert.True(t, reports[1].Date.Equal(date(2024, 3, 3)))
}

func TestDailyReports_SessionsAndTime(t *testing.T) {
	a := answer(performance.Math, true, "2024-03-06 10:00:00")
	b := answer(performance.Math, false, "2024-03-06 11:00:00")
	b.SessionID = "m2"
	b.ResponseSeconds = 8
	c := answer(performance.Math, false, "2024-03-06 11:00:01")
	c.SessionID = "m2"
	c.ResponseSeconds = performance.NoResponseTime

	reports := DailyReports(logOf(a, b, c), time.Time{}, time.Time{})
	require.Len(t, reports, 1)
	assert.Equal(t, 2, reports[0].SessionCount)
	assert.InDelta(t, 6.0, reports[0].AverageResponseTime, 1e-9)
}

func TestDailyReports_MalformedTimestampSortsFirst(t *testing.T) {
	l := logOf(
		answer(performance.Math, true, "2024-03-06 10:00:00"),
		answer(performance.Math, false, "yesterday-ish"),
	)
	reports := DailyReports(l, time.Time{}, time.Time{})
	require.Len(t, reports, 2)
	assert.True(t, reports[0].Date.Equal(DayOf(performance.MinTime)))
	assert.Equal(t, 1, reports[0].Wrong)
}

func TestWeeklyReports_ZeroFillEmptyLog(t *testing.T) {
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	for _, k := range []int{1, 2, 5} {
		weeks := WeeklyReports(logOf(), k, now)
		require.Len(t, weeks, k)
		for _, w := range weeks {
			require.Len(t, w.Days, 7)
			assert.Equal(t, 0, w.Total)
			assert.Empty(t, w.Subjects)
			for _, d := range w.Days {
				assert.Equal(t, 0, d.Total)
				assert.Equal(t, 0.0, d.SuccessPercentage)
			}
		}
	}

	assert.Len(t, WeeklyReports(nil, 0, now), DefaultWeekCount)
}

func TestWeeklyReports_Windows(t *testing.T) {
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	weeks := WeeklyReports(scenarioLog(), 3, now)
	require.Len(t, weeks, 3)

	assert.True(t, weeks[0].Start.Equal(date(2024, 2, 19)))
	assert.True(t, weeks[1].Start.Equal(date(2024, 2, 26)))
	assert.True(t, weeks[2].Start.Equal(date(2024, 3, 4)))
	assert.True(t, weeks[2].End.Equal(date(2024, 3, 10)))
	assert.Equal(t, "04 Mar - 10 Mar", weeks[2].Label)

	cur := weeks[2]
	assert.Equal(t, 6, cur.Total)
	assert.InDelta(t, 50.0, cur.SuccessPercentage, 1e-9)
	assert.InDelta(t, 75.0, cur.Subjects[performance.Math], 1e-9)
	assert.Equal(t, 0.0, cur.Subjects[performance.Science])
	_, hasScience := cur.Subjects[performance.Science]
	assert.True(t, hasScience)

	for i, d := range cur.Days {
		assert.True(t, d.Date.Equal(date(2024, 3, 4+i)), "day %d = %s", i, d.Date)
		if i == 2 {
			assert.Equal(t, 6, d.Total)
		} else {
			assert.Equal(t, 0, d.Total)
		}
	}
}

func TestWeeklyReports_SundayBelongsToPreviousMonday(t *testing.T) {
	l := logOf(answer(performance.Math, true, "2024-03-10 22:00:00"))
	now := time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC)
	weeks := WeeklyReports(l, 2, now)
	require.Len(t, weeks, 2)
	assert.Equal(t, 1, weeks[0].Total)
	assert.Equal(t, 1, weeks[0].Days[6].Total)
	assert.Equal(t, 0, weeks[1].Total)
}

func TestReportsAreIdempotent(t *testing.T) {
	l := scenarioLog()
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, DailyReports(l, time.Time{}, time.Time{}), DailyReports(l, time.Time{}, time.Time{}))
	assert.Equal(t, WeeklyReports(l, 4, now), WeeklyReports(l, 4, now))
	assert.Equal(t, ComputeAll(l.Records), ComputeAll(l.Records))
}
