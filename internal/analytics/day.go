package analytics

import (
	"sort"
	"time"

	"github.com/abhisek/quizduel/internal/performance"
)

// DayOf returns the calendar day of t as midnight UTC. The wall-clock date
// of t is kept; no zone conversion happens.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday on or before day.
func WeekStart(day time.Time) time.Time {
	day = DayOf(day)
	// time.Weekday counts from Sunday; shift so Monday is offset 0.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// DayGroup is the set of records answered on one calendar day.
type DayGroup struct {
	Date    time.Time
	Records []performance.AnswerRecord
}

// GroupByDay partitions records by calendar day, ascending. Only days
// that have records are returned. Record order within a day is preserved.
func GroupByDay(records []performance.AnswerRecord) []DayGroup {
	index := make(map[time.Time]int)
	var groups []DayGroup
	for _, r := range records {
		d := DayOf(r.Time())
		i, ok := index[d]
		if !ok {
			i = len(groups)
			index[d] = i
			groups = append(groups, DayGroup{Date: d})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})
	return groups
}

// FilterRange returns the records whose calendar day lies within
// [from, to], both inclusive. A zero bound is open.
func FilterRange(records []performance.AnswerRecord, from, to time.Time) []performance.AnswerRecord {
	if !from.IsZero() {
		from = DayOf(from)
	}
	if !to.IsZero() {
		to = DayOf(to)
	}
	var out []performance.AnswerRecord
	for _, r := range records {
		d := DayOf(r.Time())
		if !from.IsZero() && d.Before(from) {
			continue
		}
		if !to.IsZero() && d.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Totals are the aggregate counters shared by daily and weekly reports.
type Totals struct {
	Total               int
	Correct             int
	Wrong               int
	SuccessPercentage   float64
	AverageResponseTime float64
	SessionCount        int
}

// Summarize aggregates records into Totals.
func Summarize(records []performance.AnswerRecord) Totals {
	var t Totals
	var timed timeAccumulator
	sessions := make(map[string]struct{})
	for _, r := range records {
		t.Total++
		if r.Correct {
			t.Correct++
		} else {
			t.Wrong++
		}
		timed.add(r)
		sessions[r.SessionID] = struct{}{}
	}
	t.SuccessPercentage = successPercentage(t.Correct, t.Total)
	t.AverageResponseTime = timed.average()
	t.SessionCount = len(sessions)
	return t
}
