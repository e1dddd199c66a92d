package analytics

import (
	"time"

	"github.com/abhisek/quizduel/internal/performance"
)

// DefaultWeekCount is the number of weekly windows returned when the caller
// does not ask for a specific count.
const DefaultWeekCount = 8

// SubjectDay holds one subject's results within a day.
type SubjectDay struct {
	Correct           int
	Wrong             int
	SuccessPercentage float64
}

// DailyReport summarizes one calendar day.
type DailyReport struct {
	Date time.Time
	Totals

	// Subjects without answers that day are absent.
	Subjects map[performance.Subject]SubjectDay
}

// WeeklyReport summarizes one Monday-to-Sunday window.
type WeeklyReport struct {
	Start time.Time // Monday
	End   time.Time // Sunday
	Label string
	Totals

	// Days always has seven entries, Monday first.
	Days []DailyReport

	// Subjects without answers that week are absent.
	Subjects map[performance.Subject]float64
}

// DailyReports returns one report per calendar day that has records,
// ascending. Zero from/to leave that side of the range open.
func DailyReports(log *performance.Log, from, to time.Time) []DailyReport {
	if log == nil {
		return nil
	}
	return dailyReports(FilterRange(log.Records, from, to))
}

func dailyReports(records []performance.AnswerRecord) []DailyReport {
	groups := GroupByDay(records)
	reports := make([]DailyReport, 0, len(groups))
	for _, g := range groups {
		reports = append(reports, buildDailyReport(g.Date, g.Records))
	}
	return reports
}

func buildDailyReport(date time.Time, records []performance.AnswerRecord) DailyReport {
	subjects := make(map[performance.Subject]SubjectDay)
	for _, r := range records {
		sd := subjects[r.Subject]
		if r.Correct {
			sd.Correct++
		} else {
			sd.Wrong++
		}
		subjects[r.Subject] = sd
	}
	for s, sd := range subjects {
		sd.SuccessPercentage = successPercentage(sd.Correct, sd.Correct+sd.Wrong)
		subjects[s] = sd
	}

	return DailyReport{
		Date:     date,
		Totals:   Summarize(records),
		Subjects: subjects,
	}
}

// emptyDailyReport is the placeholder for a day without activity.
func emptyDailyReport(date time.Time) DailyReport {
	return DailyReport{
		Date:     date,
		Subjects: map[performance.Subject]SubjectDay{},
	}
}

// WeeklyReports returns weekCount consecutive Monday-aligned windows, oldest
// first, the last one containing now. Windows without activity are still
// present with zero totals. A non-positive weekCount means DefaultWeekCount.
func WeeklyReports(log *performance.Log, weekCount int, now time.Time) []WeeklyReport {
	if weekCount <= 0 {
		weekCount = DefaultWeekCount
	}
	var records []performance.AnswerRecord
	if log != nil {
		records = log.Records
	}

	anchor := WeekStart(now)
	reports := make([]WeeklyReport, 0, weekCount)
	for i := weekCount - 1; i >= 0; i-- {
		start := anchor.AddDate(0, 0, -7*i)
		reports = append(reports, buildWeeklyReport(records, start))
	}
	return reports
}

func buildWeeklyReport(records []performance.AnswerRecord, start time.Time) WeeklyReport {
	end := start.AddDate(0, 0, 6)
	week := FilterRange(records, start, end)

	byDate := make(map[time.Time]DailyReport)
	for _, d := range dailyReports(week) {
		byDate[d.Date] = d
	}
	days := make([]DailyReport, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		if d, ok := byDate[date]; ok {
			days = append(days, d)
		} else {
			days = append(days, emptyDailyReport(date))
		}
	}

	subjects := make(map[performance.Subject]float64)
	for _, s := range performance.Subjects {
		if st, ok := ComputeSubject(week, s); ok {
			subjects[s] = st.SuccessPercentage
		}
	}

	return WeeklyReport{
		Start:    start,
		End:      end,
		Label:    WeekLabel(start, end),
		Totals:   Summarize(week),
		Days:     days,
		Subjects: subjects,
	}
}

// WeekLabel formats a short label such as "04 Mar - 10 Mar".
func WeekLabel(start, end time.Time) string {
	return start.Format("02 Jan") + " - " + end.Format("02 Jan")
}
