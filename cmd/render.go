package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizduel/internal/analytics"
	"github.com/abhisek/quizduel/internal/performance"
	"github.com/abhisek/quizduel/internal/ui/components"
	"github.com/abhisek/quizduel/internal/ui/theme"
)

const barWidth = 60

func renderSubjectStats(name string, stats []analytics.SubjectStatistic) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Subject mastery: "+name) + "\n")
	if len(stats) == 0 {
		b.WriteString(theme.Hint.Render("No answers yet.") + "\n")
		return b.String()
	}
	for _, st := range stats {
		b.WriteString(components.NewSuccessBar(st.Subject.String(), st.SuccessPercentage, analytics.DefaultWeakThreshold, barWidth).View())
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
			"  %d answered, %d correct, %d wrong, avg %.1fs | easy %d/%d  medium %d/%d  hard %d/%d",
			st.Total, st.Correct, st.Wrong, st.AverageResponseTime,
			st.EasyCorrect, st.EasyCorrect+st.EasyWrong,
			st.MediumCorrect, st.MediumCorrect+st.MediumWrong,
			st.HardCorrect, st.HardCorrect+st.HardWrong)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderTotals(t analytics.Totals) string {
	return fmt.Sprintf("%3d answered  %3d correct  %3d wrong  %s  avg %4.1fs  %d session(s)",
		t.Total, t.Correct, t.Wrong, theme.Percent(t.SuccessPercentage), t.AverageResponseTime, t.SessionCount)
}

func renderDaily(reports []analytics.DailyReport) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Daily report") + "\n")
	if len(reports) == 0 {
		b.WriteString(theme.Hint.Render("No answers in range.") + "\n")
		return b.String()
	}
	for _, d := range reports {
		b.WriteString(d.Date.Format("Mon 02 Jan 2006") + "  " + renderTotals(d.Totals) + "\n")
		for _, s := range performance.Subjects {
			sd, ok := d.Subjects[s]
			if !ok {
				continue
			}
			b.WriteString(theme.Subtitle.Render(fmt.Sprintf("    %-18s %d/%d  %s",
				s, sd.Correct, sd.Correct+sd.Wrong, theme.Percent(sd.SuccessPercentage))) + "\n")
		}
	}
	return b.String()
}

func renderWeekly(weeks []analytics.WeeklyReport) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Weekly report") + "\n")
	for _, w := range weeks {
		b.WriteString(fmt.Sprintf("%-16s %s\n", w.Label, renderTotals(w.Totals)))
		var days []string
		for _, d := range w.Days {
			days = append(days, fmt.Sprintf("%s:%d", d.Date.Format("Mon"), d.Total))
		}
		b.WriteString(theme.Subtitle.Render("    "+strings.Join(days, " ")) + "\n")
		for _, s := range performance.Subjects {
			if pct, ok := w.Subjects[s]; ok {
				b.WriteString(theme.Subtitle.Render(fmt.Sprintf("    %-18s %s", s, theme.Percent(pct))) + "\n")
			}
		}
	}
	return b.String()
}

func renderComparison(c analytics.WeekComparison) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Week over week") + "\n")
	b.WriteString(fmt.Sprintf("%-16s %s\n", c.Previous.Label, theme.Percent(c.Previous.SuccessPercentage)))
	b.WriteString(fmt.Sprintf("%-16s %s\n", c.Current.Label, theme.Percent(c.Current.SuccessPercentage)))
	b.WriteString(fmt.Sprintf("%-16s %s\n", "Change", theme.Delta(c.SuccessDelta)))
	for _, s := range performance.Subjects {
		if d, ok := c.SubjectDeltas[s]; ok {
			b.WriteString(fmt.Sprintf("    %-18s %s\n", s, theme.Delta(d)))
		}
	}
	return b.String()
}

func renderMistakes(mistakes []analytics.RepeatedMistake) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Repeated mistakes") + "\n")
	if len(mistakes) == 0 {
		b.WriteString(theme.Hint.Render("No question was answered wrong twice.") + "\n")
		return b.String()
	}
	for _, m := range mistakes {
		status := theme.Incorrect.Render("still problematic")
		switch {
		case m.Learned:
			status = theme.Correct.Render("learned")
		case m.LastAttemptCorrect:
			status = theme.Warning.Render("improving")
		}
		b.WriteString(fmt.Sprintf("%-12s %-16s %-6s wrong %d/%d  %s\n",
			m.QuestionID, m.Subject, m.Difficulty, m.WrongCount, m.Attempts, status))
		if m.QuestionText != "" {
			b.WriteString(theme.Subtitle.Render("    "+m.QuestionText) + "\n")
		}
	}
	return b.String()
}

func renderHistory(h analytics.QuestionHistory) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("History of "+h.QuestionID) + "\n")
	if h.QuestionText != "" {
		b.WriteString(theme.Subtitle.Render(h.QuestionText) + "\n")
	}
	for _, a := range h.Attempts {
		mark := theme.Incorrect.Render("wrong  ")
		if a.Correct {
			mark = theme.Correct.Render("correct")
		}
		b.WriteString(fmt.Sprintf("  %-20s %s  chose %2d (answer %d)\n", a.Timestamp, mark, a.ChosenIndex, a.CorrectIndex))
	}
	b.WriteString(fmt.Sprintf("%d attempts, %d correct, %d wrong\n", h.TotalAttempts, h.CorrectCount, h.WrongCount))
	if !h.FirstAttemptCorrect && h.LastAttemptCorrect {
		b.WriteString(theme.Correct.Render("Got it wrong before, knows it now.") + "\n")
	}
	return b.String()
}

func renderWeak(subjects []performance.Subject, threshold float64) string {
	if len(subjects) == 0 {
		return theme.Correct.Render(fmt.Sprintf("No subject below %.0f%%.", threshold)) + "\n"
	}
	names := make([]string, 0, len(subjects))
	for _, s := range subjects {
		names = append(names, s.String())
	}
	return theme.Warning.Render(fmt.Sprintf("Below %.0f%%: ", threshold)) + strings.Join(names, ", ") + "\n"
}
