package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizduel/internal/match"
	"github.com/abhisek/quizduel/internal/performance"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record one answer given in a match",
	Long: "Record one answer given in a match. When --opponent is set, the opponent " +
		"receives a forced-wrong record for the same question.",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		subjectName, _ := flags.GetString("subject")
		subject, err := performance.ParseSubject(subjectName)
		if err != nil {
			return err
		}
		difficultyName, _ := flags.GetString("difficulty")
		difficulty, err := performance.ParseDifficulty(difficultyName)
		if err != nil {
			return err
		}
		at := time.Now()
		if v, _ := flags.GetString("at"); v != "" {
			at = performance.ParseTimestamp(v)
			if at.Equal(performance.MinTime) {
				return fmt.Errorf("--at: cannot parse %q", v)
			}
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		if e.cfg.LearnerID == "" {
			return fmt.Errorf("no learner selected: pass --learner or set QUIZDUEL_LEARNER")
		}
		name, _ := flags.GetString("name")
		if name == "" {
			name = currentName(e.perf, e.cfg.LearnerID)
		}
		players := []match.Player{{ID: e.cfg.LearnerID, Name: name}}
		if opp, _ := flags.GetString("opponent"); opp != "" {
			oppName, _ := flags.GetString("opponent-name")
			if oppName == "" {
				oppName = currentName(e.perf, opp)
			}
			players = append(players, match.Player{ID: opp, Name: oppName})
		}

		m := match.New(players...)
		if id, _ := flags.GetString("match"); id != "" {
			m.ID = id
		}

		a := match.Answer{
			PlayerID:   e.cfg.LearnerID,
			Subject:    subject,
			Difficulty: difficulty,
			At:         at,
		}
		a.QuestionID, _ = flags.GetString("question")
		a.QuestionText, _ = flags.GetString("text")
		a.ChosenIndex, _ = flags.GetInt("chosen")
		a.CorrectIndex, _ = flags.GetInt("answer")
		a.ResponseSeconds, _ = flags.GetFloat64("time")

		rec := match.NewRecorder(e.perf, e.db, e.log)
		if err := rec.RecordAnswer(cmd.Context(), m, a); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "recorded %s for %s in match %s\n", a.QuestionID, e.cfg.LearnerID, m.ID)
		return nil
	},
}

func init() {
	f := recordCmd.Flags()
	f.String("name", "", "Learner display name (keeps the stored name when empty)")
	f.String("question", "", "Question id")
	f.String("text", "", "Question text")
	f.String("subject", "", "Subject: Math, Language, Science, SocialStudies, ForeignLanguage or GeneralKnowledge")
	f.String("difficulty", "Easy", "Difficulty: Easy, Medium or Hard")
	f.Int("chosen", performance.NoAnswer, "Chosen option index, -1 when not answered")
	f.Int("answer", 0, "Correct option index (0-3)")
	f.Float64("time", performance.NoResponseTime, "Response time in seconds")
	f.String("at", "", "Answer time (defaults to now)")
	f.String("match", "", "Match id (a new one is generated when empty)")
	f.String("opponent", "", "Opponent learner id")
	f.String("opponent-name", "", "Opponent display name")

	_ = recordCmd.MarkFlagRequired("question")
	_ = recordCmd.MarkFlagRequired("subject")
}

func currentName(s *performance.Store, id string) string {
	if l, ok := s.Get(id); ok && l.DisplayName != "" {
		return l.DisplayName
	}
	return id
}
