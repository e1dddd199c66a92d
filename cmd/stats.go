package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizduel/internal/analytics"
	"github.com/abhisek/quizduel/internal/performance"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-subject statistics for a learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		l, err := e.learnerLog()
		if err != nil {
			return err
		}
		records := l.Records
		if matchID, _ := cmd.Flags().GetString("match"); matchID != "" {
			records = l.SessionRecords(matchID)
		}

		name, _ := cmd.Flags().GetString("subject")
		if name == "" {
			fmt.Fprint(cmd.OutOrStdout(), renderSubjectStats(displayName(l), analytics.ComputeAll(records)))
			return nil
		}

		subject, err := performance.ParseSubject(name)
		if err != nil {
			return err
		}
		st, ok := analytics.ComputeSubject(records, subject)
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "No %s answers yet.\n", subject)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), renderSubjectStats(displayName(l), []analytics.SubjectStatistic{st}))
		return nil
	},
}

func init() {
	statsCmd.Flags().String("subject", "", "Only show this subject")
	statsCmd.Flags().String("match", "", "Only count answers from this match")
}

func displayName(l *performance.Log) string {
	if l.DisplayName != "" {
		return l.DisplayName
	}
	return l.LearnerID
}
