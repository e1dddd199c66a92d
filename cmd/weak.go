package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizduel/internal/analytics"
)

var weakCmd = &cobra.Command{
	Use:   "weak",
	Short: "List subjects below the success threshold",
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
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		fmt.Fprint(cmd.OutOrStdout(), renderWeak(analytics.WeakSubjects(records, threshold), threshold))
		return nil
	},
}

func init() {
	weakCmd.Flags().String("match", "", "Only consider answers from this match")
	weakCmd.Flags().Float64("threshold", analytics.DefaultWeakThreshold, "Success percentage below which a subject is weak")
}
