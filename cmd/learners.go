package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var learnersCmd = &cobra.Command{
	Use:   "learners",
	Short: "List learners with a performance log",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		for _, id := range e.perf.Learners() {
			l, _ := e.perf.Get(id)
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-24s %d answers, %d matches\n",
				id, l.DisplayName, len(l.Records), len(l.Sessions()))
		}
		return nil
	},
}
