package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizduel/internal/analytics"
)

var historyCmd = &cobra.Command{
	Use:   "history <question-id>",
	Short: "Show every attempt at a question",
	Args:  cobra.ExactArgs(1),
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
		h, ok := analytics.History(l, args[0])
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s has not attempted %s.\n", displayName(l), args[0])
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), renderHistory(h))
		return nil
	},
}
