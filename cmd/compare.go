package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizduel/internal/analytics"
	"github.com/abhisek/quizduel/internal/ui/theme"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare this week with last week",
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
		c, ok := analytics.CompareLastTwoWeeks(l, time.Now())
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), theme.Hint.Render("No answers yet."))
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), renderComparison(c))
		return nil
	},
}
