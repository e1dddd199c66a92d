package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizduel/internal/analytics"
)

var mistakesCmd = &cobra.Command{
	Use:   "mistakes",
	Short: "List questions answered wrong more than once",
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
		mistakes := analytics.FindRepeatedMistakes(l)
		if open, _ := cmd.Flags().GetBool("open"); open {
			var pending []analytics.RepeatedMistake
			for _, m := range mistakes {
				if !m.Learned {
					pending = append(pending, m)
				}
			}
			mistakes = pending
		}
		fmt.Fprint(cmd.OutOrStdout(), renderMistakes(mistakes))
		return nil
	},
}

func init() {
	mistakesCmd.Flags().Bool("open", false, "Hide questions that have since been learned")
}
