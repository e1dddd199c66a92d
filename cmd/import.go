package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizduel/internal/archive"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Append the records of an exported JSON archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		logs, err := archive.Decode(f)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		total := 0
		for _, in := range logs {
			l := e.perf.GetOrCreate(in.LearnerID, in.DisplayName)
			for _, r := range in.Records {
				if err := e.perf.Append(in.LearnerID, r); err != nil {
					return err
				}
			}
			if err := e.db.SaveLog(cmd.Context(), l); err != nil {
				return fmt.Errorf("save %s: %w", in.LearnerID, err)
			}
			e.log.Info("learner imported", zap.String("learner", in.LearnerID), zap.Int("records", len(in.Records)))
			total += len(in.Records)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d records for %d learners\n", total, len(logs))
		return nil
	},
}
