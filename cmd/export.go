package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizduel/internal/archive"
	"github.com/abhisek/quizduel/internal/performance"
)

var exportCmd = &cobra.Command{
	Use:   "export [file.json]",
	Short: "Write all performance logs as JSON (stdout when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		var logs []*performance.Log
		for _, id := range e.perf.Learners() {
			l, _ := e.perf.Get(id)
			logs = append(logs, l)
		}

		var w io.Writer = cmd.OutOrStdout()
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		return archive.Encode(w, logs)
	},
}
