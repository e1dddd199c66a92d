package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizduel/internal/analytics"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show daily or weekly trend reports",
}

var reportDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "One report per day with answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := dateFlag(cmd, "from")
		if err != nil {
			return err
		}
		to, err := dateFlag(cmd, "to")
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		l, err := e.learnerLog()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderDaily(analytics.DailyReports(l, from, to)))
		return nil
	},
}

var reportWeeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Monday-to-Sunday reports for the last weeks",
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
		weeks, _ := cmd.Flags().GetInt("weeks")
		if weeks <= 0 {
			weeks = e.cfg.WeekCount
		}
		fmt.Fprint(cmd.OutOrStdout(), renderWeekly(analytics.WeeklyReports(l, weeks, time.Now())))
		return nil
	},
}

func init() {
	reportDailyCmd.Flags().String("from", "", "First day to include (YYYY-MM-DD)")
	reportDailyCmd.Flags().String("to", "", "Last day to include (YYYY-MM-DD)")
	reportWeeklyCmd.Flags().Int("weeks", 0, "Number of weeks (defaults to config week_count)")

	reportCmd.AddCommand(reportDailyCmd)
	reportCmd.AddCommand(reportWeeklyCmd)
}

// dateFlag parses a YYYY-MM-DD flag; an empty flag yields the zero time.
func dateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", name, err)
	}
	return t, nil
}
