package cmd

import "github.com/spf13/cobra"

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Per-entry breakdowns plus totals",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	j, closer, err := newJournal()
	if err != nil {
		return err
	}
	defer closer()

	j.ShowReport()
	return nil
}
