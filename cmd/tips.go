package cmd

import "github.com/spf13/cobra"

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Advice based on your last entry",
	RunE:  runTips,
}

func init() {
	rootCmd.AddCommand(tipsCmd)
}

func runTips(_ *cobra.Command, _ []string) error {
	j, closer, err := newJournal()
	if err != nil {
		return err
	}
	defer closer()

	j.ShowTips()
	return nil
}
