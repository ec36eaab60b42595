package cmd

import "github.com/spf13/cobra"

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record today's entry",
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	j, closer, err := newJournal()
	if err != nil {
		return err
	}
	defer closer()

	j.AddEntry()
	return nil
}
