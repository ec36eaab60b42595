package cmd

import "github.com/spf13/cobra"

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "A random motivational quote",
	RunE:  runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(_ *cobra.Command, _ []string) error {
	j, closer, err := newJournal()
	if err != nil {
		return err
	}
	defer closer()

	j.ShowQuote()
	return nil
}
