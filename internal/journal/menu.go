package journal

import (
	"fmt"

	"github.com/theirongolddev/ecotrack/internal/cli"
)

// Run drives the interactive menu loop until the user exits or the input
// stream ends. Invalid choices re-prompt without side effects.
func (j *Journal) Run() {
	for {
		fmt.Fprintln(j.out, "EcoTracker Menu:")
		fmt.Fprintln(j.out, " 1) Add today's entry")
		fmt.Fprintln(j.out, " 2) Show my report")
		fmt.Fprintln(j.out, " 3) Get tips from my last entry")
		fmt.Fprintln(j.out, " 4) Random motivational quote")
		fmt.Fprintln(j.out, " 5) Exit")

		choice, err := j.readLine("Your choice? ")
		if err != nil {
			return
		}

		switch choice {
		case "1":
			j.AddEntry()
		case "2":
			j.ShowReport()
		case "3":
			j.ShowTips()
		case "4":
			j.ShowQuote()
		case "5":
			fmt.Fprintln(j.out, "\nThanks for using EcoTracker — stay green!")
			return
		default:
			fmt.Fprintln(j.out, cli.RenderNotice("Pick a number between 1 and 5."))
			fmt.Fprintln(j.out)
		}
	}
}
