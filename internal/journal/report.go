package journal

import (
	"fmt"

	"github.com/theirongolddev/ecotrack/internal/cli"
	"github.com/theirongolddev/ecotrack/internal/footprint"
)

// ShowReport prints every stored entry's emission snapshot plus the
// aggregate totals. Stored breakdowns are displayed as-is; they are never
// recomputed against the current factor table.
func (j *Journal) ShowReport() {
	entries := j.loadEntries()
	if len(entries) == 0 {
		fmt.Fprintln(j.out, cli.RenderNotice("No entries yet. Try adding one first!"))
		return
	}

	fmt.Fprintln(j.out)
	fmt.Fprintln(j.out, cli.RenderTitle("YOUR CARBON FOOTPRINT REPORT"))
	fmt.Fprintln(j.out)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		em := e.Emissions
		rows = append(rows, []string{
			e.Date,
			cli.FormatKg(em.Car),
			cli.FormatKg(em.Transit),
			cli.FormatKg(em.Elec),
			fmt.Sprintf("%s (%s)", cli.FormatKg(em.Diet), e.Diet.Label()),
			cli.FormatKg(em.Total),
		})
	}

	fmt.Fprint(j.out, cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Car", "Transit", "Electricity", "Diet", "Total"},
		Rows:    rows,
	}))

	s := footprint.Summarize(entries)
	fmt.Fprintf(j.out, "\nEntries: %d   Total CO₂: %s   Avg/day: %s\n\n",
		s.Count, cli.FormatKg(s.GrandTotal), cli.FormatKg(s.Average))
}

// ShowTips evaluates the advisory rules against the most recent entry.
func (j *Journal) ShowTips() {
	entries := j.loadEntries()
	if len(entries) == 0 {
		fmt.Fprintln(j.out, cli.RenderNotice("No data to give tips on — add an entry first!"))
		return
	}

	last := entries[len(entries)-1]
	tips := footprint.Tips(last)
	if len(tips) == 0 {
		tips = []string{footprint.Encouragement}
	}

	fmt.Fprintln(j.out)
	fmt.Fprintln(j.out, cli.RenderTitle("GREEN TIPS FROM YOUR LAST ENTRY"))
	for _, tip := range tips {
		fmt.Fprintln(j.out, cli.RenderTip(tip))
	}
	fmt.Fprintln(j.out)
}
