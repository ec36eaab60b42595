// Package journal implements the interactive carbon-journal flows: entry
// collection, the cumulative report, rule-based tips, quotes, and the menu
// loop. All flows read from an injected input stream and write to an
// injected output stream so they can be driven from tests.
package journal

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/ecotrack/internal/cli"
	"github.com/theirongolddev/ecotrack/internal/config"
	"github.com/theirongolddev/ecotrack/internal/footprint"
	"github.com/theirongolddev/ecotrack/internal/model"
	"github.com/theirongolddev/ecotrack/internal/store"
)

// Journal wires the interactive flows to a store and a factor table.
type Journal struct {
	Store   store.Store
	Factors config.Factors

	// Now supplies the current time for the blank-date default.
	Now func() time.Time
	// Rand drives quote selection.
	Rand *rand.Rand

	in  *bufio.Reader
	out io.Writer
}

// New returns a Journal reading prompts from in and printing to out.
func New(in io.Reader, out io.Writer, st store.Store, factors config.Factors) *Journal {
	return &Journal{
		Store:   st,
		Factors: factors,
		Now:     time.Now,
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// loadEntries reads the full entry store. A read failure degrades to an
// empty history after an informational notice; it never aborts the action.
func (j *Journal) loadEntries() []model.Entry {
	entries, err := j.Store.Load()
	if err != nil {
		fmt.Fprintln(j.out, cli.RenderNotice("Couldn't load saved data — starting fresh."))
		return nil
	}
	return entries
}

// readLine prints a prompt and returns the next input line, trimmed.
func (j *Journal) readLine(prompt string) (string, error) {
	fmt.Fprint(j.out, prompt)
	line, err := j.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AddEntry runs the sequential prompt flow for one day's entry. Any
// validation failure aborts the whole attempt immediately; nothing is
// persisted until every input has been accepted.
func (j *Journal) AddEntry() {
	fmt.Fprintln(j.out, "\nTell me about your day:")

	today := j.Now().Format(model.DateFormat)
	date, err := j.readLine(fmt.Sprintf("Date (YYYY-MM-DD) [default %s]: ", today))
	if err != nil {
		return
	}
	if date == "" {
		date = today
	}
	if _, perr := time.Parse(model.DateFormat, date); perr != nil {
		fmt.Fprintln(j.out, cli.RenderNotice("Oops, wrong date format. Try YYYY-MM-DD."))
		return
	}

	carIn, err := j.readLine("How many miles did you drive today? ")
	if err != nil {
		return
	}
	carMiles, perr := strconv.ParseFloat(carIn, 64)
	if perr != nil {
		fmt.Fprintln(j.out, cli.RenderNotice("That doesn't look like a number."))
		return
	}

	transitIn, err := j.readLine("Miles on bus/train today? ")
	if err != nil {
		return
	}
	transitMiles, perr := strconv.ParseFloat(transitIn, 64)
	if perr != nil {
		fmt.Fprintln(j.out, cli.RenderNotice("That doesn't look like a number."))
		return
	}

	fmt.Fprintln(j.out, "How was your electricity use today?")
	fmt.Fprintln(j.out, "  1) Light (~10 kWh)")
	fmt.Fprintln(j.out, "  2) Moderate (~25 kWh)")
	fmt.Fprintln(j.out, "  3) Heavy (~40 kWh)")
	tier, err := j.readLine("Pick 1, 2, or 3: ")
	if err != nil {
		return
	}
	elecKWh, ok := footprint.ElecTierKWh[tier]
	if !ok {
		fmt.Fprintln(j.out, cli.RenderNotice("Invalid choice."))
		return
	}

	fmt.Fprintln(j.out, "What's your diet like?")
	fmt.Fprintln(j.out, "  1) Omnivore")
	fmt.Fprintln(j.out, "  2) Vegetarian")
	fmt.Fprintln(j.out, "  3) Vegan")
	dietIn, err := j.readLine("Pick 1, 2, or 3: ")
	if err != nil {
		return
	}
	diet := model.Diet(dietIn)
	if !diet.Valid() {
		fmt.Fprintln(j.out, cli.RenderNotice("Invalid choice."))
		return
	}

	emissions, cerr := footprint.Compute(footprint.Inputs{
		CarMiles:     carMiles,
		TransitMiles: transitMiles,
		ElecKWh:      elecKWh,
		Diet:         diet,
	}, j.Factors)
	if cerr != nil {
		// Unreachable given the validation above; surface it anyway.
		fmt.Fprintln(j.out, cli.RenderNotice(cerr.Error()))
		return
	}

	entry := model.Entry{
		Date:         date,
		CarMiles:     carMiles,
		TransitMiles: transitMiles,
		ElecKWh:      elecKWh,
		Diet:         diet,
		Emissions:    emissions,
	}

	entries := j.loadEntries()
	entries = append(entries, entry)
	if serr := j.Store.Save(entries); serr != nil {
		fmt.Fprintln(j.out, cli.RenderNotice(fmt.Sprintf("Error saving data: %v", serr)))
		return
	}

	fmt.Fprintf(j.out, "\nGreat! On %s, your total CO₂ was %s\n\n", date, cli.FormatKg(emissions.Total))
}
