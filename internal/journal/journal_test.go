package journal

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/ecotrack/internal/config"
	"github.com/theirongolddev/ecotrack/internal/model"
)

// fakeStore is an in-memory Store that records save calls.
type fakeStore struct {
	entries []model.Entry
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeStore) Load() ([]model.Entry, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.entries, nil
}

func (f *fakeStore) Save(entries []model.Entry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.entries = entries
	f.saves++
	return nil
}

// newTestJournal builds a Journal over scripted input with a fixed clock
// and a seeded random source.
func newTestJournal(t *testing.T, input string, st *fakeStore) (*Journal, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	j := New(strings.NewReader(input), out, st, config.DefaultFactors())
	j.Now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}
	j.Rand = rand.New(rand.NewSource(1))
	return j, out
}

func TestAddEntry_Success(t *testing.T) {
	st := &fakeStore{}
	j, out := newTestJournal(t, "2026-08-29\n10\n2\n2\n1\n", st)

	j.AddEntry()

	if st.saves != 1 {
		t.Fatalf("saves = %d, want 1", st.saves)
	}
	if len(st.entries) != 1 {
		t.Fatalf("stored %d entries, want 1", len(st.entries))
	}

	e := st.entries[0]
	if e.Date != "2026-08-29" {
		t.Errorf("Date = %q, want 2026-08-29", e.Date)
	}
	if e.ElecKWh != 25.0 {
		t.Errorf("ElecKWh = %v, want 25 (tier 2)", e.ElecKWh)
	}
	if e.Diet != model.DietOmnivore {
		t.Errorf("Diet = %q, want omnivore", e.Diet)
	}
	if got := e.Emissions.Total; got < 19.787 || got > 19.789 {
		t.Errorf("Total = %v, want 19.788", got)
	}
	if !strings.Contains(out.String(), "19.79 kg") {
		t.Errorf("output missing computed total:\n%s", out.String())
	}
}

func TestAddEntry_BlankDateDefaultsToToday(t *testing.T) {
	st := &fakeStore{}
	j, _ := newTestJournal(t, "\n0\n0\n1\n3\n", st)

	j.AddEntry()

	if len(st.entries) != 1 {
		t.Fatalf("stored %d entries, want 1", len(st.entries))
	}
	if st.entries[0].Date != "2026-08-30" {
		t.Errorf("Date = %q, want the injected today 2026-08-30", st.entries[0].Date)
	}
}

func TestAddEntry_BadDateAborts(t *testing.T) {
	st := &fakeStore{}
	j, out := newTestJournal(t, "30/08/2026\n", st)

	j.AddEntry()

	if st.saves != 0 {
		t.Errorf("saves = %d, want 0 after date abort", st.saves)
	}
	if !strings.Contains(out.String(), "wrong date format") {
		t.Errorf("output missing date-format message:\n%s", out.String())
	}
}

func TestAddEntry_NonNumericMilesAborts(t *testing.T) {
	st := &fakeStore{}
	j, out := newTestJournal(t, "2026-08-29\nten\n", st)

	j.AddEntry()

	if st.saves != 0 {
		t.Errorf("saves = %d, want 0 after mileage abort", st.saves)
	}
	if !strings.Contains(out.String(), "doesn't look like a number") {
		t.Errorf("output missing number message:\n%s", out.String())
	}
}

func TestAddEntry_InvalidTierAborts(t *testing.T) {
	st := &fakeStore{}
	j, out := newTestJournal(t, "2026-08-29\n10\n2\n4\n", st)

	j.AddEntry()

	if st.saves != 0 {
		t.Errorf("saves = %d, want 0 after tier abort", st.saves)
	}
	if len(st.entries) != 0 {
		t.Errorf("store modified on aborted entry: %+v", st.entries)
	}
	if !strings.Contains(out.String(), "Invalid choice") {
		t.Errorf("output missing invalid-choice message:\n%s", out.String())
	}
}

func TestAddEntry_InvalidDietAborts(t *testing.T) {
	st := &fakeStore{}
	j, _ := newTestJournal(t, "2026-08-29\n10\n2\n2\n0\n", st)

	j.AddEntry()

	if st.saves != 0 {
		t.Errorf("saves = %d, want 0 after diet abort", st.saves)
	}
}

func TestAddEntry_NegativeMilesAccepted(t *testing.T) {
	// The journal deliberately accepts negative mileage.
	st := &fakeStore{}
	j, _ := newTestJournal(t, "2026-08-29\n-5\n0\n1\n3\n", st)

	j.AddEntry()

	if len(st.entries) != 1 {
		t.Fatalf("stored %d entries, want 1", len(st.entries))
	}
	if st.entries[0].CarMiles != -5 {
		t.Errorf("CarMiles = %v, want -5", st.entries[0].CarMiles)
	}
}

func TestAddEntry_LoadFailureStartsFresh(t *testing.T) {
	st := &fakeStore{loadErr: errors.New("corrupt file")}
	j, out := newTestJournal(t, "2026-08-29\n1\n1\n1\n2\n", st)

	j.AddEntry()

	if !strings.Contains(out.String(), "starting fresh") {
		t.Errorf("output missing load notice:\n%s", out.String())
	}
	if len(st.entries) != 1 {
		t.Errorf("stored %d entries, want 1 (fresh history plus new entry)", len(st.entries))
	}
}

func TestAddEntry_SaveFailureReported(t *testing.T) {
	st := &fakeStore{saveErr: errors.New("disk full")}
	j, out := newTestJournal(t, "2026-08-29\n1\n1\n1\n2\n", st)

	j.AddEntry()

	if !strings.Contains(out.String(), "Error saving data") {
		t.Errorf("output missing save error:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "disk full") {
		t.Errorf("output missing underlying cause:\n%s", out.String())
	}
}

func TestShowReport_Empty(t *testing.T) {
	j, out := newTestJournal(t, "", &fakeStore{})

	j.ShowReport()

	if !strings.Contains(out.String(), "No entries yet") {
		t.Errorf("output missing empty notice:\n%s", out.String())
	}
}

func TestShowReport_Aggregates(t *testing.T) {
	st := &fakeStore{entries: []model.Entry{
		{Date: "2026-08-28", Diet: model.DietOmnivore, Emissions: model.Breakdown{Total: 30.0}},
		{Date: "2026-08-29", Diet: model.DietVegan, Emissions: model.Breakdown{Total: 10.0}},
	}}
	j, out := newTestJournal(t, "", st)

	j.ShowReport()

	got := out.String()
	if !strings.Contains(got, "Entries: 2") {
		t.Errorf("output missing entry count:\n%s", got)
	}
	if !strings.Contains(got, "40.00 kg") {
		t.Errorf("output missing grand total:\n%s", got)
	}
	if !strings.Contains(got, "20.00 kg") {
		t.Errorf("output missing average:\n%s", got)
	}
}

func TestShowTips_Empty(t *testing.T) {
	j, out := newTestJournal(t, "", &fakeStore{})

	j.ShowTips()

	if !strings.Contains(out.String(), "No data to give tips on") {
		t.Errorf("output missing no-data notice:\n%s", out.String())
	}
}

func TestShowTips_UsesLastEntry(t *testing.T) {
	st := &fakeStore{entries: []model.Entry{
		{CarMiles: 100, TransitMiles: 0, ElecKWh: 40, Diet: model.DietOmnivore},
		{CarMiles: 0, TransitMiles: 10, ElecKWh: 10, Diet: model.DietVegan},
	}}
	j, out := newTestJournal(t, "", st)

	j.ShowTips()

	// The last entry fires nothing, so only the encouragement appears.
	got := out.String()
	if !strings.Contains(got, "Nice work") {
		t.Errorf("output missing encouragement:\n%s", got)
	}
	if strings.Contains(got, "carpooling") {
		t.Errorf("tips were computed from an older entry:\n%s", got)
	}
}

func TestShowQuote_Deterministic(t *testing.T) {
	j1, out1 := newTestJournal(t, "", &fakeStore{})
	j2, out2 := newTestJournal(t, "", &fakeStore{})

	j1.ShowQuote()
	j2.ShowQuote()

	if out1.String() != out2.String() {
		t.Errorf("same seed picked different quotes:\n%q\n%q", out1.String(), out2.String())
	}

	found := false
	for _, q := range Quotes {
		if strings.Contains(out1.String(), q) {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("output contains no known quote:\n%s", out1.String())
	}
}

func TestRun_InvalidChoiceThenExit(t *testing.T) {
	st := &fakeStore{}
	j, out := newTestJournal(t, "9\n5\n", st)

	j.Run()

	got := out.String()
	if !strings.Contains(got, "Pick a number between 1 and 5") {
		t.Errorf("output missing re-prompt message:\n%s", got)
	}
	if !strings.Contains(got, "stay green") {
		t.Errorf("output missing exit message:\n%s", got)
	}
	if st.saves != 0 {
		t.Errorf("invalid menu choice caused %d saves, want 0", st.saves)
	}
}

func TestRun_DispatchesToReport(t *testing.T) {
	st := &fakeStore{entries: []model.Entry{
		{Date: "2026-08-29", Diet: model.DietVegan, Emissions: model.Breakdown{Total: 7.4}},
	}}
	j, out := newTestJournal(t, "2\n5\n", st)

	j.Run()

	if !strings.Contains(out.String(), "Entries: 1") {
		t.Errorf("menu choice 2 did not produce a report:\n%s", out.String())
	}
}

func TestRun_EndOfInputExits(t *testing.T) {
	j, _ := newTestJournal(t, "", &fakeStore{})
	// Must return rather than loop forever on a closed input stream.
	j.Run()
}
