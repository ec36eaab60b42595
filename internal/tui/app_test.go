package tui

import (
	"strings"
	"testing"

	"github.com/theirongolddev/ecotrack/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func loadedApp(t *testing.T, entries []model.Entry) App {
	t.Helper()
	a := NewApp(nil)

	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	a = m.(App)
	m, _ = a.Update(EntriesLoadedMsg{Entries: entries})
	return m.(App)
}

func TestUpdate_TabKeys(t *testing.T) {
	a := loadedApp(t, nil)

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	a = m.(App)
	if a.activeTab != tabTips {
		t.Errorf("activeTab = %d after '2', want %d", a.activeTab, tabTips)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a = m.(App)
	if a.activeTab != tabQuote {
		t.Errorf("activeTab = %d after tab, want %d", a.activeTab, tabQuote)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a = m.(App)
	if a.activeTab != tabReport {
		t.Errorf("activeTab = %d after wrap, want %d", a.activeTab, tabReport)
	}
}

func TestView_EmptyStore(t *testing.T) {
	a := loadedApp(t, nil)

	if !strings.Contains(a.View(), "No entries yet") {
		t.Error("report view missing empty notice")
	}

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	a = m.(App)
	if !strings.Contains(a.View(), "No data to give tips on") {
		t.Error("tips view missing no-data notice")
	}
}

func TestView_ReportShowsAggregates(t *testing.T) {
	a := loadedApp(t, []model.Entry{
		{Date: "2026-08-28", Diet: model.DietOmnivore, Emissions: model.Breakdown{Total: 30.0}},
		{Date: "2026-08-29", Diet: model.DietVegan, Emissions: model.Breakdown{Total: 10.0}},
	})

	got := a.View()
	if !strings.Contains(got, "40.00 kg") {
		t.Errorf("report view missing grand total:\n%s", got)
	}
	if !strings.Contains(got, "20.00 kg") {
		t.Errorf("report view missing average:\n%s", got)
	}
}

func TestView_QuoteTabShowsAQuote(t *testing.T) {
	a := loadedApp(t, nil)

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	a = m.(App)

	if !strings.Contains(a.View(), a.quote) {
		t.Error("quote view missing the picked quote")
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	a := loadedApp(t, nil)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("'q' produced no command, want tea.Quit")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("'q' command produced %T, want tea.QuitMsg", msg)
	}
}
