// Package tui provides the interactive Bubble Tea dashboard for ecotrack.
package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/theirongolddev/ecotrack/internal/cli"
	"github.com/theirongolddev/ecotrack/internal/footprint"
	"github.com/theirongolddev/ecotrack/internal/journal"
	"github.com/theirongolddev/ecotrack/internal/model"
	"github.com/theirongolddev/ecotrack/internal/store"
	"github.com/theirongolddev/ecotrack/internal/tui/components"
	"github.com/theirongolddev/ecotrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EntriesLoadedMsg is sent when the entry store has been read.
type EntriesLoadedMsg struct {
	Entries []model.Entry
	Err     error
}

// Tab indices, matching components.Tabs order.
const (
	tabReport = iota
	tabTips
	tabQuote
)

// chromeHeight is the number of lines used by title, tab bar, and status bar.
const chromeHeight = 6

// App is the root Bubble Tea model. It presents read-only views over the
// stored entries: the cumulative report, tips for the last entry, and a
// motivational quote.
type App struct {
	store   store.Store
	entries []model.Entry
	loaded  bool
	loadErr error

	width     int
	height    int
	activeTab int

	report      viewport.Model
	reportReady bool

	quote string
	rng   *rand.Rand
}

// NewApp builds the dashboard over the given store.
func NewApp(st store.Store) App {
	return App{
		store: st,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Init kicks off the entry load.
func (a App) Init() tea.Cmd {
	return a.loadEntries
}

func (a App) loadEntries() tea.Msg {
	entries, err := a.store.Load()
	return EntriesLoadedMsg{Entries: entries, Err: err}
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EntriesLoadedMsg:
		a.entries = msg.Entries
		a.loadErr = msg.Err
		a.loaded = true
		a.quote = journal.PickQuote(a.rng)
		a.refreshReport()
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.report.Width = msg.Width - 2
		a.report.Height = msg.Height - chromeHeight
		a.reportReady = true
		a.refreshReport()
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil
		case "n":
			if a.activeTab == tabQuote {
				a.quote = journal.PickQuote(a.rng)
			}
			return a, nil
		}

		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		if a.activeTab == tabReport {
			var cmd tea.Cmd
			a.report, cmd = a.report.Update(msg)
			return a, cmd
		}
	}

	return a, nil
}

// refreshReport rebuilds the report viewport content for the current size.
func (a *App) refreshReport() {
	if !a.reportReady || !a.loaded {
		return
	}
	a.report.SetContent(a.renderReportContent())
}

// View renders the dashboard.
func (a App) View() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  EcoTracker"))
	b.WriteString(mutedStyle.Render("  your carbon footprint journal"))
	b.WriteString("\n\n")
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	switch {
	case !a.loaded:
		b.WriteString(mutedStyle.Render("  Loading entries..."))
	case a.activeTab == tabReport:
		b.WriteString(a.report.View())
	case a.activeTab == tabTips:
		b.WriteString(a.renderTips())
	default:
		b.WriteString(a.renderQuote())
	}

	content := b.String()

	// Pin the status bar to the bottom.
	lines := strings.Count(content, "\n") + 1
	if a.height > 0 {
		for i := lines; i < a.height-1; i++ {
			content += "\n"
		}
	}

	right := fmt.Sprintf("%d entries ", len(a.entries))
	return content + components.RenderStatusBar(a.width, right)
}

func (a App) loadNotice() string {
	if a.loadErr == nil {
		return ""
	}
	noticeStyle := lipgloss.NewStyle().Foreground(theme.Active.Orange)
	return noticeStyle.Render("  Couldn't load saved data — showing an empty history.") + "\n\n"
}

func (a App) renderReportContent() string {
	var b strings.Builder
	b.WriteString(a.loadNotice())

	if len(a.entries) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Active.TextMuted).
			Render("  No entries yet. Try adding one first!"))
		return b.String()
	}

	s := footprint.Summarize(a.entries)
	rowWidth := a.width - 2
	if rowWidth > 72 {
		rowWidth = 72
	}
	b.WriteString(components.MetricCardRow([]struct{ Label, Value string }{
		{"Entries", fmt.Sprintf("%d", s.Count)},
		{"Total CO₂", cli.FormatKg(s.GrandTotal)},
		{"Avg/day", cli.FormatKg(s.Average)},
	}, rowWidth))
	b.WriteString("\n")

	rows := make([][]string, 0, len(a.entries))
	for _, e := range a.entries {
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
	b.WriteString(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Car", "Transit", "Electricity", "Diet", "Total"},
		Rows:    rows,
	}))

	return b.String()
}

func (a App) renderTips() string {
	var b strings.Builder
	b.WriteString(a.loadNotice())

	if len(a.entries) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Active.TextMuted).
			Render("  No data to give tips on — add an entry first!"))
		return b.String()
	}

	last := a.entries[len(a.entries)-1]
	tips := footprint.Tips(last)
	if len(tips) == 0 {
		tips = []string{footprint.Encouragement}
	}

	headerStyle := lipgloss.NewStyle().Foreground(theme.Active.TextMuted)
	tipStyle := lipgloss.NewStyle().Foreground(theme.Active.Green)

	b.WriteString(headerStyle.Render(fmt.Sprintf("  Based on your entry for %s (%s by car, %s by transit, %s):",
		last.Date, cli.FormatMiles(last.CarMiles), cli.FormatMiles(last.TransitMiles), cli.FormatKWh(last.ElecKWh))))
	b.WriteString("\n\n")
	for _, tip := range tips {
		b.WriteString(tipStyle.Render("  • " + tip))
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) renderQuote() string {
	quoteStyle := lipgloss.NewStyle().Foreground(theme.Active.TextPrimary).Italic(true)
	hintStyle := lipgloss.NewStyle().Foreground(theme.Active.TextDim)

	return quoteStyle.Render("  “"+a.quote+"”") + "\n\n" +
		hintStyle.Render("  [n] another quote")
}
