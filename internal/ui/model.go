package ui

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/jonboulle/clockwork"

	"github.com/ngmaloney/oahu-surf/internal/report"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading AppState = iota // First load in progress
	StateDisplay                 // Day cards shown
	StateError                   // No report could be loaded
)

// ActivePane represents which half of a day card is shown
type ActivePane int

const (
	PaneSwell ActivePane = iota
	PaneWindTides
)

const maxCardWidth = 72

// Model represents the application's state
type Model struct {
	state      AppState
	activePane ActivePane
	width      int
	height     int
	err        error

	loader Loader
	clock  clockwork.Clock

	// Data
	snapshot *report.Snapshot
	cards    []report.DayCard
	seq      uint64 // newest load cycle applied

	// Day navigation
	pager paginator.Model

	// Loading
	spinner  spinner.Model
	inflight int
}

// NewModel creates a new application model. A nil loader disables refresh,
// which is how the demo runs on a fixed snapshot.
func NewModel(loader Loader, clock clockwork.Clock) Model {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.TotalPages = 1
	p.ActiveDot = titleStyle.Render("●")
	p.InactiveDot = mutedStyle.Render("○")

	return Model{
		state:      StateLoading,
		activePane: PaneSwell,
		loader:     loader,
		clock:      clock,
		pager:      p,
		spinner:    s,
	}
}

// SetSnapshot shows snap immediately
func (m *Model) SetSnapshot(snap *report.Snapshot) {
	m.applySnapshot(snap)
}

// Init starts the first load
func (m Model) Init() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, loadSnapshot(m.loader))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotLoadedMsg:
		m.finishLoad()
		m.applySnapshot(msg.snapshot)
		return m, nil

	case loadFailedMsg:
		m.finishLoad()
		if m.seq > 0 && msg.seq <= m.seq {
			// an older cycle finished after a newer one was applied
			return m, nil
		}
		m.seq = msg.seq
		m.err = msg.err
		m.state = StateError
		return m, nil

	case errMsg:
		m.finishLoad()
		m.err = msg.err
		m.state = StateError
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading && m.inflight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// Global keys
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}

		switch m.state {
		case StateDisplay:
			return m.handleDisplayKeys(msg)
		case StateError:
			if msg.String() == "r" {
				m.state = StateLoading
				m.err = nil
				return m.refresh()
			}
		}
	}

	return m, nil
}

// handleDisplayKeys handles day paging, pane switching and refresh
func (m Model) handleDisplayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "left", "h":
		m.pager.PrevPage()
	case "right", "l":
		m.pager.NextPage()
	case "tab":
		if m.activePane == PaneSwell {
			m.activePane = PaneWindTides
		} else {
			m.activePane = PaneSwell
		}
	case "r":
		return m.refresh()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(key)
		if n <= m.pager.TotalPages {
			m.pager.Page = n - 1
		}
	}
	return m, nil
}

func (m Model) refresh() (tea.Model, tea.Cmd) {
	if m.loader == nil {
		return m, nil
	}
	m.inflight++
	return m, tea.Batch(m.spinner.Tick, loadSnapshot(m.loader))
}

func (m *Model) finishLoad() {
	if m.inflight > 0 {
		m.inflight--
	}
}

// applySnapshot replaces the displayed data unless snap is older than what
// is already shown
func (m *Model) applySnapshot(snap *report.Snapshot) {
	if snap == nil || (m.seq > 0 && snap.Seq <= m.seq) {
		return
	}
	m.seq = snap.Seq
	m.snapshot = snap
	m.cards = report.Cards(snap)
	m.err = nil
	m.state = StateDisplay

	m.pager.TotalPages = max(len(m.cards), 1)
	if m.pager.Page >= m.pager.TotalPages {
		m.pager.Page = m.pager.TotalPages - 1
	}
}

// currentCard returns the card on the current page
func (m Model) currentCard() (report.DayCard, bool) {
	if m.pager.Page < 0 || m.pager.Page >= len(m.cards) {
		return report.DayCard{}, false
	}
	return m.cards[m.pager.Page], true
}

func (m Model) cardWidth() int {
	return min(max(m.width-2, 30), maxCardWidth)
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🌊 Oahu Surf"),
		"",
		m.spinner.View()+" Fetching surf report and tides...",
	)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	message := "An unknown error occurred"
	var cause string
	if m.err != nil {
		message = m.err.Error()
		var loadErr *report.LoadError
		if errors.As(m.err, &loadErr) {
			message = "Could not load surf data."
			cause = mutedStyle.Render(loadErr.Err.Error())
		}
	}

	help := helpStyle.Render("R: Retry • Q: Quit")

	sections := []string{title, "", message}
	if cause != "" {
		sections = append(sections, cause)
	}
	sections = append(sections, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewDisplay renders the current day card
func (m Model) viewDisplay() string {
	width := m.cardWidth()

	card, ok := m.currentCard()
	if !ok {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("🌊 Oahu Surf"),
			"",
			paneStyle.Width(width).Render(mutedStyle.Render("No forecast data available")),
			m.footer(),
			helpStyle.Render("R: Refresh • Q: Quit"),
		)
	}

	header := titleStyle.Render("🌊 Oahu Surf") + "  " + valueStyle.Bold(true).Render(card.Label)

	swellTab, windTab := activeTitleStyle, inactiveTitleStyle
	if m.activePane == PaneWindTides {
		swellTab, windTab = inactiveTitleStyle, activeTitleStyle
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top,
		swellTab.Render("Swell"), " ", windTab.Render("Wind & Tides"))

	var body string
	if m.activePane == PaneSwell {
		body = m.renderSwellPane(card, width)
	} else {
		body = m.renderWindTidesPane(card, width)
	}

	dots := lipgloss.PlaceHorizontal(width, lipgloss.Center, m.pager.View())
	help := helpStyle.Render("←/→: Day • 1-9: Jump • Tab: Swell/Wind & Tides • R: Refresh • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", tabs, body, dots, m.footer(), help)
}

// footer shows when the data was loaded, or how old the cached copy is
func (m Model) footer() string {
	if m.snapshot == nil {
		return ""
	}

	var line string
	if m.snapshot.Offline {
		line = warningStyle.Render("Offline · cached " + humanize.RelTime(m.snapshot.CachedAt, m.clock.Now(), "ago", "from now"))
	} else {
		line = successStyle.Render("Updated " + m.snapshot.LoadedAt.Format("3:04 PM"))
	}
	if m.snapshot.TideErr != nil {
		line += mutedStyle.Render(" · tides unavailable")
	}
	if m.inflight > 0 {
		line += " " + m.spinner.View()
	}
	return line
}
