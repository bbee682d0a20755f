package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/urlscout/urlscout-cli/pkg/models"
	"github.com/urlscout/urlscout-cli/pkg/search"
)

// DisplayMode is what the results area shows for a given state
type DisplayMode int

const (
	ModeLoading DisplayMode = iota
	ModeNoMatch
	ModeResults
)

const (
	loadingText = "Searching..."
	noMatchText = "No match found for the entered URL."
	cardTitle   = "URL"
)

// DisplayModeFor picks exactly one of loading, no-match or results
func DisplayModeFor(state search.QueryState) DisplayMode {
	switch {
	case state.IsLoading:
		return ModeLoading
	case !state.HasMatch:
		return ModeNoMatch
	default:
		return ModeResults
	}
}

// RenderOptions controls RenderResults
type RenderOptions struct {
	Width   int
	Cursor  int // -1 for no selection
	Spinner string
}

// RenderResults maps a state to its text. It has no side effects.
func RenderResults(state search.QueryState, opts RenderOptions) string {
	switch DisplayModeFor(state) {
	case ModeLoading:
		return strings.TrimSpace(opts.Spinner + " " + loadingText)
	case ModeNoMatch:
		return EmptyStyle.Render(noMatchText)
	}

	cards := make([]string, 0, len(state.Results))
	for i, r := range state.Results {
		cards = append(cards, RenderCard(r, opts.Width, i == opts.Cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// RenderCard renders one record as a bordered card of the given outer width
func RenderCard(record models.URLRecord, width int, selected bool) string {
	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	// border 2, padding 2
	inner := max(width-4, 8)

	url := truncate.StringWithTail(record.URL, uint(inner), "…")
	body := lipgloss.JoinVertical(lipgloss.Left,
		CardTitleStyle.Render(cardTitle),
		url,
		Badge(record.FileType),
	)
	return style.Width(inner + 2).Render(body)
}

// Badge renders the file type label
func Badge(ft models.FileType) string {
	if ft == models.FileTypeFolder {
		return FolderBadgeStyle.Render(string(ft))
	}
	return FileBadgeStyle.Render(string(ft))
}

// ResultsView shows the spinner, the no-match message or the scrolling
// card list.
type ResultsView struct {
	state    search.QueryState
	spinner  spinner.Model
	viewport viewport.Model
	cursor   int
	width    int
	height   int
}

func NewResultsView() *ResultsView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))

	return &ResultsView{
		state:    search.QueryState{HasMatch: true},
		spinner:  s,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   20,
	}
}

// Tick starts the spinner animation
func (r *ResultsView) Tick() tea.Msg {
	return r.spinner.Tick()
}

func (r *ResultsView) SetSize(width, height int) {
	r.width = width
	r.height = max(height, 3)
	r.viewport.Width = width
	r.viewport.Height = r.height
	r.refresh()
}

// SetState replaces the displayed state. The cursor is clamped to the new
// results.
func (r *ResultsView) SetState(state search.QueryState) {
	r.state = state
	if r.cursor >= len(state.Results) {
		r.cursor = max(len(state.Results)-1, 0)
	}
	r.refresh()
}

func (r *ResultsView) State() search.QueryState {
	return r.state
}

func (r *ResultsView) Cursor() int {
	return r.cursor
}

// MoveCursor moves the selection by delta, staying within the results
func (r *ResultsView) MoveCursor(delta int) {
	if len(r.state.Results) == 0 {
		r.cursor = 0
		return
	}
	r.cursor = min(max(r.cursor+delta, 0), len(r.state.Results)-1)
	r.refresh()
}

// Selected returns the record under the cursor when results are showing
func (r *ResultsView) Selected() (models.URLRecord, bool) {
	if DisplayModeFor(r.state) != ModeResults || len(r.state.Results) == 0 {
		return models.URLRecord{}, false
	}
	return r.state.Results[r.cursor], true
}

func (r *ResultsView) Update(msg tea.Msg) (*ResultsView, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case spinner.TickMsg:
		r.spinner, cmd = r.spinner.Update(msg)
	case tea.MouseMsg:
		r.viewport, cmd = r.viewport.Update(msg)
	}
	return r, cmd
}

func (r *ResultsView) refresh() {
	if DisplayModeFor(r.state) != ModeResults {
		return
	}

	cursor := -1
	if len(r.state.Results) > 0 {
		cursor = r.cursor
	}
	r.viewport.SetContent(RenderResults(r.state, RenderOptions{Width: r.width, Cursor: cursor}))

	if cursor < 0 {
		r.viewport.GotoTop()
		return
	}

	// keep the selected card inside the viewport
	top := 0
	for i := 0; i < cursor; i++ {
		top += lipgloss.Height(RenderCard(r.state.Results[i], r.width, false))
	}
	bottom := top + lipgloss.Height(RenderCard(r.state.Results[cursor], r.width, true))
	switch {
	case top < r.viewport.YOffset:
		r.viewport.SetYOffset(top)
	case bottom > r.viewport.YOffset+r.viewport.Height:
		r.viewport.SetYOffset(bottom - r.viewport.Height)
	}
}

func (r *ResultsView) View() string {
	if DisplayModeFor(r.state) != ModeResults {
		return RenderResults(r.state, RenderOptions{Width: r.width, Spinner: r.spinner.View()})
	}
	return r.viewport.View()
}
