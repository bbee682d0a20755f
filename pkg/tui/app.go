package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/urlscout/urlscout-cli/pkg/dataset"
	"github.com/urlscout/urlscout-cli/pkg/search"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusResults
	focusReset
	focusCount
)

const (
	appTitle    = "URL Search"
	resetLabel  = "RESET SEARCH"
	defaultW    = 80
	defaultH    = 24
	chromeLines = 11 // title, form, button, help and status rows
)

// Options configures the App
type Options struct {
	Delay     time.Duration
	Strict    bool
	Logger    *slog.Logger
	Clipboard func(string) error
}

// stateMsg carries a controller snapshot into the event loop
type stateMsg search.QueryState

// App is the root bubbletea model: search form, reset control and results
type App struct {
	controller *search.Controller
	form       *SearchForm
	results    *ResultsView
	status     *StatusManager
	states     chan search.QueryState
	copyFn     func(string) error
	logger     *slog.Logger

	focus       focusArea
	lastVersion uint64
	width       int
	height      int
	quitting    bool
}

func NewApp(provider dataset.Provider, opts Options) *App {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	a := &App{
		results: NewResultsView(),
		status:  NewStatusManager(),
		states:  make(chan search.QueryState, 1),
		copyFn:  opts.Clipboard,
		logger:  opts.Logger,
		width:   defaultW,
		height:  defaultH,
	}
	a.controller = search.NewController(provider, search.Options{
		Delay:    opts.Delay,
		Logger:   opts.Logger,
		OnChange: a.publish,
	})
	a.form = NewSearchForm(search.Validator{Strict: opts.Strict}, a.controller.OnQueryChange)
	a.form.SetActive(true)
	a.SetSize(defaultW, defaultH)
	return a
}

// publish keeps only the newest undelivered state in the channel
func (a *App) publish(s search.QueryState) {
	for {
		select {
		case a.states <- s:
			return
		default:
		}
		select {
		case <-a.states:
		default:
		}
	}
}

func waitForState(states <-chan search.QueryState) tea.Cmd {
	return func() tea.Msg {
		return stateMsg(<-states)
	}
}

func (a *App) Init() tea.Cmd {
	a.controller.Start()
	return tea.Batch(textinput.Blink, a.results.Tick, waitForState(a.states))
}

// Close stops the controller. It is safe to call more than once.
func (a *App) Close() {
	a.controller.Close()
}

func (a *App) SetSize(width, height int) {
	a.width = width
	a.height = height
	a.form.SetWidth(width - 2)
	a.results.SetSize(width-2, height-chromeLines)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		return a, nil

	case stateMsg:
		s := search.QueryState(msg)
		if s.Version > a.lastVersion {
			a.lastVersion = s.Version
			a.results.SetState(s)
		}
		return a, waitForState(a.states)

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.results, cmd = a.results.Update(msg)
		return a, cmd

	case ClearStatusMsg:
		a.status.Handle(msg)
		return a, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		a.results, cmd = a.results.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		a.quitting = true
		a.controller.Close()
		return a, tea.Quit

	case "ctrl+r":
		return a, a.reset()

	case "tab":
		a.setFocus((a.focus + 1) % focusCount)
		return a, nil

	case "shift+tab":
		a.setFocus((a.focus + focusCount - 1) % focusCount)
		return a, nil

	case "enter":
		if a.focus == focusReset {
			return a, a.reset()
		}
		a.controller.Flush()
		return a, nil

	case "up":
		a.results.MoveCursor(-1)
		return a, nil

	case "down":
		a.results.MoveCursor(1)
		return a, nil

	case "ctrl+y":
		return a, a.copySelected()
	}

	if a.focus == focusResults {
		switch msg.String() {
		case "k":
			a.results.MoveCursor(-1)
		case "j":
			a.results.MoveCursor(1)
		}
		return a, nil
	}

	if a.focus == focusInput {
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) setFocus(f focusArea) {
	a.focus = f
	a.form.SetActive(f == focusInput)
}

func (a *App) reset() tea.Cmd {
	a.form.Reset()
	a.controller.Reset()
	a.setFocus(focusInput)
	return a.status.ShowInfo("Search reset")
}

func (a *App) copySelected() tea.Cmd {
	record, ok := a.results.Selected()
	if !ok {
		return a.status.ShowError("Nothing selected to copy")
	}
	if err := a.copyFn(record.URL); err != nil {
		a.logger.Warn("clipboard write failed", "error", err)
		return a.status.ShowError(fmt.Sprintf("Failed to copy: %v", err))
	}
	return a.status.ShowSuccess("Copied " + record.URL)
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	button := ButtonStyle.Render(resetLabel)
	if a.focus == focusReset {
		button = ActiveButtonStyle.Render(resetLabel)
	}

	help := HelpStyle.Render("enter: search now • tab: focus • ↑/↓: select • ctrl+y: copy • ctrl+r: reset • esc: quit")

	content := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(appTitle),
		a.form.View(),
		button,
		a.results.View(),
		help,
	)
	content = ContentPaddingStyle.Render(content)

	if line, ok := a.status.GetStatus(); ok {
		content = lipgloss.JoinVertical(lipgloss.Left, content, StatusBarStyle.Render(line))
	}
	return content
}
