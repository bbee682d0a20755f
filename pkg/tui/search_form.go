package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/urlscout/urlscout-cli/pkg/search"
)

const (
	formLabel       = "Enter URL"
	formPlaceholder = "https://url.com"
)

// SearchForm is the URL input. It validates on every change and forwards
// only valid values.
type SearchForm struct {
	input     textinput.Model
	validator search.Validator
	onChange  func(string)
	isActive  bool
	width     int
	err       error
}

// NewSearchForm creates the form. onChange receives each valid value.
func NewSearchForm(validator search.Validator, onChange func(string)) *SearchForm {
	ti := textinput.New()
	ti.Placeholder = formPlaceholder
	ti.Prompt = ""
	ti.CharLimit = 2048
	ti.Width = 50

	return &SearchForm{
		input:     ti,
		validator: validator,
		onChange:  onChange,
	}
}

// SetActive sets whether the form has keyboard focus
func (f *SearchForm) SetActive(active bool) {
	f.isActive = active
	if active {
		f.input.Focus()
	} else {
		f.input.Blur()
	}
}

// SetWidth sets the rendered width
func (f *SearchForm) SetWidth(width int) {
	f.width = width
	// borders, padding and the icon
	f.input.Width = max(width-12, 10)
}

func (f *SearchForm) Value() string {
	return f.input.Value()
}

// Err returns the message for the current value, or nil when it is valid
func (f *SearchForm) Err() error {
	return f.err
}

// SetValue replaces the text as if it had been typed
func (f *SearchForm) SetValue(value string) {
	prev := f.input.Value()
	f.input.SetValue(value)
	f.changed(prev)
}

// Update handles tea messages for the form
func (f *SearchForm) Update(msg tea.Msg) (*SearchForm, tea.Cmd) {
	prev := f.input.Value()

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.changed(prev)
	return f, cmd
}

func (f *SearchForm) changed(prev string) {
	value := f.input.Value()
	if value == prev {
		return
	}

	f.err = f.validator.Validate(value)
	if f.err == nil && f.onChange != nil {
		f.onChange(value)
	}
}

// Reset clears the text and any validation message without forwarding
func (f *SearchForm) Reset() {
	f.input.SetValue("")
	f.err = nil
}

func (f *SearchForm) View() string {
	borderColor := ColorInactive
	if f.isActive {
		borderColor = ColorActive
	}

	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(max(f.width-4, 20)).
		Padding(0, 1)

	var icon string
	if f.isActive {
		icon = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorActive)).
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true).
			Padding(0, 1).
			Render("⌕")
	} else {
		icon = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Bold(true).
			Render(" ⌕ ")
	}

	field := inputStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, icon, " ", f.input.View()))

	parts := []string{LabelStyle.Render(formLabel), field}
	if f.err != nil {
		parts = append(parts, ErrorStyle.Render(f.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
