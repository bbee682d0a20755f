package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusType represents the type of status message
type StatusType int

const (
	StatusTypeSuccess StatusType = iota
	StatusTypeError
	StatusTypeInfo
)

// StatusFeedback represents a temporary status message
type StatusFeedback struct {
	Message string
	Icon    string
	Type    StatusType
	seq     int
}

// StatusManager manages temporary status messages
type StatusManager struct {
	CurrentStatus   *StatusFeedback
	DefaultDuration time.Duration
	seq             int
}

// ClearStatusMsg clears the status shown under seq. A newer message is left
// alone.
type ClearStatusMsg struct {
	seq int
}

// NewStatusManager creates a new status manager
func NewStatusManager() *StatusManager {
	return &StatusManager{
		DefaultDuration: 2 * time.Second,
	}
}

// ShowFeedback displays a status message and schedules its removal
func (sm *StatusManager) ShowFeedback(icon, message string, statusType StatusType) tea.Cmd {
	sm.seq++
	seq := sm.seq
	sm.CurrentStatus = &StatusFeedback{
		Message: message,
		Icon:    icon,
		Type:    statusType,
		seq:     seq,
	}

	return tea.Tick(sm.DefaultDuration, func(time.Time) tea.Msg {
		return ClearStatusMsg{seq: seq}
	})
}

func (sm *StatusManager) ShowSuccess(message string) tea.Cmd {
	return sm.ShowFeedback("✓", message, StatusTypeSuccess)
}

func (sm *StatusManager) ShowError(message string) tea.Cmd {
	return sm.ShowFeedback("×", message, StatusTypeError)
}

func (sm *StatusManager) ShowInfo(message string) tea.Cmd {
	return sm.ShowFeedback("ℹ", message, StatusTypeInfo)
}

// Handle applies a ClearStatusMsg
func (sm *StatusManager) Handle(msg ClearStatusMsg) {
	if sm.CurrentStatus != nil && sm.CurrentStatus.seq == msg.seq {
		sm.CurrentStatus = nil
	}
}

// Clear removes the current status
func (sm *StatusManager) Clear() {
	sm.CurrentStatus = nil
}

// GetStatus returns the current status line, if any
func (sm *StatusManager) GetStatus() (string, bool) {
	if sm.CurrentStatus == nil {
		return "", false
	}
	return fmt.Sprintf("%s %s", sm.CurrentStatus.Icon, sm.CurrentStatus.Message), true
}
