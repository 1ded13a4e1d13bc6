package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Counter        lipgloss.Style
	Status         lipgloss.Style
	Stage          lipgloss.Style
	StageMoving    lipgloss.Style
	Indicator      lipgloss.Style
	IndicatorOn    lipgloss.Style
	Control        lipgloss.Style
	ControlPressed lipgloss.Style
	Help           lipgloss.Style
	Error          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Counter: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Stage: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")),
		StageMoving: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		Indicator:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		IndicatorOn:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Control:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		ControlPressed: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Help:           lipgloss.NewStyle().Faint(true),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}
