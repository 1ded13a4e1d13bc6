package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// Pager shows long text full screen
type Pager interface {
	Show(title, body string) error
}

// ovPager runs ov, taking the terminal from the Bubble Tea program
type ovPager struct {
	program *tea.Program
}

// Show implements Pager
func (p *ovPager) Show(title, body string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	var content strings.Builder
	content.WriteString(title)
	content.WriteString("\n")
	content.WriteString(strings.Repeat("─", len([]rune(title))))
	content.WriteString("\n\n")
	content.WriteString(body)
	content.WriteString("\n")

	root, err := oviewer.NewRoot(strings.NewReader(content.String()))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
