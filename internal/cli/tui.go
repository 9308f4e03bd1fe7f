package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yuchenli/fupan/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	// Back up on TUI startup, after a successful load.
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Records, ctx.Questions), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
