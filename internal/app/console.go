package app

import (
	"fmt"
	"io"

	"github.com/Rorical/ChairFinder/internal/client"
	"github.com/Rorical/ChairFinder/internal/config"
	"github.com/Rorical/ChairFinder/internal/core"
	"github.com/Rorical/ChairFinder/internal/logger"
	"github.com/Rorical/ChairFinder/internal/models"
	"github.com/Rorical/ChairFinder/ui/components"
	"github.com/Rorical/ChairFinder/ui/styles"
)

// ConsoleView renders controller output to plain writers for one-shot
// commands. Cards go to out, progress and notices to errOut.
type ConsoleView struct {
	out    io.Writer
	errOut io.Writer
	width  int
	cards  []models.Card
}

func NewConsoleView(out, errOut io.Writer) *ConsoleView {
	return &ConsoleView{out: out, errOut: errOut, width: styles.DefaultWidth}
}

func (v *ConsoleView) ShowCards(cards []models.Card) {
	v.cards = cards
}

func (v *ConsoleView) Reveal() {
	fmt.Fprintf(v.out, "Recommendations (%d)\n", len(v.cards))
	if len(v.cards) > 0 {
		fmt.Fprintln(v.out, components.RenderCards(v.cards, v.width))
	}
}

func (v *ConsoleView) SetLoading(visible bool) {
	if visible {
		fmt.Fprintln(v.errOut, "Loading...")
	}
}

func (v *ConsoleView) Notify(n models.Notice) {
	fmt.Fprintln(v.errOut, "Error: "+n.Text)
}

// NewConsoleController builds a controller for the active profile that
// draws on a ConsoleView
func NewConsoleController(out, errOut io.Writer) (*core.Controller, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := InitFileLogger(cfg); err != nil {
		return nil, err
	}

	recClient, err := client.New(cfg.GetBaseURL(), cfg.GetTimeout())
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", cfg.ActiveProfile, err)
	}

	view := NewConsoleView(out, errOut)
	return core.NewController(recClient, core.Surfaces{
		Results:  view,
		Loading:  view,
		Notifier: view,
	}, core.WithImageProber(recClient), core.WithLogger(logger.Get())), nil
}
