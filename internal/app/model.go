package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/ChairFinder/internal/update"
	"github.com/Rorical/ChairFinder/ui/components"
)

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.dispatcher.ListenForUIEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForUIEvents())
	}

	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, eventBus, m.appModel.ServiceReady)

	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder
	s := m.appModel

	b.WriteString(components.RenderQuickBar())
	b.WriteString("\n")
	b.WriteString(components.RenderInput(s.Input, s.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderNotice(s.Notice, s.Width))
	b.WriteString(components.RenderResults(s.Cards, s.ResultsVisible, s.ScrollOffset, s.Width, s.Height))
	b.WriteString(components.RenderStatus(s.Status, s.Loading, s.LoadingDots, s.Width))

	return b.String()
}
