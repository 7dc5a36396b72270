package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/ChairFinder/internal/core"
	"github.com/Rorical/ChairFinder/internal/eventbus"
	"github.com/Rorical/ChairFinder/internal/models"
	"github.com/Rorical/ChairFinder/ui/components"
)

// ExampleQueries are cycled into the input with Ctrl+E
var ExampleQueries = []string{
	"3-year-old, 15kg, narrow seat",
	"Elderly woman, needs a lightweight chair for car trips",
	"Tall adult, 90kg, wide seat",
	"Standard chair for hospital use",
}

var quickKeys = map[string]models.QuickType{
	"f1": models.QuickMale,
	"f2": models.QuickFemale,
	"f3": models.QuickStandard,
	"f4": models.QuickLightweight,
	"f5": models.QuickLarge,
}

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus, serviceReady bool) tea.Cmd {
	if keyMsg.Type == tea.KeyRunes {
		appModel.Input += string(keyMsg.Runes)
		return nil
	}

	key := keyMsg.String()
	if qt, ok := quickKeys[key]; ok {
		sendToCore(appModel, eb, serviceReady, eventbus.QuickQueryEvent{Type: qt})
		return nil
	}

	switch key {
	case "ctrl+c":
		return tea.Quit
	case "enter":
		if strings.TrimSpace(appModel.Input) == "" {
			// Validated locally, nothing goes to core
			appModel.Notice = &models.Notice{Kind: models.NoticeValidation, Text: core.MsgEmptyQuery}
			return nil
		}
		sendToCore(appModel, eb, serviceReady, eventbus.SubmitQueryEvent{Text: appModel.Input})
	case "ctrl+e":
		appModel.Input = ExampleQueries[appModel.ExampleIndex%len(ExampleQueries)]
		appModel.ExampleIndex++
	case "ctrl+u":
		appModel.Input = ""
	case "esc":
		appModel.Notice = nil
	case "up":
		scroll(appModel, -1)
	case "down":
		scroll(appModel, 1)
	case "pgup":
		scroll(appModel, -components.ResultsViewportHeight(appModel.Height))
	case "pgdown":
		scroll(appModel, components.ResultsViewportHeight(appModel.Height))
	case "backspace":
		if runes := []rune(appModel.Input); len(runes) > 0 {
			appModel.Input = string(runes[:len(runes)-1])
		}
	default:
		if keyMsg.Type == tea.KeySpace {
			appModel.Input += " "
		}
	}
	return nil
}

func sendToCore(appModel *models.AppModel, eb *eventbus.EventBus, serviceReady bool, event eventbus.UIEvent) {
	if !serviceReady {
		appModel.Notice = &models.Notice{Kind: models.NoticeTransport, Text: "Recommendation service not configured"}
		return
	}
	if err := eb.SendToCore(event); err != nil {
		appModel.Status = "Error sending request: " + err.Error()
	}
}

func scroll(appModel *models.AppModel, delta int) {
	if !appModel.ResultsVisible {
		return
	}
	offset := appModel.ScrollOffset + delta
	if limit := components.MaxScroll(appModel.Cards, appModel.Width, appModel.Height); offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	appModel.ScrollOffset = offset
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		if appModel.Revision > 0 && event.Revision <= appModel.Revision {
			return nil
		}
		appModel.Revision = event.Revision

		appModel.Cards = event.Cards
		appModel.Loading = event.Loading
		appModel.ResultsVisible = event.ResultsVisible

		if event.Reveals != appModel.Reveals {
			// Scroll the freshly revealed results into view
			appModel.Reveals = event.Reveals
			appModel.ScrollOffset = 0
		}

		switch {
		case event.NoticeID != appModel.NoticeID:
			appModel.NoticeID = event.NoticeID
			appModel.Notice = event.Notice
		case event.Notice == nil:
			appModel.Notice = nil
		}

		switch {
		case event.Loading:
			appModel.Status = "Loading"
		case appModel.Notice != nil && appModel.Notice.IsError():
			appModel.Status = "Error"
		default:
			appModel.Status = "Ready"
		}
	}

	return nil
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
	scroll(appModel, 0)
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	// Only handle UI animations - loading dots
	if appModel.Loading {
		appModel.LoadingDots = (appModel.LoadingDots + 1) % 4
	}
	return TickCmd()
}
