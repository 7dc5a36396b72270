package eventbus

import (
	"errors"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/Rorical/ChairFinder/internal/models"
)

func TestEventBus_RoundTrip(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	if err := eb.SendToCore(SubmitQueryEvent{Text: "narrow seat"}); err != nil {
		t.Fatalf("SendToCore() error = %v", err)
	}
	if err := eb.SendToCore(QuickQueryEvent{Type: models.QuickLarge}); err != nil {
		t.Fatalf("SendToCore() error = %v", err)
	}

	if e, ok := (<-eb.UIToCore()).(SubmitQueryEvent); !ok || e.Text != "narrow seat" {
		t.Errorf("first event = %#v", e)
	}
	if e, ok := (<-eb.UIToCore()).(QuickQueryEvent); !ok || e.Type != models.QuickLarge {
		t.Errorf("second event = %#v", e)
	}

	if err := eb.SendToUI(StateUpdateEvent{Revision: 7}); err != nil {
		t.Fatalf("SendToUI() error = %v", err)
	}
	if e, ok := (<-eb.CoreToUI()).(StateUpdateEvent); !ok || e.Revision != 7 {
		t.Errorf("core event = %#v", e)
	}
}

func TestEventBus_FullChannelReportsError(t *testing.T) {
	eb := newEventBus(1, time.Minute)
	defer eb.Close()

	var reported []EventBusError
	eb.SetErrorCallback(func(e EventBusError) { reported = append(reported, e) })

	if err := eb.SendToUI(StateUpdateEvent{}); err != nil {
		t.Fatalf("first send error = %v", err)
	}
	err := eb.SendToUI(StateUpdateEvent{})
	if !errors.Is(err, ErrCoreToUIFull) {
		t.Fatalf("second send error = %v, want ErrCoreToUIFull", err)
	}
	if len(reported) != 1 || reported[0].Operation != "SendToUI" {
		t.Errorf("reported = %+v", reported)
	}
}

func TestEventBus_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	eb := newEventBus(0, time.Minute)
	defer eb.Close()

	for i := 0; i < breakerMaxFailures; i++ {
		if err := eb.SendToCore(SubmitQueryEvent{}); !errors.Is(err, ErrUIToCoreFull) {
			t.Fatalf("send %d error = %v", i, err)
		}
	}

	if eb.BreakerState() != gobreaker.StateOpen {
		t.Fatalf("BreakerState() = %v, want open", eb.BreakerState())
	}
	if err := eb.SendToCore(SubmitQueryEvent{}); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("send with open breaker error = %v", err)
	}
}

func TestEventBus_CloseIsIdempotent(t *testing.T) {
	eb := NewEventBus()
	eb.Close()
	eb.Close()
}
