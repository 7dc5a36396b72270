package dispatcher

import (
	"testing"

	"github.com/Rorical/ChairFinder/internal/eventbus"
	"github.com/Rorical/ChairFinder/internal/update"
)

func TestListenForUIEvents_WrapsCoreEvent(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	d := NewEventDispatcher(eb)
	defer d.Stop()

	if err := eb.SendToUI(eventbus.StateUpdateEvent{Revision: 3}); err != nil {
		t.Fatal(err)
	}

	msg := d.ListenForUIEvents()()
	coreMsg, ok := msg.(update.CoreEventMsg)
	if !ok {
		t.Fatalf("msg = %#v, want CoreEventMsg", msg)
	}
	if s, ok := coreMsg.Event.(eventbus.StateUpdateEvent); !ok || s.Revision != 3 {
		t.Errorf("event = %#v", coreMsg.Event)
	}
}

func TestListenForUIEvents_StopsOnCancel(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	d := NewEventDispatcher(eb)
	d.Stop()

	if msg := d.ListenForUIEvents()(); msg != nil {
		t.Errorf("msg = %#v, want nil after Stop", msg)
	}
}
