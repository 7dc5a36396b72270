package core

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Rorical/ChairFinder/internal/config"
	"github.com/Rorical/ChairFinder/internal/eventbus"
	"github.com/Rorical/ChairFinder/internal/models"
)

func newTestService(t *testing.T, rec Recommender) (*RecommendService, *eventbus.EventBus) {
	t.Helper()
	eb := eventbus.NewEventBus()
	cfg := &config.Config{ActiveProfile: "default"}
	svc := NewRecommendService(cfg, rec, nil, eb, zap.NewNop())
	svc.Start()
	t.Cleanup(func() {
		svc.Stop()
		eb.Close()
	})
	return svc, eb
}

// waitForState reads core events until match returns true
func waitForState(t *testing.T, eb *eventbus.EventBus, match func(eventbus.StateUpdateEvent) bool) eventbus.StateUpdateEvent {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev := <-eb.CoreToUI():
			if s, ok := ev.(eventbus.StateUpdateEvent); ok && match(s) {
				return s
			}
		case <-timeout:
			t.Fatal("timed out waiting for state update")
		}
	}
}

func TestRecommendService_InitialWelcome(t *testing.T) {
	_, eb := newTestService(t, &fakeRecommender{})

	s := waitForState(t, eb, func(s eventbus.StateUpdateEvent) bool { return true })
	if s.Notice == nil || s.Notice.Kind != models.NoticeInfo {
		t.Errorf("initial notice = %+v", s.Notice)
	}
	if s.Loading || s.ResultsVisible {
		t.Errorf("initial state = %+v", s)
	}
}

func TestRecommendService_SubmitQueryRendersCards(t *testing.T) {
	_, eb := newTestService(t, &fakeRecommender{env: sampleEnvelope()})

	if err := eb.SendToCore(eventbus.SubmitQueryEvent{Text: "narrow seat"}); err != nil {
		t.Fatal(err)
	}

	s := waitForState(t, eb, func(s eventbus.StateUpdateEvent) bool {
		return !s.Loading && s.ResultsVisible
	})
	if len(s.Cards) != 1 || s.Cards[0].Name != "Model A" {
		t.Errorf("cards = %+v", s.Cards)
	}
	if s.Reveals != 1 {
		t.Errorf("reveals = %d", s.Reveals)
	}
	if s.Notice != nil {
		t.Errorf("notice should be cleared after render, got %+v", s.Notice)
	}
}

func TestRecommendService_QuickQueryFailureNotifies(t *testing.T) {
	_, eb := newTestService(t, &fakeRecommender{env: &models.Envelope{Success: false, Message: "no matches"}})

	if err := eb.SendToCore(eventbus.QuickQueryEvent{Type: models.QuickFemale}); err != nil {
		t.Fatal(err)
	}

	s := waitForState(t, eb, func(s eventbus.StateUpdateEvent) bool {
		return !s.Loading && s.Notice != nil && s.Notice.Kind == models.NoticeApplication
	})
	if s.Notice.Text != "no matches" {
		t.Errorf("notice = %q", s.Notice.Text)
	}
	if s.ResultsVisible {
		t.Error("results revealed on failure")
	}
}

func TestRecommendService_NoSubmissionAfterStop(t *testing.T) {
	rec := &fakeRecommender{env: sampleEnvelope()}
	svc, _ := newTestService(t, rec)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			svc.handleUIEvent(eventbus.SubmitQueryEvent{Text: "narrow seat"})
		}
	}()
	svc.Stop()

	rec.mu.Lock()
	atStop := len(rec.calls)
	rec.mu.Unlock()
	wg.Wait()

	svc.handleUIEvent(eventbus.QuickQueryEvent{Type: models.QuickFemale})
	time.Sleep(20 * time.Millisecond)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.calls) != atStop {
		t.Errorf("calls after Stop = %d, want %d", len(rec.calls), atStop)
	}
}

func TestViewState_SnapshotIsCopy(t *testing.T) {
	vs := NewViewState()
	cards := []models.Card{{Name: "a"}}
	vs.ReplaceCards(cards)
	cards[0].Name = "mutated"

	s := vs.Snapshot()
	if s.Cards[0].Name != "a" {
		t.Errorf("ReplaceCards kept caller slice")
	}
	s.Cards[0].Name = "mutated"
	if vs.Snapshot().Cards[0].Name != "a" {
		t.Errorf("Snapshot shares backing array")
	}
}
