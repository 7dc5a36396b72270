package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Rorical/ChairFinder/internal/config"
	"github.com/Rorical/ChairFinder/internal/eventbus"
	"github.com/Rorical/ChairFinder/internal/models"
)

// RecommendService runs the controller behind the event bus. It implements
// the controller's display surfaces by updating ViewState and pushing a
// snapshot to the UI.
type RecommendService struct {
	controller *Controller
	config     *config.Config
	state      *ViewState
	eventBus   *eventbus.EventBus
	logger     *zap.Logger
	ctx        context.Context
	cancel     context.CancelFunc
	pushMu     sync.Mutex
	wg         sync.WaitGroup

	// mu guards stopped so no submission is added after Stop begins waiting
	mu      sync.Mutex
	stopped bool
}

// NewRecommendService wires a controller to the event bus
func NewRecommendService(cfg *config.Config, rec Recommender, prober ImageProber, eb *eventbus.EventBus, logger *zap.Logger) *RecommendService {
	ctx, cancel := context.WithCancel(context.Background())

	service := &RecommendService{
		config:   cfg,
		state:    NewViewState(),
		eventBus: eb,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}

	opts := []Option{WithLogger(logger)}
	if prober != nil {
		opts = append(opts, WithImageProber(prober))
	}
	service.controller = NewController(rec, Surfaces{
		Results:  service,
		Loading:  service,
		Notifier: service,
	}, opts...)

	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		logger.Warn("event bus error", zap.String("operation", e.Operation), zap.Error(e.Err))
	})

	service.addWelcomeNotice()

	return service
}

// Start runs the core logic in a goroutine
func (rs *RecommendService) Start() {
	rs.pushStateToUI()
	go rs.eventLoop()
}

// Stop cancels in-flight requests and waits for them to finish
func (rs *RecommendService) Stop() {
	rs.mu.Lock()
	rs.stopped = true
	rs.cancel()
	rs.mu.Unlock()
	rs.wg.Wait()
}

func (rs *RecommendService) Controller() *Controller {
	return rs.controller
}

func (rs *RecommendService) eventLoop() {
	for {
		select {
		case <-rs.ctx.Done():
			return
		case event, ok := <-rs.eventBus.UIToCore():
			if !ok {
				return
			}
			rs.handleUIEvent(event)
		}
	}
}

// handleUIEvent runs each submission concurrently; overlapping submissions
// are resolved by the controller's sequence token
func (rs *RecommendService) handleUIEvent(event eventbus.UIEvent) {
	var submit func() error

	switch e := event.(type) {
	case eventbus.SubmitQueryEvent:
		submit = func() error { return rs.controller.SubmitFreeTextQuery(rs.ctx, e.Text) }
	case eventbus.QuickQueryEvent:
		submit = func() error { return rs.controller.SubmitQuickQuery(rs.ctx, e.Type) }
	default:
		return
	}

	rs.mu.Lock()
	if rs.stopped || rs.ctx.Err() != nil {
		rs.mu.Unlock()
		return
	}
	rs.wg.Add(1)
	rs.mu.Unlock()
	go func() {
		defer rs.wg.Done()
		if err := submit(); err != nil && !errors.Is(err, ErrStale) {
			rs.logger.Debug("submission finished with error", zap.Error(err))
		}
	}()
}

// ShowCards implements Results
func (rs *RecommendService) ShowCards(cards []models.Card) {
	rs.state.ReplaceCards(cards)
	rs.state.ClearNotice()
	rs.pushStateToUI()
}

// Reveal implements Results
func (rs *RecommendService) Reveal() {
	rs.state.Reveal()
	rs.pushStateToUI()
}

// SetLoading implements LoadingIndicator
func (rs *RecommendService) SetLoading(visible bool) {
	if visible {
		rs.state.ClearNotice()
	}
	rs.state.SetLoading(visible)
	rs.pushStateToUI()
}

// Notify implements Notifier
func (rs *RecommendService) Notify(n models.Notice) {
	rs.state.SetNotice(n)
	rs.pushStateToUI()
}

func (rs *RecommendService) IsReady() bool {
	return rs.config.IsValid()
}

// Snapshot returns the current view state
func (rs *RecommendService) Snapshot() Snapshot {
	return rs.state.Snapshot()
}

func (rs *RecommendService) pushStateToUI() {
	// Serialize snapshot+send so revisions reach the UI in order
	rs.pushMu.Lock()
	defer rs.pushMu.Unlock()

	s := rs.state.Snapshot()
	if err := rs.eventBus.SendToUI(eventbus.StateUpdateEvent{
		Cards:          s.Cards,
		Loading:        s.Loading,
		ResultsVisible: s.ResultsVisible,
		Reveals:        s.Reveals,
		Notice:         s.Notice,
		NoticeID:       s.NoticeID,
		Revision:       s.Revision,
	}); err != nil {
		rs.logger.Warn("failed to push state to UI", zap.Uint64("revision", s.Revision), zap.Error(err))
	}
}

func (rs *RecommendService) addWelcomeNotice() {
	var text string
	if rs.config.IsValid() {
		text = fmt.Sprintf("Profile %s -> %s. Describe the user and press Enter, or F1-F5 for quick picks.",
			rs.config.ActiveProfile, rs.config.GetBaseURL())
	} else {
		text = fmt.Sprintf("Profile %s is not configured. Run: chairfinder profile edit %s",
			rs.config.ActiveProfile, rs.config.ActiveProfile)
	}
	rs.state.SetNotice(models.Notice{Kind: models.NoticeInfo, Text: text})
}
