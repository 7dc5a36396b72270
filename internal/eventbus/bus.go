package eventbus

import (
	"errors"
	"sync"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/Rorical/ChairFinder/internal/models"
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// SubmitQueryEvent - UI asks core for free-text recommendations
type SubmitQueryEvent struct {
	Text string
}

func (e SubmitQueryEvent) UIEvent() {}

// QuickQueryEvent - UI asks core for a predefined category
type QuickQueryEvent struct {
	Type models.QuickType
}

func (e QuickQueryEvent) UIEvent() {}

// StateUpdateEvent - Core pushes a full view snapshot to UI
type StateUpdateEvent struct {
	Cards          []models.Card
	Loading        bool
	ResultsVisible bool
	Reveals        uint64 // bumps every time the results area is revealed
	Notice         *models.Notice
	NoticeID       uint64
	Revision       uint64
}

func (e StateUpdateEvent) CoreEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

var (
	ErrUIToCoreFull = errors.New("UI to Core channel is full")
	ErrCoreToUIFull = errors.New("Core to UI channel is full")
)

const (
	channelSize         = 100
	breakerMaxFailures  = 5
	breakerResetTimeout = 30 * time.Second
)

// EventBus handles communication between UI and Core with circuit breaker
type EventBus struct {
	uiToCore       chan UIEvent
	coreToUI       chan CoreEvent
	mu             sync.RWMutex
	errorCallback  func(EventBusError)
	circuitBreaker *gobreaker.CircuitBreaker[struct{}]
	closeOnce      sync.Once
}

func NewEventBus() *EventBus {
	return newEventBus(channelSize, breakerResetTimeout)
}

func newEventBus(size int, resetTimeout time.Duration) *EventBus {
	return &EventBus{
		uiToCore: make(chan UIEvent, size),
		coreToUI: make(chan CoreEvent, size),
		circuitBreaker: gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
			Name:        "eventbus",
			MaxRequests: 1,
			Timeout:     resetTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerMaxFailures
			},
		}),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) {
	eb.mu.RLock()
	callback := eb.errorCallback
	eb.mu.RUnlock()

	if callback != nil {
		callback(EventBusError{
			Operation: operation,
			Err:       err,
			Timestamp: time.Now(),
		})
	}
}

func (eb *EventBus) send(operation string, try func() bool, full error) error {
	_, err := eb.circuitBreaker.Execute(func() (struct{}, error) {
		if !try() {
			return struct{}{}, full
		}
		return struct{}{}, nil
	})
	if err != nil {
		eb.reportError(operation, err)
	}
	return err
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	return eb.send("SendToCore", func() bool {
		select {
		case eb.uiToCore <- event:
			return true
		default:
			return false
		}
	}, ErrUIToCoreFull)
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	return eb.send("SendToUI", func() bool {
		select {
		case eb.coreToUI <- event:
			return true
		default:
			return false
		}
	}, ErrCoreToUIFull)
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

func (eb *EventBus) BreakerState() gobreaker.State {
	return eb.circuitBreaker.State()
}

func (eb *EventBus) Close() {
	eb.closeOnce.Do(func() {
		close(eb.uiToCore)
		close(eb.coreToUI)
	})
}
