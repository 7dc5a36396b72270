package core

import (
	"sync"

	"github.com/Rorical/ChairFinder/internal/models"
)

// ViewState is the single source of truth for what the UI shows
type ViewState struct {
	mu             sync.RWMutex
	cards          []models.Card
	loading        bool
	resultsVisible bool
	reveals        uint64
	notice         *models.Notice
	noticeID       uint64
	revision       uint64
}

// Snapshot is an immutable copy of ViewState
type Snapshot struct {
	Cards          []models.Card
	Loading        bool
	ResultsVisible bool
	Reveals        uint64
	Notice         *models.Notice
	NoticeID       uint64
	Revision       uint64
}

func NewViewState() *ViewState {
	return &ViewState{
		cards: make([]models.Card, 0),
	}
}

func (vs *ViewState) ReplaceCards(cards []models.Card) {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	vs.cards = append(make([]models.Card, 0, len(cards)), cards...)
	vs.revision++
}

func (vs *ViewState) Reveal() {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	vs.resultsVisible = true
	vs.reveals++
	vs.revision++
}

func (vs *ViewState) SetLoading(loading bool) {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	vs.loading = loading
	vs.revision++
}

func (vs *ViewState) SetNotice(n models.Notice) {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	vs.notice = &n
	vs.noticeID++
	vs.revision++
}

func (vs *ViewState) ClearNotice() {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	if vs.notice == nil {
		return
	}
	vs.notice = nil
	vs.revision++
}

func (vs *ViewState) IsLoading() bool {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return vs.loading
}

func (vs *ViewState) Snapshot() Snapshot {
	vs.mu.RLock()
	defer vs.mu.RUnlock()

	s := Snapshot{
		Cards:          append(make([]models.Card, 0, len(vs.cards)), vs.cards...),
		Loading:        vs.loading,
		ResultsVisible: vs.resultsVisible,
		Reveals:        vs.reveals,
		NoticeID:       vs.noticeID,
		Revision:       vs.revision,
	}
	if vs.notice != nil {
		n := *vs.notice
		s.Notice = &n
	}
	return s
}
