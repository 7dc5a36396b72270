package core

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Rorical/ChairFinder/internal/models"
)

const maxConcurrentProbes = 4

// Recommender performs the remote calls
type Recommender interface {
	Recommend(ctx context.Context, query string) (*models.Envelope, error)
	QuickRecommend(ctx context.Context, t models.QuickType) (*models.Envelope, error)
}

// ImageProber resolves and checks card images
type ImageProber interface {
	ResolveURL(ref string) string
	ProbeImage(ctx context.Context, ref string) error
}

// Results is the area that shows recommendation cards
type Results interface {
	ShowCards(cards []models.Card) // replaces whatever was shown
	Reveal()                       // make visible and scroll to the top
}

type LoadingIndicator interface {
	SetLoading(visible bool)
}

type Notifier interface {
	Notify(n models.Notice)
}

// Surfaces are the display collaborators a Controller draws on
type Surfaces struct {
	Results  Results
	Loading  LoadingIndicator
	Notifier Notifier
}

// Controller turns user intent into one request and renders its outcome.
// Each submission takes a sequence number; only the latest submission may
// touch the view once its response arrives.
type Controller struct {
	recommender Recommender
	prober      ImageProber
	surfaces    Surfaces
	logger      *zap.Logger
	seq         atomic.Uint64

	// renderMu orders sequence bumps against view writes, so a check of the
	// latest sequence and the write it guards happen as one step.
	renderMu sync.Mutex
}

type Option func(*Controller)

func WithImageProber(p ImageProber) Option {
	return func(c *Controller) { c.prober = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func NewController(rec Recommender, surfaces Surfaces, opts ...Option) *Controller {
	c := &Controller{
		recommender: rec,
		surfaces:    surfaces,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SubmitFreeTextQuery validates text and asks the server for matches
func (c *Controller) SubmitFreeTextQuery(ctx context.Context, text string) error {
	query := strings.TrimSpace(text)
	if query == "" {
		c.surfaces.Notifier.Notify(models.Notice{Kind: models.NoticeValidation, Text: MsgEmptyQuery})
		return ErrEmptyQuery
	}

	return c.run(ctx, "recommend", func(ctx context.Context) (*models.Envelope, error) {
		return c.recommender.Recommend(ctx, query)
	})
}

// SubmitQuickQuery asks the server for a predefined category
func (c *Controller) SubmitQuickQuery(ctx context.Context, t models.QuickType) error {
	return c.run(ctx, "quick-recommend", func(ctx context.Context) (*models.Envelope, error) {
		return c.recommender.QuickRecommend(ctx, t)
	})
}

// RenderList replaces the rendered cards with items, in order, and reveals
// the results area
func (c *Controller) RenderList(ctx context.Context, items []models.RecommendationItem) {
	c.showCards(c.buildCards(ctx, items))
}

func (c *Controller) SetLoadingVisible(visible bool) {
	c.surfaces.Loading.SetLoading(visible)
}

func (c *Controller) run(ctx context.Context, op string, call func(context.Context) (*models.Envelope, error)) error {
	c.renderMu.Lock()
	seq := c.seq.Add(1)
	c.SetLoadingVisible(true)
	c.renderMu.Unlock()

	log := c.logger.With(zap.String("op", op), zap.Uint64("seq", seq))
	defer func() {
		// A newer submission owns the indicator
		c.whileLatest(seq, func() { c.SetLoadingVisible(false) })
	}()

	env, err := call(ctx)
	if err != nil {
		if !c.whileLatest(seq, func() {
			log.Error("recommendation request failed", zap.Error(err))
			c.surfaces.Notifier.Notify(models.Notice{Kind: models.NoticeTransport, Text: MsgTransport})
		}) {
			log.Debug("discarding stale response", zap.Error(err))
			return ErrStale
		}
		return &TransportError{Op: op, Err: err}
	}

	if !env.Success {
		text := env.Message
		if strings.TrimSpace(text) == "" {
			text = MsgGenericFailure
		}
		if !c.whileLatest(seq, func() {
			log.Info("recommendation rejected", zap.String("message", env.Message))
			c.surfaces.Notifier.Notify(models.Notice{Kind: models.NoticeApplication, Text: text})
		}) {
			log.Debug("discarding stale response")
			return ErrStale
		}
		return &ApplicationError{Message: env.Message}
	}

	if !c.isLatest(seq) {
		log.Debug("discarding stale response")
		return ErrStale
	}
	cards := c.buildCards(ctx, env.Recommendations)
	if !c.whileLatest(seq, func() {
		log.Info("rendering recommendations", zap.Int("count", len(cards)))
		c.showCards(cards)
	}) {
		log.Debug("discarding stale response after image check")
		return ErrStale
	}
	return nil
}

func (c *Controller) isLatest(seq uint64) bool {
	return c.seq.Load() == seq
}

// whileLatest runs fn only if seq is still the latest submission, holding
// renderMu so no newer submission can start in between.
func (c *Controller) whileLatest(seq uint64, fn func()) bool {
	c.renderMu.Lock()
	defer c.renderMu.Unlock()
	if !c.isLatest(seq) {
		return false
	}
	fn()
	return true
}

func (c *Controller) showCards(cards []models.Card) {
	c.surfaces.Results.ShowCards(cards)
	c.surfaces.Results.Reveal()
}

func (c *Controller) buildCards(ctx context.Context, items []models.RecommendationItem) []models.Card {
	cards := make([]models.Card, len(items))
	for i, item := range items {
		keywords := make([]string, 0, len(item.Keywords))
		keywords = append(keywords, item.Keywords...)

		cards[i] = models.Card{
			Name:         item.Name,
			Manufacturer: item.Manufacturer,
			Weight:       item.Weight,
			SeatWidth:    item.SeatWidth,
			ImageURL:     item.Image,
			NoImage:      strings.TrimSpace(item.Image) == "",
			Keywords:     keywords,
		}
	}

	if c.prober == nil {
		return cards
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentProbes)
	for i := range cards {
		if cards[i].NoImage {
			continue
		}
		card := &cards[i]
		g.Go(func() error {
			card.ImageURL = c.prober.ResolveURL(card.ImageURL)
			if err := c.prober.ProbeImage(gctx, card.ImageURL); err != nil {
				c.logger.Debug("image unavailable", zap.String("name", card.Name), zap.Error(err))
				card.ImageURL = ""
				card.NoImage = true
			}
			return nil
		})
	}
	_ = g.Wait()

	return cards
}
