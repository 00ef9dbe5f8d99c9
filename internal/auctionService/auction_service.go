package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artwork-auctions/internal/auctionerrors"
	"artwork-auctions/internal/events"
	"artwork-auctions/internal/metrics"
	model "artwork-auctions/internal/models"
	"artwork-auctions/internal/repository"
	"artwork-auctions/utils"
)

// DefaultStartGrace is how far in the past a new auction may start
const DefaultStartGrace = time.Minute

// RankingCache stores computed high-stakes rankings keyed by count
type RankingCache interface {
	Get(ctx context.Context, count int) ([]model.HighStakesAuction, bool, error)
	Set(ctx context.Context, count int, auctions []model.HighStakesAuction) error
}

// AuctionService implements auction scheduling, the bid ladder, the offer
// lifecycle and the read views over auctions and offers
type AuctionService struct {
	repo       repository.AuctionDB
	artworks   repository.ArtworkLookup
	publisher  events.Publisher
	cache      RankingCache
	metrics    *metrics.Metrics
	now        func() time.Time
	startGrace time.Duration
}

// Option configures an AuctionService
type Option func(*AuctionService)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *AuctionService) { s.now = now }
}

// WithPublisher sets where offer events go
func WithPublisher(p events.Publisher) Option {
	return func(s *AuctionService) { s.publisher = p }
}

// WithRankingCache enables caching of high-stakes rankings
func WithRankingCache(c RankingCache) Option {
	return func(s *AuctionService) { s.cache = c }
}

// WithMetrics enables domain counters
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *AuctionService) { s.metrics = m }
}

// WithStartGrace sets how far in the past StartAuction accepts a start time
func WithStartGrace(d time.Duration) Option {
	return func(s *AuctionService) { s.startGrace = d }
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB, artworks repository.ArtworkLookup, opts ...Option) *AuctionService {
	s := &AuctionService{
		repo:       repo,
		artworks:   artworks,
		publisher:  events.NopPublisher{},
		now:        func() time.Time { return time.Now().UTC() },
		startGrace: DefaultStartGrace,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ownerOf resolves the owner of the artwork an auction sells
func (s *AuctionService) ownerOf(ctx context.Context, artworkID int64) (int64, error) {
	artwork, err := s.artworks.GetArtwork(ctx, artworkID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to resolve artwork %d: %w", artworkID, err)
	}
	return artwork.OwnerID, nil
}

// publish sends an offer event after commit. Delivery is best effort.
func (s *AuctionService) publish(ctx context.Context, offer model.Offer) {
	event := events.NewOfferEvent(offer, s.now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		utils.Warn("service: failed to publish offer event", map[string]any{
			"event_id": event.EventID,
			"type":     event.Type,
			"offer_id": offer.ID,
			"error":    err.Error(),
		})
	}
}

// outcome buckets an operation result into a metrics label
func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.ResultAccepted
	case errors.Is(err, auctionerrors.ErrConflict):
		return metrics.ResultConflict
	case errors.Is(err, auctionerrors.ErrBadRequest),
		errors.Is(err, auctionerrors.ErrUnauthorized),
		errors.Is(err, auctionerrors.ErrNotFound):
		return metrics.ResultRejected
	default:
		return metrics.ResultError
	}
}
