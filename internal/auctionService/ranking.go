package auction

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"artwork-auctions/internal/auctionerrors"
	model "artwork-auctions/internal/models"
	"artwork-auctions/utils"

	"github.com/shopspring/decimal"
)

// Heat scores an active auction for discovery: one point per offer plus the
// order of magnitude of the current price.
func Heat(offerCount int, currentPrice decimal.Decimal) float64 {
	return float64(offerCount) + math.Log10(1+currentPrice.InexactFloat64())
}

// compareHighStakes orders by heat, offer count and price descending, then id ascending
func compareHighStakes(a, b model.HighStakesAuction) int {
	if c := cmp.Compare(b.Heat, a.Heat); c != 0 {
		return c
	}
	if c := cmp.Compare(b.OfferCount, a.OfferCount); c != 0 {
		return c
	}
	if c := b.CurrentPrice.Cmp(a.CurrentPrice); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// GetHighStakesAuctions returns the top count active auctions by heat.
// Cache failures are logged and fall through to the store. Cached entries
// that are no longer active are dropped before returning.
func (s *AuctionService) GetHighStakesAuctions(ctx context.Context, count int) ([]model.HighStakesAuction, error) {
	if count <= 0 {
		return nil, fmt.Errorf("service: %w - got %d", auctionerrors.ErrInvalidCount, count)
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, count)
		if err != nil {
			utils.Warn("service: ranking cache read failed", map[string]any{"count": count, "error": err.Error()})
		} else if ok {
			return stillActive(cached, s.now()), nil
		}
	}

	stats, err := s.repo.ListActiveAuctionStats(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("service: failed to list active auctions: %w", err)
	}

	ranked := make([]model.HighStakesAuction, 0, len(stats))
	for _, st := range stats {
		price := st.CurrentPrice()
		ranked = append(ranked, model.HighStakesAuction{
			ActiveAuction: model.ActiveAuction{
				Auction:      st.Auction,
				CurrentPrice: price,
				OfferCount:   st.Offers.Count,
			},
			Heat: Heat(st.Offers.Count, price),
		})
	}
	slices.SortFunc(ranked, compareHighStakes)
	if len(ranked) > count {
		ranked = ranked[:count]
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, count, ranked); err != nil {
			utils.Warn("service: ranking cache write failed", map[string]any{"count": count, "error": err.Error()})
		}
	}
	return ranked, nil
}

// stillActive copies the entries whose auction window contains now. A cached
// ranking can outlive an auction that ended or was cut short.
func stillActive(ranked []model.HighStakesAuction, now time.Time) []model.HighStakesAuction {
	out := make([]model.HighStakesAuction, 0, len(ranked))
	for _, r := range ranked {
		if r.ActiveAt(now) {
			out = append(out, r)
		}
	}
	return out
}
