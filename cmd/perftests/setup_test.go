package perftests

import (
	"context"
	"testing"
	"time"

	auction "artwork-auctions/internal/auctionService"
	model "artwork-auctions/internal/models"
	repository "artwork-auctions/internal/repository"

	"github.com/shopspring/decimal"
)

const ownerID int64 = 1

var benchNow = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

// setupAuctions creates a memory-backed service with numAuctions running auctions,
// one per artwork, all owned by ownerID
func setupAuctions(tb testing.TB, numAuctions int) (*auction.AuctionService, []int64) {
	tb.Helper()

	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo, repo, auction.WithClock(func() time.Time { return benchNow }))

	ids := make([]int64, 0, numAuctions)
	for i := 0; i < numAuctions; i++ {
		artworkID := int64(i + 1)
		repo.AddArtwork(model.Artwork{ID: artworkID, OwnerID: ownerID})

		created, err := svc.StartAuction(context.Background(), auction.StartAuctionParams{
			ArtworkID:     artworkID,
			RequesterID:   ownerID,
			StartTime:     benchNow,
			EndTime:       benchNow.Add(time.Hour),
			StartingPrice: decimal.NewFromInt(100),
			Currency:      model.USD,
		})
		if err != nil {
			tb.Fatalf("failed to start auction %d: %v", i, err)
		}
		ids = append(ids, created.ID)
	}
	return svc, ids
}

// bidderID spreads bidders away from the owner
func bidderID(n int) int64 {
	return int64(n%1_000_000) + 2
}

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
