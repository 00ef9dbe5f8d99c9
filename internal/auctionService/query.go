package auction

import (
	"context"
	"errors"
	"fmt"

	"artwork-auctions/internal/auctionerrors"
	"artwork-auctions/internal/authz"
	model "artwork-auctions/internal/models"

	"github.com/shopspring/decimal"
)

// GetActiveAuction returns the auction running on artworkID right now with its
// derived price. found is false when nothing is running, which is not an error.
func (s *AuctionService) GetActiveAuction(ctx context.Context, artworkID int64) (active model.ActiveAuction, found bool, err error) {
	auction, err := s.repo.FindActiveAuction(ctx, artworkID, s.now())
	if errors.Is(err, auctionerrors.ErrNoActiveAuction) {
		return model.ActiveAuction{}, false, nil
	}
	if err != nil {
		return model.ActiveAuction{}, false, fmt.Errorf("service: failed to find active auction for artwork %d: %w", artworkID, err)
	}

	stats, err := s.repo.GetOfferStats(ctx, auction.ID)
	if err != nil {
		return model.ActiveAuction{}, false, fmt.Errorf("service: failed to get offer stats for auction %d: %w", auction.ID, err)
	}

	view := model.AuctionStats{Auction: auction, Offers: stats}
	return model.ActiveAuction{
		Auction:      auction,
		CurrentPrice: view.CurrentPrice(),
		OfferCount:   stats.Count,
	}, true, nil
}

// GetOffers returns every offer on an auction, newest first. Only the artwork owner may list them.
func (s *AuctionService) GetOffers(ctx context.Context, auctionID, requesterID int64) ([]model.Offer, error) {
	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}

	ownerID, err := s.ownerOf(ctx, auction.ArtworkID)
	if err != nil {
		return nil, err
	}
	if err := authz.Check(requesterID, authz.Resource{ArtworkOwnerID: ownerID}, authz.ViewOffers); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	offers, err := s.repo.ListOffersByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get offers for auction %d: %w", auctionID, err)
	}
	return offers, nil
}

// GetMaxOffer returns the highest offer amount on an auction, or zero when there are none
func (s *AuctionService) GetMaxOffer(ctx context.Context, auctionID int64) (decimal.Decimal, error) {
	if _, err := s.repo.GetAuction(ctx, auctionID); err != nil {
		return decimal.Zero, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}

	stats, err := s.repo.GetOfferStats(ctx, auctionID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("service: failed to get offer stats for auction %d: %w", auctionID, err)
	}
	return stats.MaxAmount, nil
}
