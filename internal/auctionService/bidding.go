package auction

import (
	"context"
	"fmt"
	"time"

	"artwork-auctions/internal/auctionerrors"
	"artwork-auctions/internal/authz"
	model "artwork-auctions/internal/models"
	"artwork-auctions/internal/repository"

	"github.com/shopspring/decimal"
)

// MakeOffer validates and records a bid on an active auction.
//
// The ladder is checked twice: once against a snapshot to fail fast, and
// again under the auction lock together with the insert. A bid that passed
// the snapshot but lost to a concurrent commit gets ErrOutbid.
func (s *AuctionService) MakeOffer(ctx context.Context, auctionID, bidderID int64, amount decimal.Decimal) (offer model.Offer, err error) {
	defer func() { s.metrics.OfferResult(outcome(err)) }()

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Offer{}, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}

	now := s.now()
	if !auction.ActiveAt(now) {
		return model.Offer{}, inactiveErr(auction, now)
	}

	ownerID, err := s.ownerOf(ctx, auction.ArtworkID)
	if err != nil {
		return model.Offer{}, err
	}
	if err := authz.Check(bidderID, authz.Resource{ArtworkOwnerID: ownerID}, authz.PlaceBid); err != nil {
		return model.Offer{}, fmt.Errorf("service: %w", err)
	}

	if !amount.IsPositive() || !model.FitsMoneyScale(amount) {
		return model.Offer{}, fmt.Errorf("service: %w - got %s", auctionerrors.ErrInvalidAmount, amount)
	}

	stats, err := s.repo.GetOfferStats(ctx, auctionID)
	if err != nil {
		return model.Offer{}, fmt.Errorf("service: failed to get offer stats for auction %d: %w", auctionID, err)
	}
	if err := checkLadder(amount, auction.StartingPrice, stats.MaxAmount); err != nil {
		return model.Offer{}, err
	}

	err = s.repo.WithAuctionLock(ctx, auctionID, func(tx repository.AuctionTx) error {
		locked, err := tx.GetAuction(ctx, auctionID)
		if err != nil {
			return fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
		}

		now = s.now()
		if !locked.ActiveAt(now) {
			return inactiveErr(locked, now)
		}

		highest, err := tx.MaxOfferAmount(ctx, auctionID)
		if err != nil {
			return fmt.Errorf("service: failed to get max offer for auction %d: %w", auctionID, err)
		}
		if !amount.GreaterThan(highest) {
			if highest.GreaterThan(stats.MaxAmount) {
				return fmt.Errorf("service: %w - current highest offer is %s", auctionerrors.ErrOutbid, highest)
			}
			return fmt.Errorf("service: %w - current highest offer is %s", auctionerrors.ErrBidTooLow, highest)
		}

		offer, err = tx.CreateOffer(ctx, model.Offer{
			AuctionID: auctionID,
			UserID:    bidderID,
			Amount:    amount,
			Timestamp: now,
			Status:    model.OfferSubmitted,
		})
		if err != nil {
			return fmt.Errorf("service: failed to record offer on auction %d by user %d: %w", auctionID, bidderID, err)
		}
		return nil
	})
	if err != nil {
		return model.Offer{}, err
	}

	s.publish(ctx, offer)
	return offer, nil
}

// checkLadder requires amount to be strictly above both the starting price and the current maximum
func checkLadder(amount, startingPrice, currentMax decimal.Decimal) error {
	if !amount.GreaterThan(startingPrice) {
		return fmt.Errorf("service: %w - starting price is %s", auctionerrors.ErrBidTooLow, startingPrice)
	}
	if !amount.GreaterThan(currentMax) {
		return fmt.Errorf("service: %w - current highest offer is %s", auctionerrors.ErrBidTooLow, currentMax)
	}
	return nil
}

func inactiveErr(auction model.Auction, now time.Time) error {
	return fmt.Errorf("service: %w - auction %d runs %s to %s, now %s", auctionerrors.ErrAuctionInactive, auction.ID,
		auction.StartTime.Format(time.RFC3339), auction.EndTime.Format(time.RFC3339), now.Format(time.RFC3339))
}
