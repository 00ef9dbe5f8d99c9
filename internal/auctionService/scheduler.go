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

// StartAuctionParams describes an auction to schedule
type StartAuctionParams struct {
	ArtworkID     int64
	RequesterID   int64
	StartTime     time.Time
	EndTime       time.Time
	StartingPrice decimal.Decimal
	Currency      model.Currency
}

// StartAuction schedules a new auction on an artwork owned by the requester.
// The overlap and single-pending-auction checks run under the artwork lock.
func (s *AuctionService) StartAuction(ctx context.Context, p StartAuctionParams) (auction model.Auction, err error) {
	defer func() { s.metrics.AuctionScheduled(outcome(err)) }()

	ownerID, err := s.ownerOf(ctx, p.ArtworkID)
	if err != nil {
		return model.Auction{}, err
	}
	if err := authz.Check(p.RequesterID, authz.Resource{ArtworkOwnerID: ownerID}, authz.ManageAuction); err != nil {
		return model.Auction{}, fmt.Errorf("service: %w", err)
	}

	now := s.now()
	start, end := p.StartTime.UTC(), p.EndTime.UTC()
	if err := s.validateWindow(now, start, end, p.StartingPrice, p.Currency); err != nil {
		return model.Auction{}, err
	}

	candidate := model.Auction{
		ArtworkID:     p.ArtworkID,
		StartTime:     start,
		EndTime:       end,
		StartingPrice: p.StartingPrice,
		Currency:      p.Currency,
	}

	err = s.repo.WithArtworkLock(ctx, p.ArtworkID, func(tx repository.AuctionTx) error {
		existing, err := tx.ListAuctionsByArtwork(ctx, p.ArtworkID)
		if err != nil {
			return fmt.Errorf("service: failed to list auctions for artwork %d: %w", p.ArtworkID, err)
		}
		if err := checkSchedule(existing, 0, start, end, now); err != nil {
			return err
		}

		auction, err = tx.CreateAuction(ctx, candidate)
		if err != nil {
			return fmt.Errorf("service: failed to create auction on artwork %d: %w", p.ArtworkID, err)
		}
		return nil
	})
	if err != nil {
		return model.Auction{}, err
	}
	return auction, nil
}

// UpdateAuctionEndTime moves an auction's end time. Setting it to now ends the auction early.
func (s *AuctionService) UpdateAuctionEndTime(ctx context.Context, auctionID, requesterID int64, newEndTime time.Time) (model.Auction, error) {
	current, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}

	ownerID, err := s.ownerOf(ctx, current.ArtworkID)
	if err != nil {
		return model.Auction{}, err
	}
	if err := authz.Check(requesterID, authz.Resource{ArtworkOwnerID: ownerID}, authz.ManageAuction); err != nil {
		return model.Auction{}, fmt.Errorf("service: %w", err)
	}

	end := newEndTime.UTC()
	if !end.After(current.StartTime) {
		return model.Auction{}, fmt.Errorf("service: %w - end %s is not after start %s",
			auctionerrors.ErrInvalidWindow, end.Format(time.RFC3339), current.StartTime.Format(time.RFC3339))
	}

	var updated model.Auction
	err = s.repo.WithArtworkLock(ctx, current.ArtworkID, func(tx repository.AuctionTx) error {
		existing, err := tx.ListAuctionsByArtwork(ctx, current.ArtworkID)
		if err != nil {
			return fmt.Errorf("service: failed to list auctions for artwork %d: %w", current.ArtworkID, err)
		}
		if err := checkSchedule(existing, auctionID, current.StartTime, end, s.now()); err != nil {
			return err
		}

		updated, err = tx.UpdateAuctionEndTime(ctx, auctionID, end)
		if err != nil {
			return fmt.Errorf("service: failed to update auction %d: %w", auctionID, err)
		}
		return nil
	})
	if err != nil {
		return model.Auction{}, err
	}
	return updated, nil
}

func (s *AuctionService) validateWindow(now, start, end time.Time, price decimal.Decimal, currency model.Currency) error {
	if start.Before(now.Add(-s.startGrace)) {
		return fmt.Errorf("service: %w - start %s is more than %s before now", auctionerrors.ErrStartInPast, start.Format(time.RFC3339), s.startGrace)
	}
	if !end.After(start) {
		return fmt.Errorf("service: %w", auctionerrors.ErrInvalidWindow)
	}
	if price.IsNegative() || !model.FitsMoneyScale(price) {
		return fmt.Errorf("service: %w - got %s", auctionerrors.ErrInvalidPrice, price)
	}
	if !currency.Valid() {
		return fmt.Errorf("service: %w - %q", auctionerrors.ErrInvalidCurrency, currency)
	}
	return nil
}

// checkSchedule enforces, for the window [start, end] of auction selfID (0 for a new one),
// that no other auction on the artwork overlaps it and that at most one auction
// on the artwork ends in the future. A new auction is refused while any other
// auction is pending or running; an existing one only when its new end is in the future.
func checkSchedule(existing []model.Auction, selfID int64, start, end, now time.Time) error {
	forwardLooking := selfID == 0 || end.After(now)
	for _, other := range existing {
		if other.ID == selfID {
			continue
		}
		if other.Overlaps(start, end) {
			return fmt.Errorf("service: %w - auction %d runs %s to %s", auctionerrors.ErrAuctionOverlap,
				other.ID, other.StartTime.Format(time.RFC3339), other.EndTime.Format(time.RFC3339))
		}
		if forwardLooking && other.EndTime.After(now) {
			return fmt.Errorf("service: %w - auction %d ends %s", auctionerrors.ErrFutureAuctionExists,
				other.ID, other.EndTime.Format(time.RFC3339))
		}
	}
	return nil
}
