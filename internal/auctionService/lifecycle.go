package auction

import (
	"context"
	"fmt"

	"artwork-auctions/internal/auctionerrors"
	"artwork-auctions/internal/authz"
	model "artwork-auctions/internal/models"
)

// AcceptOffer marks a submitted offer ACCEPTED. Other offers on the auction are left as they are.
func (s *AuctionService) AcceptOffer(ctx context.Context, offerID, requesterID int64) (model.Offer, error) {
	return s.transition(ctx, offerID, requesterID, authz.DecideOffer, model.OfferAccepted)
}

// RejectOffer marks a submitted offer REJECTED
func (s *AuctionService) RejectOffer(ctx context.Context, offerID, requesterID int64) (model.Offer, error) {
	return s.transition(ctx, offerID, requesterID, authz.DecideOffer, model.OfferRejected)
}

// WithdrawOffer lets the bidder take back a submitted offer
func (s *AuctionService) WithdrawOffer(ctx context.Context, offerID, requesterID int64) (model.Offer, error) {
	return s.transition(ctx, offerID, requesterID, authz.WithdrawOffer, model.OfferWithdrawn)
}

// transition moves an offer from SUBMITTED to target. The store update is
// conditional on the status, so of two racing transitions only one wins.
func (s *AuctionService) transition(ctx context.Context, offerID, requesterID int64, capability authz.Capability, target model.OfferStatus) (model.Offer, error) {
	offer, err := s.repo.GetOffer(ctx, offerID)
	if err != nil {
		return model.Offer{}, fmt.Errorf("service: failed to get offer %d: %w", offerID, err)
	}

	auction, err := s.repo.GetAuction(ctx, offer.AuctionID)
	if err != nil {
		return model.Offer{}, fmt.Errorf("service: failed to get auction %d for offer %d: %w", offer.AuctionID, offerID, err)
	}

	// a terminal offer is a bad request whoever asks
	if offer.Status != model.OfferSubmitted {
		return model.Offer{}, fmt.Errorf("service: %w - offer %d is %s", auctionerrors.ErrOfferNotSubmitted, offerID, offer.Status)
	}

	ownerID, err := s.ownerOf(ctx, auction.ArtworkID)
	if err != nil {
		return model.Offer{}, err
	}
	resource := authz.Resource{ArtworkOwnerID: ownerID, BidderID: offer.UserID}
	if err := authz.Check(requesterID, resource, capability); err != nil {
		return model.Offer{}, fmt.Errorf("service: %w", err)
	}

	updated, err := s.repo.TransitionOffer(ctx, offerID, model.OfferSubmitted, target)
	if err != nil {
		return model.Offer{}, fmt.Errorf("service: failed to mark offer %d %s: %w", offerID, target, err)
	}

	s.metrics.OfferTransition(string(target))
	s.publish(ctx, updated)
	return updated, nil
}
