package authz

import (
	"fmt"

	"artwork-auctions/internal/auctionerrors"
)

// Capability names an action a requester wants to take on a resource
type Capability int

const (
	ManageAuction Capability = iota // schedule or change an auction window
	ViewOffers                      // list every offer on an auction
	DecideOffer                     // accept or reject an offer
	PlaceBid                        // submit an offer
	WithdrawOffer                   // withdraw one's own offer
)

func (c Capability) String() string {
	switch c {
	case ManageAuction:
		return "manage_auction"
	case ViewOffers:
		return "view_offers"
	case DecideOffer:
		return "decide_offer"
	case PlaceBid:
		return "place_bid"
	case WithdrawOffer:
		return "withdraw_offer"
	default:
		return fmt.Sprintf("capability(%d)", int(c))
	}
}

// Resource carries the ownership ids a decision depends on.
// BidderID is zero when the resource is not an offer.
type Resource struct {
	ArtworkOwnerID int64
	BidderID       int64
}

// Check returns nil when requesterID holds capability on resource,
// otherwise an error wrapping auctionerrors.ErrUnauthorized.
func Check(requesterID int64, resource Resource, capability Capability) error {
	isOwner := requesterID == resource.ArtworkOwnerID

	switch capability {
	case ManageAuction, ViewOffers, DecideOffer:
		if !isOwner {
			return fmt.Errorf("authz: %s: %w", capability, auctionerrors.ErrNotArtworkOwner)
		}
	case PlaceBid:
		if isOwner {
			return fmt.Errorf("authz: %s: %w", capability, auctionerrors.ErrOwnerCannotBid)
		}
	case WithdrawOffer:
		if requesterID != resource.BidderID || isOwner {
			return fmt.Errorf("authz: %s: %w", capability, auctionerrors.ErrNotOfferBidder)
		}
	default:
		return fmt.Errorf("authz: unknown %s: %w", capability, auctionerrors.ErrUnauthorized)
	}
	return nil
}
