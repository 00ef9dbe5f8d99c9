package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"context"
	"time"

	model "artwork-auctions/internal/models"

	"github.com/shopspring/decimal"
)

// ArtworkLookup resolves an artwork id to its owner. Artworks are managed elsewhere.
type ArtworkLookup interface {
	GetArtwork(ctx context.Context, artworkID int64) (model.Artwork, error)
}

// AuctionTx is the store view handed to a locked write section.
// Everything done through it commits or rolls back together.
type AuctionTx interface {
	GetAuction(ctx context.Context, auctionID int64) (model.Auction, error)
	ListAuctionsByArtwork(ctx context.Context, artworkID int64) ([]model.Auction, error)
	CreateAuction(ctx context.Context, auction model.Auction) (model.Auction, error)
	UpdateAuctionEndTime(ctx context.Context, auctionID int64, endTime time.Time) (model.Auction, error)
	MaxOfferAmount(ctx context.Context, auctionID int64) (decimal.Decimal, error)
	CreateOffer(ctx context.Context, offer model.Offer) (model.Offer, error)
}

// AuctionDB defines the auction and offer storage interface.
//
// WithArtworkLock serializes scheduling on one artwork and WithAuctionLock
// serializes the check-and-insert of the bid ladder on one auction. fn's
// returned error rolls the section back and is returned unchanged.
type AuctionDB interface {
	GetAuction(ctx context.Context, auctionID int64) (model.Auction, error)
	FindActiveAuction(ctx context.Context, artworkID int64, now time.Time) (model.Auction, error)
	ListActiveAuctionStats(ctx context.Context, now time.Time) ([]model.AuctionStats, error)

	GetOffer(ctx context.Context, offerID int64) (model.Offer, error)
	ListOffersByAuction(ctx context.Context, auctionID int64) ([]model.Offer, error)
	GetOfferStats(ctx context.Context, auctionID int64) (model.OfferStats, error)
	TransitionOffer(ctx context.Context, offerID int64, from, to model.OfferStatus) (model.Offer, error)

	WithArtworkLock(ctx context.Context, artworkID int64, fn func(tx AuctionTx) error) error
	WithAuctionLock(ctx context.Context, auctionID int64, fn func(tx AuctionTx) error) error
}
