package helpers

import (
	"time"

	model "artwork-auctions/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type StartAuctionRequest struct {
	StartTime     time.Time       `json:"start_time"`
	EndTime       time.Time       `json:"end_time"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	Currency      string          `json:"currency" binding:"required"`
}

type UpdateAuctionRequest struct {
	EndTime time.Time `json:"end_time"`
}

type MakeOfferRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type AuctionResponse struct {
	AuctionID     int64           `json:"auction_id"`
	ArtworkID     int64           `json:"artwork_id"`
	StartTime     string          `json:"start_time"`
	EndTime       string          `json:"end_time"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	Currency      string          `json:"currency"`
}

type ActiveAuctionResponse struct {
	AuctionResponse
	CurrentPrice decimal.Decimal `json:"current_price"`
	OfferCount   int             `json:"offer_count"`
}

type HighStakesResponse struct {
	ActiveAuctionResponse
	Heat float64 `json:"heat"`
}

type OfferResponse struct {
	OfferID   int64           `json:"offer_id"`
	AuctionID int64           `json:"auction_id"`
	UserID    int64           `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp string          `json:"timestamp"`
	Status    string          `json:"status"`
}

type MaxOfferResponse struct {
	AuctionID int64           `json:"auction_id"`
	MaxAmount decimal.Decimal `json:"max_amount"`
}

type DiscoverResponse struct {
	HighStakes []HighStakesResponse `json:"high_stakes"`
}

// NewAuctionResponse maps an auction to its wire form
func NewAuctionResponse(a model.Auction) AuctionResponse {
	return AuctionResponse{
		AuctionID:     a.ID,
		ArtworkID:     a.ArtworkID,
		StartTime:     a.StartTime.UTC().Format(time.RFC3339),
		EndTime:       a.EndTime.UTC().Format(time.RFC3339),
		StartingPrice: a.StartingPrice,
		Currency:      string(a.Currency),
	}
}

// NewActiveAuctionResponse maps an active auction view to its wire form
func NewActiveAuctionResponse(a model.ActiveAuction) ActiveAuctionResponse {
	return ActiveAuctionResponse{
		AuctionResponse: NewAuctionResponse(a.Auction),
		CurrentPrice:    a.CurrentPrice,
		OfferCount:      a.OfferCount,
	}
}

// NewOfferResponse maps an offer to its wire form
func NewOfferResponse(o model.Offer) OfferResponse {
	return OfferResponse{
		OfferID:   o.ID,
		AuctionID: o.AuctionID,
		UserID:    o.UserID,
		Amount:    o.Amount,
		Timestamp: o.Timestamp.UTC().Format(time.RFC3339),
		Status:    string(o.Status),
	}
}

// NewOfferResponses maps a slice of offers, never returning nil
func NewOfferResponses(offers []model.Offer) []OfferResponse {
	resp := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		resp = append(resp, NewOfferResponse(o))
	}
	return resp
}

// NewDiscoverResponse maps a ranking to its wire form
func NewDiscoverResponse(ranked []model.HighStakesAuction) DiscoverResponse {
	resp := DiscoverResponse{HighStakes: make([]HighStakesResponse, 0, len(ranked))}
	for _, r := range ranked {
		resp.HighStakes = append(resp.HighStakes, HighStakesResponse{
			ActiveAuctionResponse: NewActiveAuctionResponse(r.ActiveAuction),
			Heat:                  r.Heat,
		})
	}
	return resp
}
