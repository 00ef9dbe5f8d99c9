package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the ISO code an auction is priced in
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

// Valid reports whether c is one of the supported currencies
func (c Currency) Valid() bool {
	switch c {
	case USD, EUR, GBP:
		return true
	}
	return false
}

// MoneyScale is the number of decimal places stored for prices and amounts
const MoneyScale = 4

// FitsMoneyScale reports whether d can be stored without rounding
func FitsMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyScale))
}

// OfferStatus is the lifecycle state of an offer
type OfferStatus string

const (
	OfferSubmitted OfferStatus = "SUBMITTED"
	OfferAccepted  OfferStatus = "ACCEPTED"
	OfferRejected  OfferStatus = "REJECTED"
	OfferWithdrawn OfferStatus = "WITHDRAWN"
)

// Terminal reports whether no further transitions are allowed from s
func (s OfferStatus) Terminal() bool {
	return s == OfferAccepted || s == OfferRejected || s == OfferWithdrawn
}

// Artwork is the slice of an artwork this service needs: who owns it
type Artwork struct {
	ID      int64 `json:"id"`
	OwnerID int64 `json:"owner_id"`
}

// Auction is a time-boxed sale of one artwork
type Auction struct {
	ID            int64           `json:"id"`
	ArtworkID     int64           `json:"artwork_id"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       time.Time       `json:"end_time"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	Currency      Currency        `json:"currency"`
}

// ActiveAt reports whether t falls inside the closed window [StartTime, EndTime]
func (a Auction) ActiveAt(t time.Time) bool {
	return !t.Before(a.StartTime) && !t.After(a.EndTime)
}

// Overlaps reports whether [start, end] intersects the auction window
func (a Auction) Overlaps(start, end time.Time) bool {
	return !start.After(a.EndTime) && !a.StartTime.After(end)
}

// Offer is a single bid against an auction
type Offer struct {
	ID        int64           `json:"id"`
	AuctionID int64           `json:"auction_id"`
	UserID    int64           `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
	Status    OfferStatus     `json:"status"`
}

// OfferStats aggregates every offer on an auction regardless of status
type OfferStats struct {
	Count     int             `json:"count"`
	MaxAmount decimal.Decimal `json:"max_amount"`
}

// AuctionStats pairs an auction with its offer aggregate
type AuctionStats struct {
	Auction
	Offers OfferStats
}

// CurrentPrice is max(StartingPrice, Offers.MaxAmount)
func (s AuctionStats) CurrentPrice() decimal.Decimal {
	return decimal.Max(s.StartingPrice, s.Offers.MaxAmount)
}

// ActiveAuction is the discovery view of an auction that is open right now
type ActiveAuction struct {
	Auction
	CurrentPrice decimal.Decimal `json:"current_price"`
	OfferCount   int             `json:"offer_count"`
}

// HighStakesAuction is an active auction with its ranking score
type HighStakesAuction struct {
	ActiveAuction
	Heat float64 `json:"heat"`
}
