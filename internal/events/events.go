package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	model "artwork-auctions/internal/models"
	"artwork-auctions/utils"

	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"
)

// Type names the offer lifecycle step an event reports
type Type string

const (
	OfferSubmitted Type = "submitted"
	OfferAccepted  Type = "accepted"
	OfferRejected  Type = "rejected"
	OfferWithdrawn Type = "withdrawn"
)

// TypeForStatus returns the event type emitted when an offer reaches status
func TypeForStatus(status model.OfferStatus) Type {
	switch status {
	case model.OfferAccepted:
		return OfferAccepted
	case model.OfferRejected:
		return OfferRejected
	case model.OfferWithdrawn:
		return OfferWithdrawn
	default:
		return OfferSubmitted
	}
}

// OfferEvent is published after an offer write has committed
type OfferEvent struct {
	EventID    string            `json:"event_id"`
	Type       Type              `json:"type"`
	OfferID    int64             `json:"offer_id"`
	AuctionID  int64             `json:"auction_id"`
	UserID     int64             `json:"user_id"`
	Amount     decimal.Decimal   `json:"amount"`
	Status     model.OfferStatus `json:"status"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// NewOfferEvent builds an event for offer with a fresh event id
func NewOfferEvent(offer model.Offer, at time.Time) OfferEvent {
	return OfferEvent{
		EventID:    utils.GenerateID(),
		Type:       TypeForStatus(offer.Status),
		OfferID:    offer.ID,
		AuctionID:  offer.AuctionID,
		UserID:     offer.UserID,
		Amount:     offer.Amount,
		Status:     offer.Status,
		OccurredAt: at.UTC(),
	}
}

// Publisher delivers offer events to downstream consumers
type Publisher interface {
	Publish(ctx context.Context, event OfferEvent) error
}

// NopPublisher drops every event
type NopPublisher struct{}

// Publish implements Publisher
func (NopPublisher) Publish(context.Context, OfferEvent) error { return nil }

// natsConn is the part of *nats.Conn the publisher needs
type natsConn interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher publishes JSON events on <prefix>.offers.<type>
type NATSPublisher struct {
	conn   natsConn
	prefix string
}

// Connect dials the NATS server at url
func Connect(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url, nats.Name("artwork-auctions"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return conn, nil
}

// NewNATSPublisher creates a publisher on an open connection
func NewNATSPublisher(conn *nats.Conn, prefix string) *NATSPublisher {
	return &NATSPublisher{conn: conn, prefix: prefix}
}

// Subject returns the subject events of type t are published on
func (p *NATSPublisher) Subject(t Type) string {
	return fmt.Sprintf("%s.offers.%s", p.prefix, t)
}

// Publish implements Publisher. Core NATS publish is fire-and-forget, so ctx only guards the marshal step.
func (p *NATSPublisher) Publish(ctx context.Context, event OfferEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal offer event: %w", err)
	}

	subject := p.Subject(event.Type)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}
