package events

import (
	"context"
	"time"
)

// RoutingTokenMinted is the routing key for TokenMinted events
const RoutingTokenMinted = "token.minted"

// TokenMinted is emitted after a token row is committed
type TokenMinted struct {
	TokenID   string    `json:"tokenId"`
	ProfileID string    `json:"profileId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Issuer    string    `json:"issuer"`
	Date      time.Time `json:"date"`
	MintedAt  time.Time `json:"mintedAt"`
}

// Publisher delivers domain events to downstream consumers
type Publisher interface {
	PublishTokenMinted(ctx context.Context, event TokenMinted) error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishTokenMinted(context.Context, TokenMinted) error { return nil }
