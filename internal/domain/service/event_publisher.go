package service

import (
	"context"
	"time"
)

// Account event types.
const (
	EventAccountRegistered      = "account.registered"
	EventVendorOnboarded        = "vendor.onboarded"
	EventAccountPasswordReset   = "account.password_reset"
	EventAccountPasswordChanged = "account.password_changed"
	EventAccountDeleted         = "account.deleted"
)

// AccountEvent describes a committed change to an account for downstream consumers.
type AccountEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	AccountID   string    `json:"account_id"`
	AccountType string    `json:"account_type"`
	Email       string    `json:"email,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
