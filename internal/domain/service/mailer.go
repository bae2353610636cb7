package service

import (
	"context"
	"time"
)

// Mailer delivers password recovery messages. A returned error means the
// message was not handed to the transport.
type Mailer interface {
	SendPasswordResetOTP(ctx context.Context, to, otp string, validFor time.Duration) error
	SendPasswordResetLink(ctx context.Context, to, link string, validFor time.Duration) error
}
