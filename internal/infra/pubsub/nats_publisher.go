package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"vendorhub/internal/domain/service"
)

// jetStreamPublisher is the subset of nats.JetStreamContext used here.
type jetStreamPublisher interface {
	PublishMsg(m *nats.Msg, opts ...nats.PubOpt) (*nats.PubAck, error)
}

// natsPublisher implements EventPublisher over NATS JetStream. Events land on
// <subject>.<event type>, e.g. vendorhub.accounts.account.registered.
type natsPublisher struct {
	conn    *nats.Conn
	js      jetStreamPublisher
	subject string
	logger  *slog.Logger
}

// NewNATSPublisher connects to url and prepares a JetStream context.
func NewNATSPublisher(url, subject string, logger *slog.Logger) (service.EventPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("vendorhub"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, errors.Wrap(err, "connect to nats")
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()

		return nil, errors.Wrap(err, "open jetstream context")
	}

	return &natsPublisher{conn: nc, js: js, subject: subject, logger: logger}, nil
}

// PublishAccountEvent publishes the JSON event and waits for the stream ack.
func (p *natsPublisher) PublishAccountEvent(ctx context.Context, event *service.AccountEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := nats.NewMsg(p.subject + "." + event.Type)
	msg.Data = data
	for k, v := range eventAttributes(event) {
		msg.Header.Set(k, v)
	}
	// JetStream drops duplicates carrying the same message id.
	msg.Header.Set(nats.MsgIdHdr, event.EventID)

	ack, err := p.js.PublishMsg(msg, nats.Context(ctx))
	if err != nil {
		return errors.Wrap(err, "publish to jetstream")
	}

	p.logger.DebugContext(ctx, "[NATS] Event published",
		slog.String("subject", msg.Subject),
		slog.String("stream", ack.Stream),
		slog.Uint64("sequence", ack.Sequence),
	)

	return nil
}

// Close drains the connection, falling back to a hard close.
func (p *natsPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}

	return nil
}
