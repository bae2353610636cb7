package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"vendorhub/config"
	"vendorhub/internal/domain/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.AccountEvent {
	return &service.AccountEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		Type:        service.EventAccountRegistered,
		AccountID:   "0190b6b4-0000-7000-8000-000000000001",
		AccountType: "vendor",
		Email:       "vendor@example.com",
		OccurredAt:  time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var got PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishAccountEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", got.Message.MessageID)
	assert.Equal(t, service.EventAccountRegistered, got.Message.Attributes["event_type"])

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var decoded service.AccountEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "vendor@example.com", decoded.Email)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, testLogger()).PublishAccountEvent(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

type fakeJetStream struct {
	msgs []*nats.Msg
	err  error
}

func (f *fakeJetStream) PublishMsg(m *nats.Msg, _ ...nats.PubOpt) (*nats.PubAck, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.msgs = append(f.msgs, m)

	return &nats.PubAck{Stream: "ACCOUNTS", Sequence: uint64(len(f.msgs))}, nil
}

func TestNATSPublisher_PublishesToTypedSubject(t *testing.T) {
	js := &fakeJetStream{}
	publisher := &natsPublisher{js: js, subject: "vendorhub.accounts", logger: testLogger()}

	require.NoError(t, publisher.PublishAccountEvent(context.Background(), sampleEvent()))
	require.Len(t, js.msgs, 1)

	msg := js.msgs[0]
	assert.Equal(t, "vendorhub.accounts.account.registered", msg.Subject)
	assert.Equal(t, "evt-1", msg.Header.Get(nats.MsgIdHdr))
	assert.Equal(t, "vendor", msg.Header.Get("account_type"))
	assert.NoError(t, publisher.Close())
}

func TestNATSPublisher_PropagatesError(t *testing.T) {
	publisher := &natsPublisher{js: &fakeJetStream{err: errors.New("no responders")}, subject: "s", logger: testLogger()}

	err := publisher.PublishAccountEvent(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no responders")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		noop    bool
	}{
		{name: "unset is noop", cfg: nil, noop: true},
		{name: "empty provider is noop", cfg: &config.PubSubConfig{}, noop: true},
		{name: "local requires endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint"},
		{name: "google requires project", cfg: &config.PubSubConfig{Provider: "google"}, wantErr: "project ID"},
		{name: "nats requires url", cfg: &config.PubSubConfig{Provider: "nats"}, wantErr: "nats URL"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Config: &config.Config{PubSub: tt.cfg},
				Logger: testLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			if tt.noop {
				assert.IsType(t, &noopPublisher{}, publisher)
				assert.NoError(t, publisher.PublishAccountEvent(context.Background(), sampleEvent()))
			}
		})
	}
}

func TestNewEventPublisher_LocalRegistersClose(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1"}},
		Logger: testLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	lc.RequireStart().RequireStop()
}
