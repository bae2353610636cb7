package impl

import (
	"context"
	"testing"
	"time"

	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memAccountEventRepo struct {
	events map[uuid.UUID]entity.AccountEvent
	err    error
}

func (r *memAccountEventRepo) Record(_ context.Context, event *entity.AccountEvent) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.events[event.ID]; ok {
		return false, nil
	}
	r.events[event.ID] = *event

	return true, nil
}

type receivedRecorder struct {
	service.FlowRecorder
	outcomes []string
}

func (r *receivedRecorder) RecordEventReceived(event string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	r.outcomes = append(r.outcomes, event+":"+outcome)
}

func newAccountEventFixture() (*accountEventService, *memAccountEventRepo, *receivedRecorder) {
	repo := &memAccountEventRepo{events: map[uuid.UUID]entity.AccountEvent{}}
	recorder := &receivedRecorder{}
	srv := NewAccountEventService(AccountEventServiceParams{
		Repo:     repo,
		Recorder: recorder,
		Logger:   newDiscardLogger(),
	}).(*accountEventService)
	srv.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	return srv, repo, recorder
}

func TestAccountEventService_Record(t *testing.T) {
	ctx := context.Background()
	occurred := time.Date(2025, 3, 1, 11, 59, 0, 0, time.UTC)
	event := &service.AccountEvent{
		RequestID:   "req-1",
		EventID:     uuid.NewString(),
		Type:        service.EventVendorOnboarded,
		AccountID:   uuid.NewString(),
		AccountType: string(entity.AccountTypeVendor),
		Email:       "asha@example.com",
		OccurredAt:  occurred,
	}

	t.Run("first delivery is stored", func(t *testing.T) {
		srv, repo, recorder := newAccountEventFixture()

		require.NoError(t, srv.Record(ctx, event))
		require.Len(t, repo.events, 1)

		stored := repo.events[uuid.MustParse(event.EventID)]
		assert.Equal(t, entity.AccountTypeVendor, stored.Account.Type)
		assert.Equal(t, event.AccountID, stored.Account.ID.String())
		assert.Equal(t, "req-1", stored.RequestID)
		assert.Equal(t, occurred, stored.OccurredAt)
		assert.Equal(t, srv.now(), stored.ReceivedAt)
		assert.Equal(t, []string{"vendor.onboarded:success"}, recorder.outcomes)
	})

	t.Run("redelivery is acknowledged once", func(t *testing.T) {
		srv, repo, _ := newAccountEventFixture()

		require.NoError(t, srv.Record(ctx, event))
		require.NoError(t, srv.Record(ctx, event))
		assert.Len(t, repo.events, 1)
	})

	t.Run("missing occurrence time falls back to receipt", func(t *testing.T) {
		srv, repo, _ := newAccountEventFixture()
		undated := *event
		undated.OccurredAt = time.Time{}

		require.NoError(t, srv.Record(ctx, &undated))
		assert.Equal(t, srv.now(), repo.events[uuid.MustParse(event.EventID)].OccurredAt)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		srv, repo, recorder := newAccountEventFixture()
		repo.err = domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "insert")

		err := srv.Record(ctx, event)
		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrValidationFailed))
		assert.Equal(t, []string{"vendor.onboarded:failure"}, recorder.outcomes)
	})
}

func TestAccountEventService_RecordRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		event *service.AccountEvent
		want  []string
	}{
		{"nil event", nil, []string{"event is required"}},
		{
			"every field wrong",
			&service.AccountEvent{EventID: "x", Type: "account.teleported", AccountType: "admin", AccountID: "y"},
			[]string{
				"event_id must be a valid UUID",
				"type is not a known account event",
				"account_type must be one of [user vendor]",
				"account_id must be a valid UUID",
			},
		},
		{
			"bad account id only",
			&service.AccountEvent{EventID: uuid.NewString(), Type: service.EventAccountDeleted, AccountType: "user", AccountID: ""},
			[]string{"account_id must be a valid UUID"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, repo, recorder := newAccountEventFixture()

			err := srv.Record(context.Background(), tt.event)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.want, appErr.Details())
			assert.Empty(t, repo.events)
			require.Len(t, recorder.outcomes, 1)
			assert.Contains(t, recorder.outcomes[0], ":failure")
		})
	}
}
