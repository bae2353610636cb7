package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "vendorhub/internal/delivery/context"
	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/repository"
	"vendorhub/internal/domain/service"
	"vendorhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const eventPublishTimeout = 5 * time.Second

// accountStore resolves either account type through repositories bound to
// one transaction.
type accountStore struct {
	users   repository.UserRepository
	vendors repository.VendorRepository
}

func newAccountStore(repoFactory repository.RepositoryFactory) accountStore {
	return accountStore{
		users:   repoFactory.NewUserRepository(),
		vendors: repoFactory.NewVendorRepository(),
	}
}

// findByEmail returns nil without error when no account matches.
func (s accountStore) findByEmail(ctx context.Context, accountType entity.AccountType, email string) (entity.Account, error) {
	email = entity.NormalizeEmail(email)

	switch accountType {
	case entity.AccountTypeUser:
		user, err := s.users.FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find user by email")
		}

		return user, nil
	case entity.AccountTypeVendor:
		vendor, err := s.vendors.FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find vendor by email")
		}

		return vendor, nil
	default:
		return nil, errors.Errorf("unknown account type %q", accountType)
	}
}

// findByID maps a missing account to the NotFound error of its type.
func (s accountStore) findByID(ctx context.Context, ref entity.AccountRef) (entity.Account, error) {
	switch ref.Type {
	case entity.AccountTypeUser:
		user, err := s.users.FindByID(ctx, ref.ID)
		if err != nil {
			return nil, notFoundOr(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound)
		}

		return user, nil
	case entity.AccountTypeVendor:
		vendor, err := s.vendors.FindByID(ctx, ref.ID)
		if err != nil {
			return nil, notFoundOr(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound)
		}

		return vendor, nil
	default:
		return nil, errors.Errorf("unknown account type %q", ref.Type)
	}
}

func (s accountStore) updatePassword(ctx context.Context, ref entity.AccountRef, hash string) error {
	switch ref.Type {
	case entity.AccountTypeUser:
		return notFoundOr(s.users.UpdatePassword(ctx, ref.ID, hash), repository.ErrUserNotFound, domainerrors.ErrUserNotFound)
	case entity.AccountTypeVendor:
		return notFoundOr(s.vendors.UpdatePassword(ctx, ref.ID, hash), repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound)
	default:
		return errors.Errorf("unknown account type %q", ref.Type)
	}
}

func notFoundOr(err, sentinel error, notFound *domainerrors.BaseError) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sentinel) {
		return notFound.WrapMessage(err.Error())
	}

	return err
}

// --- Pure decisions ---

// credentialsMatch decides a login attempt. A missing account still pays for
// one hash comparison against decoy so response time does not reveal it.
func credentialsMatch(account entity.Account, verifier entity.PasswordVerifier, password, decoy string) bool {
	if account == nil {
		verifier.Check(password, decoy)
		return false
	}

	return account.VerifyPassword(verifier, password)
}

// uniquenessConflict maps the outcome of the uniqueness probes to a Conflict error.
func uniquenessConflict(usernameTaken, emailTaken bool) error {
	switch {
	case usernameTaken:
		return domainerrors.ErrUsernameTaken
	case emailTaken:
		return domainerrors.ErrEmailTaken
	default:
		return nil
	}
}

// authorizeSelf allows a principal to act only on its own account.
func authorizeSelf(principal usecase.Principal, accountType entity.AccountType, targetID uuid.UUID) error {
	if principal.AccountType != accountType || principal.AccountID != targetID {
		return domainerrors.ErrCrossAccount
	}

	return nil
}

func newAccountID() (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to generate account id")
	}

	return id, nil
}

// hashPassword keeps the hasher's validation errors and reports anything
// else as a hashing failure.
func hashPassword(hasher service.PasswordHasher, password string) (string, error) {
	hash, err := hasher.Hash(password)
	if err == nil {
		return hash, nil
	}
	if errors.Is(err, domainerrors.ErrValidationFailed) {
		return "", err
	}

	return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
}

// --- Side effects after commit ---

// accountEvents publishes account events after a flow committed. Failures are
// logged and counted and never fail the flow.
type accountEvents struct {
	publisher service.EventPublisher
	recorder  service.FlowRecorder
	logger    *slog.Logger
	now       func() time.Time
}

func (e accountEvents) publish(ctx context.Context, eventType string, account entity.Account) {
	if e.publisher == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.NewString(),
		Type:        eventType,
		AccountID:   account.GetID().String(),
		AccountType: account.Type().String(),
		Email:       account.GetEmail(),
		OccurredAt:  e.now().UTC(),
	}

	// The request may already be cancelled once the response is written.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()

	if err := e.publisher.PublishAccountEvent(publishCtx, event); err != nil {
		e.recorder.RecordEventPublishFailure(eventType)
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish account event",
			slog.String("event", eventType),
			slog.String("eventID", event.EventID),
			slog.Any("accountID", account.GetID()),
			slog.Any("error", err))
	}
}

// decoyHash lazily computes one bcrypt digest used to equalise login timing.
type decoyHash struct {
	once   sync.Once
	hasher service.PasswordHasher
	value  string
}

func (d *decoyHash) get() string {
	d.once.Do(func() {
		hash, err := d.hasher.Hash(uuid.NewString())
		if err == nil {
			d.value = hash
		}
	})

	return d.value
}
