package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "vendorhub/internal/delivery/context"
	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/repository"
	"vendorhub/internal/domain/service"
	"vendorhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	txManager   repository.TransactionManager
	vendorRepo  repository.VendorRepository
	serviceRepo repository.ServiceRepository
	hasher      service.PasswordHasher
	tokens      usecase.TokenIssuer
	auth        usecase.AuthUsecase
	mailer      service.Mailer
	recorder    service.FlowRecorder
	events      accountEvents
	logger      *slog.Logger
}

// VendorServiceParams holds dependencies for VendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	VendorRepo     repository.VendorRepository
	ServiceRepo    repository.ServiceRepository
	Hasher         service.PasswordHasher
	TokenIssuer    usecase.TokenIssuer
	Auth           usecase.AuthUsecase
	Mailer         service.Mailer
	EventPublisher service.EventPublisher
	Recorder       service.FlowRecorder
	Logger         *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	return &vendorService{
		txManager:   params.TxManager,
		vendorRepo:  params.VendorRepo,
		serviceRepo: params.ServiceRepo,
		hasher:      params.Hasher,
		tokens:      params.TokenIssuer,
		auth:        params.Auth,
		mailer:      params.Mailer,
		recorder:    params.Recorder,
		events: accountEvents{
			publisher: params.EventPublisher,
			recorder:  params.Recorder,
			logger:    params.Logger,
			now:       time.Now,
		},
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the vendor and returns the business_details secret that
// authorises the remaining onboarding steps.
func (srv *vendorService) Register(ctx context.Context, input *usecase.RegisterVendorInput) (output *usecase.RegisterVendorOutput, err error) {
	defer func() { srv.recorder.RecordAuthFlow(flowRegister, entity.AccountTypeVendor.String(), err) }()

	srv.log(ctx).Info("Starting vendor registration", slog.String("email", input.Email))

	hash, err := hashPassword(srv.hasher, input.Password)
	if err != nil {
		return nil, err
	}

	id, err := newAccountID()
	if err != nil {
		return nil, err
	}

	vendor := &entity.Vendor{
		ID:             id,
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Email:          entity.NormalizeEmail(input.Email),
		PhoneNumber:    strings.TrimSpace(input.PhoneNumber),
		HashedPassword: hash,
		CreatedBy:      &id,
		UpdatedBy:      &id,
	}

	var secret string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vendorRepo := repoFactory.NewVendorRepository()

		taken, err := vendorRepo.ExistsByEmail(ctx, vendor.Email, vendor.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if conflict := uniquenessConflict(false, taken); conflict != nil {
			return conflict
		}

		if err := vendorRepo.Create(ctx, vendor); err != nil {
			return errors.Wrap(err, "failed to create vendor")
		}

		secret, err = srv.tokens.Issue(ctx, repoFactory.NewTokenRepository(), vendor.Ref(), entity.TokenKindBusinessDetails)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Vendor registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute vendor registration transaction")
	}

	srv.log(ctx).Info("Vendor registered", slog.Any("vendorID", vendor.ID))
	srv.events.publish(ctx, service.EventAccountRegistered, vendor)

	return &usecase.RegisterVendorOutput{Vendor: vendor, BusinessDetailsToken: secret}, nil
}

// UpdateBusinessDetails stores the business fields. The onboarding token is
// locked for the duration of the write and stays valid for SelectServices.
func (srv *vendorService) UpdateBusinessDetails(ctx context.Context, input *usecase.UpdateBusinessDetailsInput) (output *usecase.RegisterVendorOutput, err error) {
	defer func() {
		srv.recorder.RecordAuthFlow(flowUpdateBusinessDetails, entity.AccountTypeVendor.String(), err)
	}()

	var vendor *entity.Vendor
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vendorRepo := repoFactory.NewVendorRepository()

		token, err := srv.tokens.Validate(ctx, repoFactory.NewTokenRepository(), input.BusinessDetailsToken, entity.TokenKindBusinessDetails, nil)
		if err != nil {
			return err
		}
		if token.Owner.Type != entity.AccountTypeVendor {
			return errors.Wrap(domainerrors.ErrBusinessTokenInvalid, "token not owned by a vendor")
		}

		vendor, err = vendorRepo.FindByID(ctx, token.Owner.ID)
		if err != nil {
			return notFoundOr(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound)
		}

		vendor.ApplyBusinessDetails(input.Details)

		if err := vendorRepo.Update(ctx, vendor); err != nil {
			return errors.Wrap(err, "failed to update business details")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Business details update failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute business details transaction")
	}

	srv.log(ctx).Info("Business details updated", slog.Any("vendorID", vendor.ID))

	return &usecase.RegisterVendorOutput{Vendor: vendor, BusinessDetailsToken: input.BusinessDetailsToken}, nil
}

// SelectServices consumes the onboarding token and stores the selection in
// one transaction. An unknown id rolls everything back, token included.
func (srv *vendorService) SelectServices(ctx context.Context, input *usecase.SelectServicesInput) (output *usecase.VendorOutput, err error) {
	defer func() { srv.recorder.RecordAuthFlow(flowSelectServices, entity.AccountTypeVendor.String(), err) }()

	var (
		vendor   *entity.Vendor
		selected []*entity.Service
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vendorRepo := repoFactory.NewVendorRepository()
		serviceRepo := repoFactory.NewServiceRepository()

		token, err := srv.tokens.Consume(ctx, repoFactory.NewTokenRepository(), input.BusinessDetailsToken, entity.TokenKindBusinessDetails, nil)
		if err != nil {
			return err
		}
		if token.Owner.Type != entity.AccountTypeVendor {
			return errors.Wrap(domainerrors.ErrBusinessTokenInvalid, "token not owned by a vendor")
		}

		found, err := serviceRepo.FindByIDs(ctx, input.ServiceIDs)
		if err != nil {
			return errors.Wrap(err, "failed to load services")
		}

		ids, ok := entity.ResolveServiceSelection(input.ServiceIDs, found)
		if !ok {
			return domainerrors.ErrInvalidServiceSelection
		}

		if err := vendorRepo.ReplaceServices(ctx, token.Owner.ID, ids); err != nil {
			return errors.Wrap(err, "failed to store service selection")
		}

		vendor, err = vendorRepo.FindByID(ctx, token.Owner.ID)
		if err != nil {
			return notFoundOr(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound)
		}
		selected = orderServices(found, vendor.ServiceIDs)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Service selection failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute service selection transaction")
	}

	srv.log(ctx).Info("Vendor services selected", slog.Any("vendorID", vendor.ID), slog.Int("count", len(selected)))
	srv.events.publish(ctx, service.EventVendorOnboarded, vendor)

	return &usecase.VendorOutput{Vendor: vendor, Services: selected}, nil
}

// AddService creates a catalog entry and attaches it to the calling vendor.
func (srv *vendorService) AddService(ctx context.Context, principal usecase.Principal, input *usecase.AddServiceInput) (*entity.Service, error) {
	if principal.AccountType != entity.AccountTypeVendor {
		return nil, domainerrors.ErrForbidden
	}

	created := &entity.Service{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		NextService: input.NextService,
		CreatedBy:   &principal.AccountID,
	}
	if created.Price == "" {
		created.Price = "0.00"
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vendorRepo := repoFactory.NewVendorRepository()
		serviceRepo := repoFactory.NewServiceRepository()

		vendor, err := vendorRepo.FindByID(ctx, principal.AccountID)
		if err != nil {
			return notFoundOr(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound)
		}

		_, err = serviceRepo.FindByName(ctx, created.Name)
		switch {
		case err == nil:
			return domainerrors.ErrServiceNameTaken
		case !errors.Is(err, repository.ErrServiceNotFound):
			return errors.Wrap(err, "failed to look up service")
		}

		if err := serviceRepo.Create(ctx, created); err != nil {
			return errors.Wrap(err, "failed to create service")
		}

		if vendor.AddService(created.ID) {
			if err := vendorRepo.ReplaceServices(ctx, vendor.ID, vendor.ServiceIDs); err != nil {
				return errors.Wrap(err, "failed to attach service")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Add service failed", slog.Any("vendorID", principal.AccountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute add service transaction")
	}

	srv.log(ctx).Info("Service added and associated", slog.Any("vendorID", principal.AccountID), slog.Any("serviceID", created.ID))

	return created, nil
}

// Login delegates to the shared flow and resolves the vendor's services.
func (srv *vendorService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.VendorLoginOutput, error) {
	input.AccountType = entity.AccountTypeVendor

	out, err := srv.auth.Login(ctx, input)
	if err != nil {
		return nil, err
	}

	vendor, ok := out.Account.(*entity.Vendor)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "login returned a non-vendor account")
	}

	services, err := srv.servicesOf(ctx, vendor)
	if err != nil {
		return nil, err
	}

	return &usecase.VendorLoginOutput{Session: out.Session, Vendor: vendor, Services: services}, nil
}

// ForgotPassword mails a one-time code. Unknown addresses succeed without a mail.
func (srv *vendorService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) (err error) {
	defer func() { srv.recorder.RecordAuthFlow(flowForgotPassword, entity.AccountTypeVendor.String(), err) }()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewTokenRepository()

		account, err := newAccountStore(repoFactory).findByEmail(ctx, entity.AccountTypeVendor, input.Email)
		if err != nil {
			return err
		}
		if account == nil {
			srv.log(ctx).Info("OTP requested for unknown email")

			return nil
		}

		// Earlier codes are removed so a repeated code cannot collide with them.
		if err := srv.tokens.DeleteAll(ctx, tokenRepo, account.Ref(), entity.TokenKindResetOTP); err != nil {
			return err
		}

		otp, err := srv.tokens.IssueOTP(ctx, tokenRepo, account.Ref())
		if err != nil {
			return err
		}

		if err := srv.mailer.SendPasswordResetOTP(ctx, account.GetEmail(), otp, srv.tokens.TTL(entity.TokenKindResetOTP)); err != nil {
			srv.log(ctx).Error("Failed to send OTP", slog.Any("vendorID", account.GetID()), slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrMailDeliveryFailed, err.Error())
		}

		srv.log(ctx).Info("OTP generated and sent", slog.Any("vendorID", account.GetID()))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute forgot password transaction")
	}

	return nil
}

// VerifyOTP redeems the code and issues the reset_password secret that
// authorises the actual reset.
func (srv *vendorService) VerifyOTP(ctx context.Context, input *usecase.VerifyOTPInput) (secret string, err error) {
	defer func() { srv.recorder.RecordAuthFlow(flowVerifyOTP, entity.AccountTypeVendor.String(), err) }()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewTokenRepository()

		account, err := newAccountStore(repoFactory).findByEmail(ctx, entity.AccountTypeVendor, input.Email)
		if err != nil {
			return err
		}
		if account == nil {
			return errors.Wrap(domainerrors.ErrOTPInvalid, "unknown email")
		}

		owner := account.Ref()
		if _, err := srv.tokens.Redeem(ctx, tokenRepo, input.OTP, entity.TokenKindResetOTP, &owner); err != nil {
			return err
		}

		secret, err = srv.tokens.Issue(ctx, tokenRepo, owner, entity.TokenKindResetPassword)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("OTP verification failed", slog.Any("error", err))

		return "", errors.Wrap(err, "failed to execute verify OTP transaction")
	}

	srv.log(ctx).Info("OTP verified successfully")

	return secret, nil
}

// GetProfile returns the calling vendor with its services.
func (srv *vendorService) GetProfile(ctx context.Context, principal usecase.Principal) (*usecase.VendorOutput, error) {
	if principal.AccountType != entity.AccountTypeVendor {
		return nil, domainerrors.ErrForbidden
	}

	vendor, err := srv.vendorRepo.FindByID(ctx, principal.AccountID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound)
	}

	services, err := srv.servicesOf(ctx, vendor)
	if err != nil {
		return nil, err
	}

	return &usecase.VendorOutput{Vendor: vendor, Services: services}, nil
}

// Update applies a partial update to the caller's own vendor record.
func (srv *vendorService) Update(ctx context.Context, principal usecase.Principal, vendorID uuid.UUID, patch entity.VendorPatch) (*usecase.VendorOutput, error) {
	if err := authorizeSelf(principal, entity.AccountTypeVendor, vendorID); err != nil {
		srv.log(ctx).Warn("Cross-account vendor update rejected", slog.Any("principal", principal.AccountID), slog.Any("vendorID", vendorID))

		return nil, err
	}
	if patch.IsEmpty() {
		return nil, domainerrors.ErrEmptyUpdate
	}

	var vendor *entity.Vendor
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vendorRepo := repoFactory.NewVendorRepository()

		var err error
		vendor, err = vendorRepo.FindByID(ctx, vendorID)
		if err != nil {
			return notFoundOr(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound)
		}

		if emailChanged := vendor.Apply(patch, principal.AccountID); emailChanged {
			taken, err := vendorRepo.ExistsByEmail(ctx, vendor.Email, vendor.ID)
			if err != nil {
				return errors.Wrap(err, "failed to check email")
			}
			if conflict := uniquenessConflict(false, taken); conflict != nil {
				return conflict
			}
		}

		if err := vendorRepo.Update(ctx, vendor); err != nil {
			return errors.Wrap(err, "failed to update vendor")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute vendor update transaction")
	}

	services, err := srv.servicesOf(ctx, vendor)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Vendor updated", slog.Any("vendorID", vendor.ID))

	return &usecase.VendorOutput{Vendor: vendor, Services: services}, nil
}

// Delete removes the caller's own vendor record. Tokens and service links
// cascade in the store.
func (srv *vendorService) Delete(ctx context.Context, principal usecase.Principal, vendorID uuid.UUID) error {
	if err := authorizeSelf(principal, entity.AccountTypeVendor, vendorID); err != nil {
		srv.log(ctx).Warn("Cross-account vendor delete rejected", slog.Any("principal", principal.AccountID), slog.Any("vendorID", vendorID))

		return err
	}

	var vendor *entity.Vendor
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vendorRepo := repoFactory.NewVendorRepository()

		var err error
		vendor, err = vendorRepo.FindByID(ctx, vendorID)
		if err != nil {
			return notFoundOr(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound)
		}

		return notFoundOr(vendorRepo.Delete(ctx, vendorID), repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute vendor delete transaction")
	}

	srv.log(ctx).Info("Vendor deleted", slog.Any("vendorID", vendorID))
	srv.events.publish(ctx, service.EventAccountDeleted, vendor)

	return nil
}

func (srv *vendorService) servicesOf(ctx context.Context, vendor *entity.Vendor) ([]*entity.Service, error) {
	if len(vendor.ServiceIDs) == 0 {
		return []*entity.Service{}, nil
	}

	services, err := srv.serviceRepo.FindByIDs(ctx, vendor.ServiceIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vendor services")
	}

	return orderServices(services, vendor.ServiceIDs), nil
}

// orderServices returns the services in ids order, skipping unknown ids.
func orderServices(services []*entity.Service, ids []uuid.UUID) []*entity.Service {
	byID := make(map[uuid.UUID]*entity.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	ordered := make([]*entity.Service, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			ordered = append(ordered, s)
		}
	}

	return ordered
}
