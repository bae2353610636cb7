package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vendorhub/config"
	"vendorhub/internal/domain/entity"
	"vendorhub/internal/domain/service"
	"vendorhub/internal/infra/auth"
	"vendorhub/internal/infra/metrics"
	mockSvc "vendorhub/internal/mocks/service"
	"vendorhub/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct-horse-9"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access: "test-access-secret",
			Token:  "test-token-secret",
		},
		Auth: config.AuthConfig{
			BcryptCost:         4,
			AccessTokenTTL:     15 * time.Minute,
			RefreshTokenTTL:    7 * 24 * time.Hour,
			ResetTokenTTL:      time.Hour,
			OTPTTL:             10 * time.Minute,
			BusinessDetailsTTL: 24 * time.Hour,
			OTPDigits:          6,
		},
		App: config.AppConfig{PublicURL: "https://api.example.test/"},
	}
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// testEnv wires every usecase to real crypto and an in-memory store.
type testEnv struct {
	cfg       *config.Config
	store     *memStore
	txManager *fakeTxManager
	clock     *fakeClock
	hasher    service.PasswordHasher
	digester  service.SecretDigester
	metrics   *metrics.Metrics
	mailer    *mockSvc.MockMailer
	publisher *mockSvc.MockEventPublisher

	tokens   *tokenIssuer
	sessions *sessionIssuer
	auth     usecase.AuthUsecase
	users    usecase.UserUsecase
	vendors  usecase.VendorUsecase
	catalog  usecase.CatalogUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := newTestConfig()
	logger := newDiscardLogger()
	store := newMemStore()
	txManager := &fakeTxManager{store: store}
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}

	hasher := auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
	digester, err := auth.NewHMACDigester(cfg)
	require.NoError(t, err)
	jwtService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	m := metrics.New(nil)
	mailer := mockSvc.NewMockMailer(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	tokens := NewTokenIssuer(TokenIssuerParams{
		Digester: digester,
		Recorder: m,
		Config:   cfg,
		Logger:   logger,
	}).(*tokenIssuer)
	tokens.now = clock.Now

	sessions := NewSessionIssuer(SessionIssuerParams{
		TxManager:    txManager,
		TokenService: jwtService,
		TokenIssuer:  tokens,
		Logger:       logger,
	}).(*sessionIssuer)
	sessions.now = clock.Now

	repos := memFactory{store: store}

	authUsecase := NewAuthService(AuthServiceParams{
		TxManager:      txManager,
		Hasher:         hasher,
		SessionIssuer:  sessions,
		TokenIssuer:    tokens,
		EventPublisher: publisher,
		Recorder:       m,
		Logger:         logger,
	})

	users := NewUserService(UserServiceParams{
		TxManager:      txManager,
		UserRepo:       repos.NewUserRepository(),
		Hasher:         hasher,
		TokenIssuer:    tokens,
		Mailer:         mailer,
		EventPublisher: publisher,
		Recorder:       m,
		Config:         cfg,
		Logger:         logger,
	})

	vendors := NewVendorService(VendorServiceParams{
		TxManager:      txManager,
		VendorRepo:     repos.NewVendorRepository(),
		ServiceRepo:    repos.NewServiceRepository(),
		Hasher:         hasher,
		TokenIssuer:    tokens,
		Auth:           authUsecase,
		Mailer:         mailer,
		EventPublisher: publisher,
		Recorder:       m,
		Logger:         logger,
	})

	return &testEnv{
		cfg:       cfg,
		store:     store,
		txManager: txManager,
		clock:     clock,
		hasher:    hasher,
		digester:  digester,
		metrics:   m,
		mailer:    mailer,
		publisher: publisher,
		tokens:    tokens,
		sessions:  sessions,
		auth:      authUsecase,
		users:     users,
		vendors:   vendors,
		catalog:   NewCatalogService(repos.NewServiceRepository(), logger),
	}
}

// allowEvents accepts any published event without asserting on it.
func (e *testEnv) allowEvents() {
	e.publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (e *testEnv) seedService(t *testing.T, name string) *entity.Service {
	t.Helper()

	s := &entity.Service{Name: name, Price: "10.00"}
	require.NoError(t, memFactory{store: e.store}.NewServiceRepository().Create(context.Background(), s))

	return s
}

func (e *testEnv) registerUser(t *testing.T, username, email string) *entity.User {
	t.Helper()

	user, err := e.users.Register(context.Background(), &usecase.RegisterUserInput{
		Username: username,
		Email:    email,
		Password: testPassword,
	})
	require.NoError(t, err)

	return user
}

func (e *testEnv) registerVendor(t *testing.T, email string) *usecase.RegisterVendorOutput {
	t.Helper()

	out, err := e.vendors.Register(context.Background(), &usecase.RegisterVendorInput{
		FirstName:   "Asha",
		LastName:    "Rao",
		Email:       email,
		PhoneNumber: "9876543210",
		Password:    testPassword,
	})
	require.NoError(t, err)

	return out
}

// loginUser opens a user session with the test password.
func (e *testEnv) loginUser(t *testing.T, email string) *usecase.Session {
	t.Helper()

	out, err := e.auth.Login(context.Background(), &usecase.LoginInput{
		AccountType: entity.AccountTypeUser,
		Email:       email,
		Password:    testPassword,
	})
	require.NoError(t, err)

	return out.Session
}
