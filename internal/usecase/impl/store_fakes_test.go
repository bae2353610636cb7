package impl

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"vendorhub/internal/domain/entity"
	"vendorhub/internal/domain/repository"

	"github.com/google/uuid"
)

var errDuplicateDigest = errors.New("duplicate key value violates unique constraint \"tokens_kind_digest_key\"")

// memStore is an in-memory stand-in for the database. Entities are copied on
// every read and write so callers never alias stored rows.
type memStore struct {
	users    map[uuid.UUID]entity.User
	vendors  map[uuid.UUID]entity.Vendor
	services map[uuid.UUID]entity.Service
	tokens   map[uuid.UUID]entity.Token
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[uuid.UUID]entity.User{},
		vendors:  map[uuid.UUID]entity.Vendor{},
		services: map[uuid.UUID]entity.Service{},
		tokens:   map[uuid.UUID]entity.Token{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.vendors {
		v.ServiceIDs = slices.Clone(v.ServiceIDs)
		c.vendors[k] = v
	}
	for k, v := range s.services {
		c.services[k] = v
	}
	for k, v := range s.tokens {
		c.tokens[k] = v
	}

	return c
}

// tokensOf returns the stored tokens of owner and kind.
func (s *memStore) tokensOf(owner entity.AccountRef, kind entity.TokenKind) []entity.Token {
	var out []entity.Token
	for _, t := range s.tokens {
		if t.Owner == owner && t.Kind == kind {
			out = append(out, t)
		}
	}

	return out
}

// fakeTxManager serialises transactions and restores the snapshot taken at
// the start of a transaction whose function fails.
type fakeTxManager struct {
	mu    sync.Mutex
	store *memStore
}

func (m *fakeTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.store.clone()
	if err := fn(memFactory{store: m.store}); err != nil {
		*m.store = *snapshot

		return err
	}

	return nil
}

type memFactory struct {
	store *memStore
}

func (f memFactory) NewUserRepository() repository.UserRepository       { return &memUserRepo{store: f.store} }
func (f memFactory) NewVendorRepository() repository.VendorRepository   { return &memVendorRepo{store: f.store} }
func (f memFactory) NewServiceRepository() repository.ServiceRepository { return &memServiceRepo{store: f.store} }
func (f memFactory) NewTokenRepository() repository.TokenRepository     { return &memTokenRepo{store: f.store} }

// --- users ---

type memUserRepo struct {
	store *memStore
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &u, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.store.users {
		if u.Email == email {
			return &u, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string, exclude uuid.UUID) (bool, error) {
	for _, u := range r.store.users {
		if u.Email == email && u.ID != exclude {
			return true, nil
		}
	}

	return false, nil
}

func (r *memUserRepo) ExistsByUsername(_ context.Context, username string, exclude uuid.UUID) (bool, error) {
	for _, u := range r.store.users {
		if u.Username == username && u.ID != exclude {
			return true, nil
		}
	}

	return false, nil
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.store.users[user.ID] = *user

	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.store.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	r.store.users[user.ID] = *user

	return nil
}

func (r *memUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := r.store.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.HashedPassword = hash
	r.store.users[id] = u

	return nil
}

// --- vendors ---

type memVendorRepo struct {
	store *memStore
}

func (r *memVendorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Vendor, error) {
	v, ok := r.store.vendors[id]
	if !ok {
		return nil, repository.ErrVendorNotFound
	}
	v.ServiceIDs = slices.Clone(v.ServiceIDs)

	return &v, nil
}

func (r *memVendorRepo) FindByEmail(_ context.Context, email string) (*entity.Vendor, error) {
	for _, v := range r.store.vendors {
		if v.Email == email {
			v.ServiceIDs = slices.Clone(v.ServiceIDs)
			return &v, nil
		}
	}

	return nil, repository.ErrVendorNotFound
}

func (r *memVendorRepo) ExistsByEmail(_ context.Context, email string, exclude uuid.UUID) (bool, error) {
	for _, v := range r.store.vendors {
		if v.Email == email && v.ID != exclude {
			return true, nil
		}
	}

	return false, nil
}

func (r *memVendorRepo) Create(_ context.Context, vendor *entity.Vendor) error {
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	vendor.CreatedAt = time.Now()
	vendor.UpdatedAt = vendor.CreatedAt
	stored := *vendor
	stored.ServiceIDs = slices.Clone(vendor.ServiceIDs)
	r.store.vendors[vendor.ID] = stored

	return nil
}

func (r *memVendorRepo) Update(_ context.Context, vendor *entity.Vendor) error {
	current, ok := r.store.vendors[vendor.ID]
	if !ok {
		return repository.ErrVendorNotFound
	}
	vendor.UpdatedAt = time.Now()
	stored := *vendor
	stored.ServiceIDs = current.ServiceIDs
	r.store.vendors[vendor.ID] = stored

	return nil
}

func (r *memVendorRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	v, ok := r.store.vendors[id]
	if !ok {
		return repository.ErrVendorNotFound
	}
	v.HashedPassword = hash
	r.store.vendors[id] = v

	return nil
}

func (r *memVendorRepo) ReplaceServices(_ context.Context, vendorID uuid.UUID, serviceIDs []uuid.UUID) error {
	v, ok := r.store.vendors[vendorID]
	if !ok {
		return repository.ErrVendorNotFound
	}
	v.ServiceIDs = slices.Clone(serviceIDs)
	r.store.vendors[vendorID] = v

	return nil
}

func (r *memVendorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.vendors[id]; !ok {
		return repository.ErrVendorNotFound
	}
	delete(r.store.vendors, id)

	owner := entity.AccountRef{Type: entity.AccountTypeVendor, ID: id}
	for tid, t := range r.store.tokens {
		if t.Owner == owner {
			delete(r.store.tokens, tid)
		}
	}

	return nil
}

// --- services ---

type memServiceRepo struct {
	store *memStore
}

func (r *memServiceRepo) List(_ context.Context) ([]*entity.Service, error) {
	out := make([]*entity.Service, 0, len(r.store.services))
	for _, s := range r.store.services {
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *memServiceRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Service, error) {
	var out []*entity.Service
	seen := map[uuid.UUID]bool{}
	for _, id := range ids {
		if s, ok := r.store.services[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, &s)
		}
	}

	return out, nil
}

func (r *memServiceRepo) FindByName(_ context.Context, name string) (*entity.Service, error) {
	for _, s := range r.store.services {
		if s.Name == name {
			return &s, nil
		}
	}

	return nil, repository.ErrServiceNotFound
}

func (r *memServiceRepo) Create(_ context.Context, service *entity.Service) error {
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	service.CreatedAt = time.Now()
	service.UpdatedAt = service.CreatedAt
	r.store.services[service.ID] = *service

	return nil
}

// --- tokens ---

type memTokenRepo struct {
	store *memStore
}

func (r *memTokenRepo) Create(_ context.Context, token *entity.Token) error {
	for _, t := range r.store.tokens {
		if t.Kind == token.Kind && t.Digest == token.Digest {
			return errDuplicateDigest
		}
	}
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	r.store.tokens[token.ID] = *token

	return nil
}

func (r *memTokenRepo) find(lookup repository.TokenLookup) (entity.Token, bool) {
	for _, t := range r.store.tokens {
		if t.Kind != lookup.Kind || t.Digest != lookup.Digest {
			continue
		}
		if lookup.Owner != nil && t.Owner != *lookup.Owner {
			continue
		}
		if t.IsValid(lookup.Now) {
			return t, true
		}
	}

	return entity.Token{}, false
}

func (r *memTokenRepo) FindValidForUpdate(_ context.Context, lookup repository.TokenLookup) (*entity.Token, error) {
	t, ok := r.find(lookup)
	if !ok {
		return nil, repository.ErrTokenNotFound
	}

	return &t, nil
}

func (r *memTokenRepo) Consume(_ context.Context, lookup repository.TokenLookup) (*entity.Token, error) {
	t, ok := r.find(lookup)
	if !ok {
		return nil, repository.ErrTokenNotFound
	}
	delete(r.store.tokens, t.ID)

	return &t, nil
}

func (r *memTokenRepo) Redeem(_ context.Context, lookup repository.TokenLookup) (*entity.Token, error) {
	t, ok := r.find(lookup)
	if !ok {
		return nil, repository.ErrTokenNotFound
	}
	t.Revoked = true
	r.store.tokens[t.ID] = t

	return &t, nil
}

func (r *memTokenRepo) RevokeByDigest(_ context.Context, owner entity.AccountRef, kind entity.TokenKind, digest string) (int64, error) {
	var n int64
	for id, t := range r.store.tokens {
		if t.Owner == owner && t.Kind == kind && t.Digest == digest && !t.Revoked {
			t.Revoked = true
			r.store.tokens[id] = t
			n++
		}
	}

	return n, nil
}

func (r *memTokenRepo) RevokeByOwner(_ context.Context, owner entity.AccountRef, kinds ...entity.TokenKind) (int64, error) {
	var n int64
	for id, t := range r.store.tokens {
		if t.Owner == owner && slices.Contains(kinds, t.Kind) && !t.Revoked {
			t.Revoked = true
			r.store.tokens[id] = t
			n++
		}
	}

	return n, nil
}

func (r *memTokenRepo) DeleteByOwner(_ context.Context, owner entity.AccountRef, kinds ...entity.TokenKind) (int64, error) {
	var n int64
	for id, t := range r.store.tokens {
		if t.Owner == owner && slices.Contains(kinds, t.Kind) {
			delete(r.store.tokens, id)
			n++
		}
	}

	return n, nil
}

func (r *memTokenRepo) PurgeInvalid(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for id, t := range r.store.tokens {
		if t.Revoked || t.ExpiresAt.Before(cutoff) {
			delete(r.store.tokens, id)
			n++
		}
	}

	return n, nil
}
