package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/freshmart/grocery-api/internal/model"
)

var (
	ErrAdminExists    = errors.New("admin already exists")
	ErrDuplicateEmail = errors.New("user already exists")
)

type UserRepository interface {
	CreateAdmin(ctx context.Context, user *model.User) error
	CreateCustomer(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Admin(ctx context.Context) (*model.User, error)
}

type memUserRepo struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*model.User
	byEmail map[string]uuid.UUID
	// adminID is the single-slot admin reference; uuid.Nil means no admin
	// has been registered yet.
	adminID uuid.UUID
}

func NewUserRepository() UserRepository {
	return &memUserRepo{
		byID:    make(map[uuid.UUID]*model.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *memUserRepo) CreateAdmin(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.adminID != uuid.Nil {
		return ErrAdminExists
	}
	if _, ok := r.byEmail[user.Email]; ok {
		return ErrDuplicateEmail
	}

	r.insert(user)
	r.adminID = user.ID
	return nil
}

func (r *memUserRepo) CreateCustomer(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return ErrDuplicateEmail
	}

	r.insert(user)
	return nil
}

// insert assigns identity and timestamps; caller holds the write lock.
func (r *memUserRepo) insert(user *model.User) {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	user := *stored
	return &user, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	user := *r.byID[id]
	return &user, nil
}

func (r *memUserRepo) Admin(_ context.Context) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.adminID == uuid.Nil {
		return nil, nil
	}
	user := *r.byID[r.adminID]
	return &user, nil
}
