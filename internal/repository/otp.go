package repository

import (
	"context"
	"sync"

	"github.com/freshmart/grocery-api/internal/model"
)

type OTPRepository interface {
	Put(ctx context.Context, otp model.PendingOTP) error
	Get(ctx context.Context, email string) (*model.PendingOTP, error)
	Delete(ctx context.Context, email string) error
}

// memOTPRepo keys pending passcodes by email; Put overwrites any prior
// entry so only one code is ever live per address. Expired entries stay
// until a later Put or Delete; expiry is checked at verification time.
type memOTPRepo struct {
	mu    sync.RWMutex
	codes map[string]model.PendingOTP
}

func NewOTPRepository() OTPRepository {
	return &memOTPRepo{codes: make(map[string]model.PendingOTP)}
}

func (r *memOTPRepo) Put(_ context.Context, otp model.PendingOTP) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[otp.Email] = otp
	return nil
}

func (r *memOTPRepo) Get(_ context.Context, email string) (*model.PendingOTP, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	otp, ok := r.codes[email]
	if !ok {
		return nil, nil
	}
	return &otp, nil
}

func (r *memOTPRepo) Delete(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.codes, email)
	return nil
}
