package service

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmart/grocery-api/internal/dto"
	"github.com/freshmart/grocery-api/internal/model"
	"github.com/freshmart/grocery-api/internal/repository"
)

type note struct {
	to      string
	subject string
	body    string
}

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu    sync.Mutex
	notes []note
}

func (r *recordingNotifier) Notify(_ context.Context, to, subject, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, note{to: to, subject: subject, body: body})
}

func (r *recordingNotifier) sent() []note {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]note(nil), r.notes...)
}

func newAuthService(notifier *recordingNotifier) *AuthService {
	return NewAuthService(repository.NewUserRepository(), repository.NewOTPRepository(), notifier, 5*time.Minute)
}

func TestAuthService_RegisterAdmin(t *testing.T) {
	svc := newAuthService(&recordingNotifier{})

	resp, err := svc.RegisterAdmin(context.Background(), dto.RegisterAdminRequest{
		Email: "admin@shop.com", Name: "Admin", Phone: "999",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, resp.Role)
	assert.Equal(t, "admin@shop.com", resp.Email)
}

func TestAuthService_RegisterAdmin_SecondFails(t *testing.T) {
	svc := newAuthService(&recordingNotifier{})
	ctx := context.Background()

	_, err := svc.RegisterAdmin(ctx, dto.RegisterAdminRequest{Email: "admin@shop.com", Name: "Admin", Phone: "999"})
	require.NoError(t, err)

	_, err = svc.RegisterAdmin(ctx, dto.RegisterAdminRequest{Email: "admin2@shop.com", Name: "Other", Phone: "888"})
	assert.ErrorIs(t, err, repository.ErrAdminExists)
}

func TestAuthService_SendOTP(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newAuthService(notifier)

	code, err := svc.SendOTP(context.Background(), "a@x.com")
	require.NoError(t, err)

	n, err := strconv.Atoi(code)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 100000)
	assert.LessOrEqual(t, n, 999999)

	sent := notifier.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "a@x.com", sent[0].to)
	assert.Equal(t, "Grocery Shop - Login OTP", sent[0].subject)
	assert.Contains(t, sent[0].body, code)
}

func TestAuthService_Register(t *testing.T) {
	svc := newAuthService(&recordingNotifier{})
	ctx := context.Background()

	code, err := svc.SendOTP(ctx, "a@x.com")
	require.NoError(t, err)

	resp, err := svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Name: "Ann", Phone: "555", OTP: code})
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, resp.Role)
	assert.Equal(t, "Ann", resp.Name)

	// The passcode is single-use: registering a second account with it
	// fails on OTP verification, not on the duplicate check.
	_, err = svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Name: "Ann", Phone: "555", OTP: code})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestAuthService_Register_WrongCode(t *testing.T) {
	svc := newAuthService(&recordingNotifier{})
	ctx := context.Background()

	_, err := svc.SendOTP(ctx, "a@x.com")
	require.NoError(t, err)

	// Issued codes are always six digits starting 1-9, so this can
	// never collide.
	_, err = svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Name: "Ann", Phone: "555", OTP: "000000"})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestAuthService_Register_ExpiredCode(t *testing.T) {
	svc := newAuthService(&recordingNotifier{})
	ctx := context.Background()

	code, err := svc.SendOTP(ctx, "a@x.com")
	require.NoError(t, err)

	// Just past the 5-minute window.
	svc.now = func() time.Time { return time.Now().Add(5*time.Minute + time.Second) }
	_, err = svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Name: "Ann", Phone: "555", OTP: code})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestAuthService_Register_ReissueInvalidatesOldCode(t *testing.T) {
	svc := newAuthService(&recordingNotifier{})
	ctx := context.Background()

	old, err := svc.SendOTP(ctx, "a@x.com")
	require.NoError(t, err)
	fresh, err := svc.SendOTP(ctx, "a@x.com")
	require.NoError(t, err)

	if old != fresh {
		_, err = svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Name: "Ann", Phone: "555", OTP: old})
		assert.ErrorIs(t, err, ErrInvalidOTP)
	}

	_, err = svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Name: "Ann", Phone: "555", OTP: fresh})
	assert.NoError(t, err)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthService(&recordingNotifier{})
	ctx := context.Background()

	code, err := svc.SendOTP(ctx, "a@x.com")
	require.NoError(t, err)
	_, err = svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Name: "Ann", Phone: "555", OTP: code})
	require.NoError(t, err)

	code, err = svc.SendOTP(ctx, "a@x.com")
	require.NoError(t, err)
	_, err = svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Name: "Ann", Phone: "555", OTP: code})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestAuthService_Login(t *testing.T) {
	svc := newAuthService(&recordingNotifier{})
	ctx := context.Background()

	code, err := svc.SendOTP(ctx, "a@x.com")
	require.NoError(t, err)
	registered, err := svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Name: "Ann", Phone: "555", OTP: code})
	require.NoError(t, err)

	code, err = svc.SendOTP(ctx, "a@x.com")
	require.NoError(t, err)
	resp, err := svc.Login(ctx, dto.LoginRequest{Email: "a@x.com", OTP: code})
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, resp.UserID)
	assert.Equal(t, model.RoleCustomer, resp.Role)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newAuthService(&recordingNotifier{})
	ctx := context.Background()

	code, err := svc.SendOTP(ctx, "ghost@x.com")
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "ghost@x.com", OTP: code})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
