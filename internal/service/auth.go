package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/freshmart/grocery-api/internal/dto"
	"github.com/freshmart/grocery-api/internal/model"
	"github.com/freshmart/grocery-api/internal/notify"
	"github.com/freshmart/grocery-api/internal/repository"
)

var (
	ErrInvalidOTP   = errors.New("invalid or expired OTP")
	ErrUserNotFound = errors.New("user not found")
)

const otpSubject = "Grocery Shop - Login OTP"

type AuthService struct {
	userRepo repository.UserRepository
	otpRepo  repository.OTPRepository
	notifier notify.Notifier
	otpTTL   time.Duration
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, otpRepo repository.OTPRepository, notifier notify.Notifier, otpTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		notifier: notifier,
		otpTTL:   otpTTL,
		now:      time.Now,
	}
}

// RegisterAdmin creates the single administrator account. At most one
// admin may exist; a second registration fails regardless of email.
func (s *AuthService) RegisterAdmin(ctx context.Context, req dto.RegisterAdminRequest) (*dto.AuthResponse, error) {
	user := &model.User{
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     model.RoleAdmin,
		Verified: true,
	}
	if err := s.userRepo.CreateAdmin(ctx, user); err != nil {
		return nil, err
	}
	resp := toAuthResponse(user)
	return &resp, nil
}

// SendOTP issues a fresh passcode for the email, replacing any pending
// one, and hands it to the notifier. The code is also returned so the
// handler can echo it in demo mode.
func (s *AuthService) SendOTP(ctx context.Context, email string) (string, error) {
	code, err := generateOTP()
	if err != nil {
		return "", fmt.Errorf("generate OTP: %w", err)
	}

	otp := model.PendingOTP{
		Email:     email,
		Code:      code,
		ExpiresAt: s.now().Add(s.otpTTL),
	}
	if err := s.otpRepo.Put(ctx, otp); err != nil {
		return "", fmt.Errorf("store OTP: %w", err)
	}

	s.notifier.Notify(ctx, email, otpSubject, "Your OTP is: "+code)
	return code, nil
}

// Register verifies the passcode and creates a customer account. The
// pending code is consumed only on the fully successful path.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := s.verifyOTP(ctx, req.Email, req.OTP); err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     model.RoleCustomer,
		Verified: true,
	}
	if err := s.userRepo.CreateCustomer(ctx, user); err != nil {
		return nil, err
	}

	_ = s.otpRepo.Delete(ctx, req.Email)
	resp := toAuthResponse(user)
	return &resp, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := s.verifyOTP(ctx, req.Email, req.OTP); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	_ = s.otpRepo.Delete(ctx, req.Email)
	resp := toAuthResponse(user)
	return &resp, nil
}

func (s *AuthService) verifyOTP(ctx context.Context, email, code string) error {
	otp, err := s.otpRepo.Get(ctx, email)
	if err != nil {
		return fmt.Errorf("get OTP: %w", err)
	}
	if otp == nil || otp.Code != code || otp.Expired(s.now()) {
		return ErrInvalidOTP
	}
	return nil
}

// generateOTP returns a uniform random 6-digit code, 100000-999999.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

func toAuthResponse(user *model.User) dto.AuthResponse {
	return dto.AuthResponse{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}
}
