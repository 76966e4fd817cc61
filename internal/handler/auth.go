package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshmart/grocery-api/internal/dto"
	"github.com/freshmart/grocery-api/internal/repository"
	"github.com/freshmart/grocery-api/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	// otpEcho exposes the issued passcode in the send-otp response.
	// Demo behavior only.
	otpEcho bool
}

func NewAuthHandler(authService *service.AuthService, otpEcho bool) *AuthHandler {
	return &AuthHandler{authService: authService, otpEcho: otpEcho}
}

func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req dto.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Registration failed: "+err.Error())
		return
	}

	resp, err := h.authService.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrAdminExists) {
			respondErr(c, http.StatusBadRequest, "Admin already exists")
			return
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			respondErr(c, http.StatusBadRequest, "User already exists")
			return
		}
		respondErr(c, http.StatusInternalServerError, "Registration failed: "+err.Error())
		return
	}

	respondOK(c, "Admin registered successfully", resp)
}

func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Failed to send OTP: "+err.Error())
		return
	}

	code, err := h.authService.SendOTP(c.Request.Context(), req.Email)
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "Failed to send OTP: "+err.Error())
		return
	}

	if h.otpEcho {
		respondOK(c, "OTP sent successfully", code)
		return
	}
	respondOK(c, "OTP sent successfully", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Registration failed: "+err.Error())
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOTP):
			respondErr(c, http.StatusBadRequest, "Invalid or expired OTP")
		case errors.Is(err, repository.ErrDuplicateEmail):
			respondErr(c, http.StatusBadRequest, "User already exists")
		default:
			respondErr(c, http.StatusInternalServerError, "Registration failed: "+err.Error())
		}
		return
	}

	respondOK(c, "Registration successful", resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Login failed: "+err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOTP):
			respondErr(c, http.StatusBadRequest, "Invalid or expired OTP")
		case errors.Is(err, service.ErrUserNotFound):
			respondErr(c, http.StatusBadRequest, "User not found")
		default:
			respondErr(c, http.StatusInternalServerError, "Login failed: "+err.Error())
		}
		return
	}

	respondOK(c, "Login successful", resp)
}
