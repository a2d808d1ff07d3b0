package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/macroprep/backend/internal/models"
	"github.com/macroprep/backend/internal/types"
)

// sessionTTL is how long a minted session token stays valid.
const sessionTTL = 30 * 24 * time.Hour

// VerifyResult is the outcome of an OTP check. Token is empty unless the
// provider approved the code.
type VerifyResult struct {
	Token    string
	UserID   string
	Username string
	Status   string
}

// IdentityService issues and verifies one-time passcodes through the SMS
// provider and mints session tokens backed by the user registry.
type IdentityService struct {
	verifier  Verifier
	store     UserStore
	jwtSecret string
	logger    *zap.Logger
}

// NewIdentityService wires the verifier and registry together.
func NewIdentityService(verifier Verifier, store UserStore, jwtSecret string, logger *zap.Logger) *IdentityService {
	return &IdentityService{
		verifier:  verifier,
		store:     store,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// SendOTP dispatches a verification code to the phone number and returns
// the provider's status. No local state is created; the provider owns
// pending-code state.
func (s *IdentityService) SendOTP(ctx context.Context, phone string) (string, error) {
	status, err := s.verifier.SendCode(ctx, phone)
	if err != nil {
		s.logger.Error("failed to dispatch OTP", zap.Error(err))
		return "", err
	}
	return status, nil
}

// VerifyOTP checks the code with the provider. On approval it creates or
// updates the registry record and mints a session token; on any other
// provider status it returns ErrNotApproved with the status attached to the
// result.
func (s *IdentityService) VerifyOTP(ctx context.Context, phone, code, username string) (*VerifyResult, error) {
	status, err := s.verifier.CheckCode(ctx, phone, code)
	if err != nil {
		s.logger.Error("OTP check failed", zap.Error(err))
		return nil, err
	}
	if status != "approved" {
		return &VerifyResult{Status: status}, ErrNotApproved
	}

	user, err := s.store.Get(phone)
	switch {
	case errors.Is(err, ErrUserNotFound):
		user = &models.User{
			Phone:     phone,
			Username:  username,
			CreatedAt: time.Now().UTC(),
		}
		if user.Username == "" {
			user.Username = defaultUsername(phone)
		}
		if err := s.store.Upsert(user); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if username != "" && username != user.Username {
			user.Username = username
			if err := s.store.Upsert(user); err != nil {
				return nil, err
			}
		}
	}

	token, err := s.mintToken(phone, user.Username)
	if err != nil {
		return nil, err
	}

	return &VerifyResult{
		Token:    token,
		UserID:   phone,
		Username: user.Username,
		Status:   status,
	}, nil
}

// UpdateUsername renames an existing user and mints a fresh token carrying
// the new name. Unknown phone numbers are ErrUserNotFound; no record is
// created.
func (s *IdentityService) UpdateUsername(_ context.Context, phone, username string) (string, error) {
	user, err := s.store.Get(phone)
	if err != nil {
		return "", err
	}

	user.Username = username
	if err := s.store.Upsert(user); err != nil {
		return "", err
	}

	return s.mintToken(phone, username)
}

// ValidateToken parses a session token and returns its claims.
func (s *IdentityService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, _ := claims["user_id"].(string)
	phone, _ := claims["phone"].(string)
	username, _ := claims["username"].(string)
	if userID == "" {
		return nil, errors.New("invalid token claims")
	}

	return &types.TokenClaims{
		UserID:   userID,
		Phone:    phone,
		Username: username,
	}, nil
}

func (s *IdentityService) mintToken(phone, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  phone,
		"phone":    phone,
		"username": username,
		"exp":      time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// defaultUsername derives the registration default from the last four
// digits of the phone number.
func defaultUsername(phone string) string {
	suffix := phone
	if len(phone) > 4 {
		suffix = phone[len(phone)-4:]
	}
	return "User_" + suffix
}
