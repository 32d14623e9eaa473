package service

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/unistack-app/unistack/config"
	"github.com/unistack-app/unistack/internal/apperr"
	"github.com/unistack-app/unistack/internal/auth"
	"github.com/unistack-app/unistack/internal/dto"
	"github.com/unistack-app/unistack/internal/model"
	"github.com/unistack-app/unistack/internal/repository"
	"gorm.io/gorm"
)

const minPasswordLength = 8

type AuthService interface {
	Register(email, password string) (*dto.AuthResponse, error)
	Login(email, password string) (*dto.AuthResponse, error)
}

type authService struct {
	users repository.UserRepository
	cfg   *config.Config
}

func NewAuthService(users repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{users: users, cfg: cfg}
}

func (s *authService) Register(email, password string) (*dto.AuthResponse, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperr.New(apperr.Validation, "Invalid email format")
	}
	domain := s.cfg.Forum.EmailDomain
	if !strings.HasSuffix(strings.ToLower(email), "@"+domain) {
		return nil, apperr.New(apperr.Validation, fmt.Sprintf("Only @%s email addresses are allowed", domain))
	}
	if len(password) < minPasswordLength {
		return nil, apperr.New(apperr.Validation, fmt.Sprintf("Password must be at least %d characters long", minPasswordLength))
	}

	if _, err := s.users.FindByEmail(email); err == nil {
		return nil, apperr.New(apperr.Conflict, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.Internal, "Error registering user", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password")
		return nil, apperr.Wrap(apperr.Internal, "Error registering user", err)
	}

	user := model.User{Email: email, Password: hash}
	if err := s.users.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.New(apperr.Conflict, "Email already registered")
		}
		log.Error().Err(err).Str("email", email).Msg("Failed to create user")
		return nil, apperr.Wrap(apperr.Internal, "Error registering user", err)
	}

	return s.authResponse(&user)
}

func (s *authService) Login(email, password string) (*dto.AuthResponse, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperr.New(apperr.Validation, "Invalid email format")
	}

	user, err := s.users.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "User not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperr.New(apperr.Unauthenticated, "Invalid password")
	}

	return s.authResponse(user)
}

func (s *authService) authResponse(user *model.User) (*dto.AuthResponse, error) {
	resp := dto.AuthResponse{User: dto.UserResponse{ID: user.ID, Email: user.Email}}

	// Token issuance is additive: clients may keep sending userId in
	// payloads, but a bearer token always wins over it.
	if s.cfg.Auth.JWTSecret != "" {
		token, err := auth.GenerateToken(user.ID, []byte(s.cfg.Auth.JWTSecret), s.cfg.Auth.TokenTTL)
		if err != nil {
			log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to sign token")
			return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
		}
		resp.Token = token
	}
	return &resp, nil
}
