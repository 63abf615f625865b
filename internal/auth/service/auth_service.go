package service

import (
	"context"
	"errors"

	authdomain "github.com/m-orlov/taskboard/internal/auth/domain"
	authrepo "github.com/m-orlov/taskboard/internal/auth/repository"
	"github.com/m-orlov/taskboard/internal/common/clock"
	commoncrypto "github.com/m-orlov/taskboard/internal/common/crypto"
	commonerrors "github.com/m-orlov/taskboard/internal/common/errors"
	"github.com/m-orlov/taskboard/internal/common/logger"
)

// AuthService covers the whole account lifecycle of this system: a username
// goes from unregistered to registered, and login re-checks the password on
// every call. No session or token artifact is ever issued.
type AuthService struct {
	repo        authrepo.Repository
	hasher      commoncrypto.PasswordHasher
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
	log         *logger.Logger
}

type AuthServiceDeps struct {
	Repo        authrepo.Repository
	Hasher      commoncrypto.PasswordHasher
	IDGenerator commoncrypto.IDGenerator
	Clock       clock.Clock
	Log         *logger.Logger
}

func NewAuthService(deps AuthServiceDeps) *AuthService {
	c := deps.Clock
	if c == nil {
		c = clock.NewRealClock()
	}
	return &AuthService{
		repo:        deps.Repo,
		hasher:      deps.Hasher,
		idGenerator: deps.IDGenerator,
		clock:       c,
		log:         deps.Log,
	}
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "register_attempt",
	}).Info("register attempt")

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_hash_failed",
		}).Errorf("register failed: password hash error: %v", err)
		return commonerrors.ErrInternalError.WithCause(err)
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_id_generation_failed",
		}).Errorf("register failed: id generation error: %v", err)
		return commonerrors.ErrInternalError.WithCause(err)
	}

	user := authdomain.User{
		ID:           authdomain.ID(id),
		Username:     input.Username,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, authrepo.ErrUsernameAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "register_username_exists",
			}).Warn("register failed: already exists")
			incrementRegisterConflicts()
			return ErrUsernameTaken
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_create_failed",
		}).Errorf("register failed: %v", err)
		return commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": user.Username,
		"user_id":  string(user.ID),
		"action":   "register_success",
	}).Info("register success")

	incrementUsersRegistered()
	return nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) error {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "login_attempt",
	}).Info("login attempt")

	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, authrepo.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "login_user_not_found",
			}).Warn("login failed: not found")
			incrementLoginsFailed()
			return ErrInvalidCredentials
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_fetch_failed",
		}).Errorf("login failed: %v", err)
		return commonerrors.ErrDatabaseError.WithCause(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_invalid_password",
		}).Warn("login failed: invalid password")
		incrementLoginsFailed()
		return ErrInvalidCredentials
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": user.Username,
		"user_id":  string(user.ID),
		"action":   "login_success",
	}).Info("login success")

	incrementLoginsSucceeded()
	return nil
}
