package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"time"

	"github.com/acmehq/invoicedesk/internal/auth/domain"
	"github.com/acmehq/invoicedesk/internal/auth/password"
	"github.com/acmehq/invoicedesk/internal/clock"
	"github.com/acmehq/invoicedesk/internal/validation"
	"github.com/acmehq/invoicedesk/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sessionTTL = 7 * 24 * time.Hour

var registrationValidators = []validation.FieldValidator{
	{Field: "username", Check: validation.MinLength(3, "Username must contain at least 3 characters.")},
	{Field: "email", Check: validation.Email("Invalid email address.")},
	{Field: "password", Check: validation.MinLength(6, "Password must contain at least 6 characters.")},
}

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("auth.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Register(ctx context.Context, input domain.RegisterInput) (*domain.LoginResult, error) {
	raw := map[string]string{
		"username": input.Username,
		"email":    input.Email,
		"password": input.Password,
	}
	if errs := validation.Validate(raw, registrationValidators, domain.MsgRegistrationInvalid); errs != nil {
		return nil, errs
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		s.log.Error("hash password failed", zap.Error(err))
		return nil, domain.ErrRegistrationFailed
	}

	user := domain.User{
		ID:        s.genID.Generate(),
		Name:      strings.TrimSpace(input.Username),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Password:  hashed,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.CreateUser(ctx, s.db, &user); err != nil {
		if db.IsDuplicateKeyErr(err) {
			s.log.Warn("registration for existing email", zap.String("email", user.Email))
		} else {
			s.log.Error("insert user failed", zap.Error(err))
		}
		return nil, domain.ErrRegistrationFailed
	}

	// The new account is logged in right away; failing to establish the
	// session must not leave a half-registered state visible to the caller.
	result, err := s.issueSession(ctx, user)
	if err != nil {
		s.log.Error("session after registration failed", zap.Error(err))
		return nil, domain.ErrRegistrationFailed
	}
	return result, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindUserByEmail(ctx, s.db, email)
	if err != nil {
		s.log.Error("find user failed", zap.Error(err))
		return nil, err
	}
	if user == nil || !password.Verify(req.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueSession(ctx, *user)
}

func (s *Service) Logout(ctx context.Context, rawToken string) error {
	if strings.TrimSpace(rawToken) == "" {
		return domain.ErrInvalidSession
	}
	return s.repo.DeleteSession(ctx, s.db, hashToken(rawToken))
}

func (s *Service) Authenticate(ctx context.Context, rawToken string) (*domain.User, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, domain.ErrInvalidSession
	}

	session, err := s.repo.FindSessionByTokenHash(ctx, s.db, hashToken(rawToken))
	if err != nil {
		s.log.Error("find session failed", zap.Error(err))
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrInvalidSession
	}
	if s.clock.Now().After(session.ExpiresAt) {
		// Expired rows are revoked on sight so the sessions table does not
		// accumulate them.
		if err := s.repo.DeleteSession(ctx, s.db, hashToken(rawToken)); err != nil {
			s.log.Error("delete expired session failed", zap.Error(err))
		}
		return nil, domain.ErrInvalidSession
	}

	user, err := s.repo.FindUserByID(ctx, s.db, session.UserID)
	if err != nil {
		s.log.Error("find session user failed", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidSession
	}
	return user, nil
}

func (s *Service) issueSession(ctx context.Context, user domain.User) (*domain.LoginResult, error) {
	rawToken, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	session := domain.Session{
		ID:        s.genID.Generate(),
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: now.Add(sessionTTL),
		CreatedAt: now,
	}
	if err := s.repo.CreateSession(ctx, s.db, &session); err != nil {
		return nil, err
	}

	user.Password = ""
	return &domain.LoginResult{
		User:      user,
		RawToken:  rawToken,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func hashToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}
