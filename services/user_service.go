package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"aqarpress/models"
	"aqarpress/repositories"
)

// ErrBadCredentials is returned on a failed login. It never says whether
// the email or the password was wrong.
var ErrBadCredentials = errors.New("invalid email or password")

type UserService struct {
	repo     repositories.UserRepository
	mailer   *Mailer
	secret   string
	validate *validator.Validate
	log      *zap.Logger
}

func NewUserService(repo repositories.UserRepository, mailer *Mailer, secret string, log *zap.Logger) *UserService {
	return &UserService{
		repo:     repo,
		mailer:   mailer,
		secret:   secret,
		validate: validator.New(),
		log:      log,
	}
}

// Register creates an account and sends the welcome mail asynchronously.
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error) {
	if err := s.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return nil, "", fmt.Errorf("%w: field %s failed %q validation", ErrInvalidRequest, first.Namespace(), first.Tag())
		}
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}
	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         models.RoleAuthor,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("registering user: %w", err)
	}

	token, err := GenerateToken(user.ID, user.Role, s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	if s.mailer != nil {
		s.mailer.SendAsync(user.Email, "Welcome to Aqarpress",
			fmt.Sprintf("Hi %s,\n\nyour author account is ready.", user.Name))
	}

	s.log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("email", user.Email))
	return user, token, nil
}

// Login verifies credentials and issues an access token.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrBadCredentials
		}
		return nil, "", err
	}
	if !CheckPassword(user.PasswordHash, req.Password) {
		return nil, "", ErrBadCredentials
	}

	token, err := GenerateToken(user.ID, user.Role, s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}
	return user, token, nil
}
