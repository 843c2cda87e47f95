package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/agunich/AutoHub/internal/auth/domain"
	"github.com/agunich/AutoHub/internal/auth/dto"
	"github.com/agunich/AutoHub/internal/auth/password"
	apperrors "github.com/agunich/AutoHub/internal/errors"
	"github.com/agunich/AutoHub/internal/notification"
)

// UserService verifies credentials, issues identity tokens and manages user
// records. Authenticate and Register block on the store and on hashing; they
// are safe to call concurrently across requests.
type UserService struct {
	repo     domain.UserRepository
	tokens   TokenCodec
	hasher   password.Hasher
	notifier notification.Publisher
	log      zerolog.Logger
}

func NewUserService(repo domain.UserRepository, tokens TokenCodec, hasher password.Hasher,
	notifier notification.Publisher, log zerolog.Logger) *UserService {
	return &UserService{
		repo:     repo,
		tokens:   tokens,
		hasher:   hasher,
		notifier: notifier,
		log:      log.With().Str("component", "user_service").Logger(),
	}
}

// Register creates a new user with a hashed password and the default USER
// role. The email must not already be in use; the store's unique index is the
// source of truth, the lookup here just gives a friendlier fast path.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		s.log.Warn().Str("email", input.Email).Msg("attempted registration with existing email")
		return nil, apperrors.ErrEmailAlreadyInUse
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("email", user.Email).Msg("user registered")

	if s.notifier != nil {
		if err := s.notifier.Publish(ctx, fmt.Sprintf("user registered: %s", user.Email)); err != nil {
			s.log.Warn().Err(err).Msg("registration notification not delivered")
		}
	}

	return user, nil
}

// Authenticate verifies the credentials and issues a bearer token for the
// email. An unknown email and a wrong password both fail with
// ErrInvalidCredentials so the response does not reveal which one happened.
func (s *UserService) Authenticate(ctx context.Context, input dto.LoginInput) (string, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return "", err
	}

	if user == nil || !s.hasher.Verify(input.Password, user.PasswordHash) {
		s.log.Warn().Str("email", input.Email).Msg("failed login attempt")
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.Info().Str("email", user.Email).Msg("user logged in")

	return token, nil
}

// LoadPrincipal resolves the identity view for a subject. The request filter
// calls this on every authenticated request, so a deleted account stops
// passing authentication even while its token is still within TTL.
func (s *UserService) LoadPrincipal(ctx context.Context, email string) (*domain.PrincipalView, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	return user.Principal(), nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]dto.UserOutput, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserOutput, 0, len(users))
	for i := range users {
		out = append(out, toUserOutput(&users[i]))
	}

	return out, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	out := toUserOutput(user)

	return &out, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func toUserOutput(user *domain.User) dto.UserOutput {
	return dto.UserOutput{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	}
}
