package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "novablog/internal/delivery/context"
	"novablog/internal/domain/entity"
	domainerrors "novablog/internal/domain/errors"
	"novablog/internal/domain/repository"
	"novablog/internal/domain/service"
	"novablog/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail case-normalizes the account identifier. The store only ever
// sees lowercased, trimmed emails.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp validates and registers a new account.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) error {
	if input == nil {
		return errMissingBody
	}

	input.Email = normalizeEmail(input.Email)

	if err := validateInput(input); err != nil {
		srv.log(ctx).Warn("Sign-up validation failed", slog.String("email", input.Email))

		return err
	}

	srv.log(ctx).Info("Starting sign-up", slog.String("email", input.Email))

	// Early duplicate check for a friendly error. The unique index on the
	// email field remains the source of truth for concurrent sign-ups.
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return domainerrors.ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check for existing account")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign-up", slog.Any("error", err))

		return errors.Wrap(err, "failed to hash password during sign-up")
	}

	newUser := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashed,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			// Lost the sign-up race; same outcome as the early check.
			return domainerrors.ErrEmailTaken
		}

		return errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Debug("Sign-up completed", slog.Any("userID", newUser.ID))

	return nil
}

// SignIn verifies credentials and issues a session token. An unknown email
// and a wrong password return the identical error value so callers cannot
// enumerate accounts.
func (srv *userService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	if input == nil {
		return nil, errMissingBody
	}

	input.Email = normalizeEmail(input.Email)

	if err := validateInput(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Starting sign-in", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Sign-in failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load account for sign-in")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Sign-in completed", slog.Any("userID", user.ID))

	return &usecase.SignInOutput{
		Token: token,
		User:  publicUser(user),
	}, nil
}

// Profile returns the public projection of the given account.
func (srv *userService) Profile(ctx context.Context, userID uuid.UUID) (*usecase.PublicUser, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load account profile")
	}

	return publicUser(user), nil
}

func publicUser(user *entity.User) *usecase.PublicUser {
	return &usecase.PublicUser{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}
