// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"authsvc/config"
	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"
	"authsvc/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	requireName  bool
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		requireName:  params.Config.API.PaymentsEnabled(),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The store's unique email index decides
// duplicates; the lookup beforehand only avoids hashing for a taken email.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input.Email == "" || input.Password == "" || (srv.requireName && input.Name == "") {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing registration field")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Email already registered", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, srv.registrationFailed(ctx, input.Email, errors.Wrap(err, "failed to look up email"))
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, srv.registrationFailed(ctx, input.Email, errors.Wrap(err, "failed to hash password"))
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyExists) {
			srv.log(ctx).Warn("Email registered concurrently", slog.String("email", input.Email))

			return nil, errors.Wrap(err, "failed to create user")
		}

		return nil, srv.registrationFailed(ctx, input.Email, errors.Wrap(err, "failed to create user"))
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

func (srv *userService) registrationFailed(ctx context.Context, email string, err error) error {
	srv.log(ctx).Error("Registration failed", slog.String("email", email), slog.Any("error", err))

	return domainerrors.NewTransportError(err, domainerrors.ErrRegistrationFailed)
}

// Login verifies the credentials and issues a session token for the user.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing login field")
	}

	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

			return nil, domainerrors.ErrUserNotFound.WrapMessage("login failed")
		}

		return nil, srv.loginFailed(ctx, input.Email, errors.Wrap(err, "failed to find user"))
	}

	// bcrypt is CPU-bound; nothing else is held while it runs.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.IssueToken(user.ID)
	if err != nil {
		return nil, srv.loginFailed(ctx, input.Email, errors.Wrap(err, "failed to issue token"))
	}

	srv.log(ctx).Debug("User logged in successfully", slog.String("userID", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  user,
	}, nil
}

func (srv *userService) loginFailed(ctx context.Context, email string, err error) error {
	srv.log(ctx).Error("Login failed", slog.String("email", email), slog.Any("error", err))

	return domainerrors.NewTransportError(err, domainerrors.ErrLoginFailed)
}
