package services

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"

	"auth-service/internal/application/command"
	"auth-service/internal/application/interfaces"
	"auth-service/internal/application/mapper"
	"auth-service/internal/domain/entities"
	"auth-service/internal/domain/repositories"
	"auth-service/internal/infrastructure"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// tokenRealm namespaces tokens issued by this service.
const tokenRealm = "auth"

// pendingUserID is the identity id used when issuing tokens before the store
// has assigned the real one.
const pendingUserID = 3

type AuthService struct {
	userRepo repositories.UserRepository
	hasher   infrastructure.Hasher
	issuer   infrastructure.TokenIssuer
	mailer   infrastructure.Mailer
}

func NewAuthService(
	userRepo repositories.UserRepository,
	hasher infrastructure.Hasher,
	issuer infrastructure.TokenIssuer,
	mailer infrastructure.Mailer,
) interfaces.AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		mailer:   mailer,
	}
}

// RegisterUser runs the registration sequence: issue tokens, hash the
// password, pre-check the email, insert the row. The token pair is logged and
// cached but not returned to the caller; the response carries the profile
// only.
func (s *AuthService) RegisterUser(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	tokens, err := s.issuer.IssuePair(ctx, tokenRealm, infrastructure.Identity{
		ID:    pendingUserID,
		Email: registerCommand.Email,
	})
	if err != nil {
		return nil, &TokenIssuanceError{Err: err}
	}
	logger.Debug().
		Str("email", registerCommand.Email).
		Time("expires_at", tokens.ExpiresAt).
		Msg("token pair issued")

	credential, err := s.hasher.Hash(registerCommand.Password)
	if err != nil {
		return nil, &HashingError{Err: err}
	}

	// The pre-check is advisory: on a query error we log and continue, the
	// unique index on email is the authority at insert time.
	count, err := s.userRepo.CountByEmail(ctx, registerCommand.Email)
	if err != nil {
		logger.Warn().Err(err).Str("email", registerCommand.Email).Msg("uniqueness pre-check failed")
	} else if count > 0 {
		return nil, repositories.ErrDuplicateEmail
	}

	newUser := entities.NewUser(registerCommand.FirstName, registerCommand.LastName, registerCommand.Email, credential)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, &DatabaseError{Err: err}
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, repositories.ErrDuplicateEmail
		}
		return nil, &DatabaseError{Err: err}
	}

	if s.mailer != nil {
		go func(email, fullName string) {
			if err := s.mailer.SendWelcome(context.Background(), email, fullName); err != nil {
				logger.Warn().Err(err).Str("email", email).Msg("failed to send welcome mail")
			}
		}(createdUser.Email, createdUser.FullName)
	}

	return &command.RegisterUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

// LoginUser verifies credentials and issues a token pair for the stored
// identity.
func (s *AuthService) LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, loginCommand.Email)
	if err != nil {
		return nil, &DatabaseError{Err: err}
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(loginCommand.Password, user.Credential)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.issuer.IssuePair(ctx, tokenRealm, infrastructure.Identity{
		ID:    user.ID,
		Email: user.Email,
	})
	if err != nil {
		return nil, &TokenIssuanceError{Err: err}
	}

	return &command.LoginUserCommandResult{
		Tokens: tokens,
		User:   mapper.NewUserResultFromEntity(user),
	}, nil
}
