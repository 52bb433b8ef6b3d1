package interfaces

import (
	"context"

	"auth-service/internal/application/command"
)

type AuthService interface {
	RegisterUser(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
}
