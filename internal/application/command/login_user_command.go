package command

import (
	"auth-service/internal/application/common"
	"auth-service/internal/infrastructure"
)

type LoginUserCommand struct {
	Email    string
	Password string
}

type LoginUserCommandResult struct {
	Tokens *infrastructure.TokenPair
	User   *common.UserResult
}
