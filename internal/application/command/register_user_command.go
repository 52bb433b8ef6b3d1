package command

import (
	"auth-service/internal/application/common"
)

type RegisterUserCommand struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type RegisterUserCommandResult struct {
	Result *common.UserResult
}
