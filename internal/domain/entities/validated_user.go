package entities

// ValidatedUser wraps a User that has passed invariant checks. Repositories
// only accept this type, so an unvalidated user cannot be persisted.
type ValidatedUser struct {
	*User
}

func NewValidatedUser(user *User) (*ValidatedUser, error) {
	if err := user.validate(); err != nil {
		return nil, err
	}

	return &ValidatedUser{User: user}, nil
}

func (vu *ValidatedUser) GetUser() *User {
	return vu.User
}
