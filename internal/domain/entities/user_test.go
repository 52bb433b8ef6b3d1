package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_DerivesFullName(t *testing.T) {
	user := NewUser("Ada", "Lovelace", "ada@example.com", "credential")

	assert.Equal(t, "Ada Lovelace", user.FullName)
	assert.Nil(t, user.ProfileImageURL)
	assert.Zero(t, user.ID)
}

func TestNewValidatedUser(t *testing.T) {
	tests := []struct {
		name    string
		user    *User
		wantErr bool
	}{
		{"valid", NewUser("Ada", "Lovelace", "ada@example.com", "credential"), false},
		{"missing email", NewUser("Ada", "Lovelace", "", "credential"), true},
		{"missing credential", NewUser("Ada", "Lovelace", "ada@example.com", ""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validated, err := NewValidatedUser(tt.user)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.user, validated.GetUser())
		})
	}
}
