package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-agritrace/internal/model"
	"go-agritrace/internal/session"
)

func TestLogin_RequiresAllFields(t *testing.T) {
	svc := NewAuthService(session.NewState())

	cases := []struct {
		name     string
		identity string
		secret   string
		role     string
	}{
		{"empty identity", "", "pw", "farmer"},
		{"empty secret", "alice", "", "farmer"},
		{"empty role", "alice", "pw", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(tc.identity, tc.secret, tc.role)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestLogin_RejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(session.NewState())

	_, err := svc.Login("alice", "pw", "auditor")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestLogin_AnySecretAccepted(t *testing.T) {
	state := session.NewState()
	svc := NewAuthService(state)

	// Role selection, not authentication: the secret is never checked.
	resp, err := svc.Login("alice", "anything-at-all", "farmer")
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Identity)
	assert.Equal(t, model.RoleFarmer, resp.Role)
	assert.NotEmpty(t, resp.Token)

	current, ok := state.Current()
	require.True(t, ok)
	assert.Equal(t, "alice", current.Identity)
}

func TestValidateToken_ActiveSession(t *testing.T) {
	svc := NewAuthService(session.NewState())

	resp, err := svc.Login("bob", "pw", "distributor")
	require.NoError(t, err)

	validated, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "bob", validated.Identity)
	assert.Equal(t, model.RoleDistributor, validated.Role)
}

func TestValidateToken_RevokedByNewerLogin(t *testing.T) {
	svc := NewAuthService(session.NewState())

	first, err := svc.Login("alice", "pw", "farmer")
	require.NoError(t, err)

	_, err = svc.Login("bob", "pw", "retailer")
	require.NoError(t, err)

	_, err = svc.ValidateToken(first.Token)
	assert.ErrorIs(t, err, ErrSessionRevoked)
}

func TestValidateToken_RevokedByLogout(t *testing.T) {
	svc := NewAuthService(session.NewState())

	resp, err := svc.Login("alice", "pw", "consumer")
	require.NoError(t, err)

	svc.Logout()

	_, err = svc.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrSessionRevoked)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewAuthService(session.NewState())

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
