package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/articlegate/internal/common"
	"github.com/dmitrijs2005/articlegate/internal/server/auth"
	"github.com/dmitrijs2005/articlegate/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(m *fakeRepoManager, ttl time.Duration) *UserService {
	cfg := &config.Config{SecretKey: "test-secret", AccessTokenValidityDuration: ttl}
	return NewUserService(nil, m, cfg)
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	m := newFakeRepoManager()
	svc := newUserService(m, time.Minute)
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "a@x.com", "correct")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.True(t, u.Active)

	stored, err := m.users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "correct", stored.PasswordHash)
	assert.True(t, auth.VerifyPassword("correct", stored.PasswordHash))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	m := newFakeRepoManager()
	svc := newUserService(m, time.Minute)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other@x.com", "pw2")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	// exactly one principal for that username remains
	stored, err := m.users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, auth.VerifyPassword("pw1", stored.PasswordHash))
}

func TestLogin_TokenResolvesBackToPrincipal(t *testing.T) {
	m := newFakeRepoManager()
	svc := newUserService(m, time.Minute)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@x.com", "correct")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "alice", "correct")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	u, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestLogin_UniformErrorForUnknownUserAndWrongPassword(t *testing.T) {
	m := newFakeRepoManager()
	svc := newUserService(m, time.Minute)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@x.com", "correct")
	require.NoError(t, err)

	_, errWrongPassword := svc.Login(ctx, "alice", "wrong")
	_, errUnknownUser := svc.Login(ctx, "nobody", "whatever")

	require.ErrorIs(t, errWrongPassword, common.ErrorUnauthorized)
	require.ErrorIs(t, errUnknownUser, common.ErrorUnauthorized)
	// identical error values: callers cannot distinguish the two cases
	assert.Equal(t, errWrongPassword, errUnknownUser)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	m := newFakeRepoManager()
	svc := newUserService(m, -1*time.Second)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@x.com", "correct")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "alice", "correct")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, token)
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestAuthenticate_TamperedToken(t *testing.T) {
	m := newFakeRepoManager()
	svc := newUserService(m, time.Minute)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@x.com", "correct")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "alice", "correct")
	require.NoError(t, err)

	b := []byte(token)
	if b[len(b)-1] == 'A' {
		b[len(b)-1] = 'B'
	} else {
		b[len(b)-1] = 'A'
	}

	_, err = svc.Authenticate(ctx, string(b))
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	m := newFakeRepoManager()
	svc := newUserService(m, time.Minute)

	_, err := svc.Authenticate(context.Background(), "garbage")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestAuthenticate_SubjectNoLongerResolves(t *testing.T) {
	m := newFakeRepoManager()
	svc := newUserService(m, time.Minute)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@x.com", "correct")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "alice", "correct")
	require.NoError(t, err)

	m.users.delete("alice")

	_, err = svc.Authenticate(ctx, token)
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}
