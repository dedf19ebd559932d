package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/staffkeeper/internal/client/models"
	"github.com/dmitrijs2005/staffkeeper/internal/client/router"
	"github.com/dmitrijs2005/staffkeeper/internal/client/store"
	"github.com/dmitrijs2005/staffkeeper/internal/client/ui"
	"github.com/dmitrijs2005/staffkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser() RegisterParams {
	return RegisterParams{FirstName: "Jane", LastName: "Doe", Email: "  Jane@Example.COM ", Password: "secret"}
}

func TestRegister_Success(t *testing.T) {
	h := newHarness(t)
	svc := NewAuthService(h.deps)

	require.NoError(t, svc.Register(context.Background(), newUser()))

	acc, ok := h.store.AccountByEmail("jane@example.com").Get()
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", acc.Email)
	assert.Equal(t, models.RoleUser, acc.Role)
	assert.False(t, acc.Verified)
	assert.Equal(t, testNow.UnixMilli(), acc.ID)
	assert.Equal(t, "2024-01-02T03:04:05.000Z", acc.CreatedAt)

	pending, ok := h.stored(t, store.PendingVerificationKey)
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", pending)

	assert.Equal(t, router.VerifyFragment, h.nav.last())
	assert.Equal(t, ui.Success(MsgRegistered), h.surface.LastNotice())

	raw, _ := h.stored(t, store.DefaultDataKey)
	assert.Contains(t, raw, "jane@example.com")
}

func TestRegister_DuplicateEmailIsRejected(t *testing.T) {
	for _, email := range []string{"admin@example.com", "ADMIN@example.com", "  Admin@Example.Com  "} {
		h := newHarness(t)
		before := h.store.Accounts()

		p := newUser()
		p.Email = email
		err := NewAuthService(h.deps).Register(context.Background(), p)

		require.ErrorIs(t, err, common.ErrConflict, email)
		assert.Equal(t, before, h.store.Accounts())
		assert.Equal(t, ui.Error(MsgEmailTaken), h.surface.LastNotice())
		assert.Empty(t, h.nav.navigated)
		_, ok := h.stored(t, store.PendingVerificationKey)
		assert.False(t, ok)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	h := newHarness(t)
	p := newUser()
	p.FirstName = ""
	p.Password = ""

	err := NewAuthService(h.deps).Register(context.Background(), p)

	require.ErrorIs(t, err, common.ErrValidation)
	assert.Len(t, h.store.Accounts(), 1)
	msg := h.surface.LastNotice().Message
	assert.Contains(t, msg, "FirstName is required")
	assert.Contains(t, msg, "Password is required")
}

func TestVerify_WithoutPendingMutatesNothing(t *testing.T) {
	h := newHarness(t)
	before := h.store.Snapshot()
	raw, _ := h.stored(t, store.DefaultDataKey)

	err := NewAuthService(h.deps).Verify(context.Background())

	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, ui.Error(MsgNothingToVerify), h.surface.LastNotice())
	assert.Equal(t, before, h.store.Snapshot())
	after, _ := h.stored(t, store.DefaultDataKey)
	assert.Equal(t, raw, after)
	assert.Empty(t, h.nav.navigated)
}

func TestVerify_UnknownAccount(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.storage.Set(context.Background(), store.PendingVerificationKey, "ghost@example.com"))

	err := NewAuthService(h.deps).Verify(context.Background())

	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, ui.Error(MsgAccountNotFound), h.surface.LastNotice())
}

func TestRegisterVerifyLogin(t *testing.T) {
	h := newHarness(t)
	svc := NewAuthService(h.deps)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, newUser()))

	err := svc.Login(ctx, "jane@example.com", "secret")
	require.ErrorIs(t, err, common.ErrInvalidCredentials, "unverified accounts cannot sign in")
	assert.False(t, h.session.IsAuthenticated())

	email, ok := svc.PendingEmail(ctx)
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", email)

	require.NoError(t, svc.Verify(ctx))
	assert.Equal(t, router.LoginFragment, h.nav.last())
	_, ok = h.stored(t, store.PendingVerificationKey)
	assert.False(t, ok)

	require.NoError(t, svc.Login(ctx, "JANE@example.com", "secret"))
	assert.True(t, h.session.IsAuthenticated())
	assert.False(t, h.session.IsAdmin())
}

func TestLogin_SeededAdmin(t *testing.T) {
	h := newHarness(t)
	svc := NewAuthService(h.deps)

	require.NoError(t, svc.Login(context.Background(), store.SeedAdminEmail, store.SeedAdminPassword))

	cur, ok := h.session.Current()
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, cur.Role)
	assert.True(t, h.session.IsAdmin())
	assert.Equal(t, router.ProfileFragment, h.nav.last())

	token, ok := h.stored(t, store.TokenKey)
	require.True(t, ok)
	assert.Equal(t, store.SeedAdminEmail, token)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	cases := map[string][2]string{
		"wrong password": {store.SeedAdminEmail, "password123!"},
		"unknown email":  {"nobody@example.com", store.SeedAdminPassword},
		"empty":          {"", ""},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			err := NewAuthService(h.deps).Login(context.Background(), c[0], c[1])

			require.ErrorIs(t, err, common.ErrInvalidCredentials)
			assert.False(t, h.session.IsAuthenticated())
			assert.Equal(t, ui.Error(MsgInvalidCredentials), h.surface.LastNotice())
			_, ok := h.stored(t, store.TokenKey)
			assert.False(t, ok)
		})
	}
}

func TestLogin_SharedEmailMatchesAnyAccount(t *testing.T) {
	h := newHarness(t)
	second := h.store.AddAccount(models.Account{
		FirstName: "Other", LastName: "Admin", Email: store.SeedAdminEmail,
		Password: "other", Role: models.RoleUser, Verified: true,
	})
	svc := NewAuthService(h.deps)

	require.NoError(t, svc.Login(context.Background(), store.SeedAdminEmail, "other"))

	cur, ok := h.session.Current()
	require.True(t, ok)
	assert.Equal(t, second.ID, cur.ID)
	assert.False(t, h.session.IsAdmin())
}

func TestLogin_UnverifiedDuplicateIsSkipped(t *testing.T) {
	h := newHarness(t)
	h.store.AddAccount(models.Account{
		FirstName: "Other", LastName: "Admin", Email: store.SeedAdminEmail,
		Password: "other", Role: models.RoleUser, Verified: false,
	})

	err := NewAuthService(h.deps).Login(context.Background(), store.SeedAdminEmail, "other")

	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, h.session.IsAuthenticated())
}

func TestLogout(t *testing.T) {
	h := newHarness(t)
	svc := NewAuthService(h.deps)
	ctx := context.Background()
	require.NoError(t, svc.Login(ctx, store.SeedAdminEmail, store.SeedAdminPassword))

	require.NoError(t, svc.Logout(ctx))

	assert.False(t, h.session.IsAuthenticated())
	assert.Equal(t, router.HomeFragment, h.nav.last())
	_, ok := h.stored(t, store.TokenKey)
	assert.False(t, ok)
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("no token", func(t *testing.T) {
		h := newHarness(t)
		require.NoError(t, NewAuthService(h.deps).Restore(ctx))
		assert.False(t, h.session.IsAuthenticated())
	})

	t.Run("verified account", func(t *testing.T) {
		h := newHarness(t)
		require.NoError(t, h.storage.Set(ctx, store.TokenKey, store.SeedAdminEmail))

		require.NoError(t, NewAuthService(h.deps).Restore(ctx))
		assert.True(t, h.session.IsAdmin())
		assert.Empty(t, h.surface.Notices)
	})

	t.Run("stale token is discarded", func(t *testing.T) {
		h := newHarness(t)
		require.NoError(t, h.storage.Set(ctx, store.TokenKey, "ghost@example.com"))

		require.NoError(t, NewAuthService(h.deps).Restore(ctx))
		assert.False(t, h.session.IsAuthenticated())
		_, ok := h.stored(t, store.TokenKey)
		assert.False(t, ok)
	})

	t.Run("unverified account is discarded", func(t *testing.T) {
		h := newHarness(t)
		acc := h.store.AddAccount(models.Account{Email: "u@example.com", Role: models.RoleUser})
		require.NoError(t, h.storage.Set(ctx, store.TokenKey, acc.Email))

		require.NoError(t, NewAuthService(h.deps).Restore(ctx))
		assert.False(t, h.session.IsAuthenticated())
		_, ok := h.stored(t, store.TokenKey)
		assert.False(t, ok)
	})
}
