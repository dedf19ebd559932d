package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/staffkeeper/internal/client/form"
	"github.com/dmitrijs2005/staffkeeper/internal/client/models"
	"github.com/dmitrijs2005/staffkeeper/internal/client/router"
	"github.com/dmitrijs2005/staffkeeper/internal/client/ui"
	"github.com/dmitrijs2005/staffkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addUser(h *harness) models.Account {
	return h.store.AddAccount(models.Account{
		FirstName: "Joe", LastName: "Bloggs", Email: "joe@example.com",
		Password: "pw", Role: models.RoleUser, Verified: true,
	})
}

func TestAccountEdit(t *testing.T) {
	h := newHarness(t)
	h.signInAdmin()
	acc := addUser(h)
	p := h.script("", "Smith", " JOE.SMITH@example.com", "admin")

	require.NoError(t, NewAccountService(h.deps).Edit(context.Background(), acc.ID))

	got, _ := h.store.AccountByID(acc.ID).Get()
	assert.Equal(t, "Joe", got.FirstName)
	assert.Equal(t, "Smith", got.LastName)
	assert.Equal(t, "joe.smith@example.com", got.Email)
	assert.Equal(t, models.RoleAdmin, got.Role)
	assert.Equal(t, "pw", got.Password)

	require.Len(t, p.Asked, 4)
	assert.Equal(t, form.Field{Key: "firstName", Label: "First name", Default: "Joe"}, p.Asked[0])
	assert.Equal(t, "user", p.Asked[3].Default)

	assert.Equal(t, []router.Page{router.PageAccounts}, h.nav.refreshed)
	assert.Equal(t, ui.Success(MsgAccountUpdated), h.surface.LastNotice())
}

func TestAccountEdit_BadRoleAbortsEverything(t *testing.T) {
	h := newHarness(t)
	acc := addUser(h)
	h.script("Changed", "", "", "superuser")

	err := NewAccountService(h.deps).Edit(context.Background(), acc.ID)

	require.ErrorIs(t, err, common.ErrValidation)
	got, _ := h.store.AccountByID(acc.ID).Get()
	assert.Equal(t, acc, got)
	assert.Equal(t, ui.Error("Role must be user or admin"), h.surface.LastNotice())
	assert.Empty(t, h.nav.refreshed)
}

func TestAccountEdit_CancelledFieldAbortsSilently(t *testing.T) {
	h := newHarness(t)
	acc := addUser(h)
	h.script("Changed", form.Cancel)

	err := NewAccountService(h.deps).Edit(context.Background(), acc.ID)

	require.ErrorIs(t, err, common.ErrPartialInput)
	got, _ := h.store.AccountByID(acc.ID).Get()
	assert.Equal(t, acc, got)
	assert.Empty(t, h.surface.Notices)
}

func TestAccountEdit_NotFound(t *testing.T) {
	h := newHarness(t)
	err := NewAccountService(h.deps).Edit(context.Background(), 404)

	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, ui.Error(MsgAccountNotFound), h.surface.LastNotice())
	assert.Empty(t, h.prompter.Asked)
}

func TestAccountDelete(t *testing.T) {
	h := newHarness(t)
	h.signInAdmin()
	acc := addUser(h)
	emp := h.store.AddEmployee(models.Employee{UserID: acc.ID, DepartmentID: 1})
	h.prompter.WithConfirms(true)

	require.NoError(t, NewAccountService(h.deps).Delete(context.Background(), acc.ID))

	assert.False(t, h.store.AccountByID(acc.ID).IsSet)
	assert.True(t, h.store.EmployeeByID(emp.ID).IsSet, "employees are not cascaded")
	assert.Equal(t, ui.Success(MsgAccountDeleted), h.surface.LastNotice())
	assert.Equal(t, []router.Page{router.PageAccounts}, h.nav.refreshed)
}

func TestAccountDelete_NotConfirmed(t *testing.T) {
	h := newHarness(t)
	acc := addUser(h)
	h.prompter.WithConfirms(false)

	require.NoError(t, NewAccountService(h.deps).Delete(context.Background(), acc.ID))

	assert.True(t, h.store.AccountByID(acc.ID).IsSet)
	assert.Empty(t, h.surface.Notices)
}

func TestAccountDelete_SelfIsAlwaysRejected(t *testing.T) {
	for _, role := range []models.Role{models.RoleAdmin, models.RoleUser} {
		h := newHarness(t)
		acc := addUser(h)
		h.store.UpdateAccount(acc.ID, func(a *models.Account) { a.Role = role })
		acc, _ = h.store.AccountByID(acc.ID).Get()
		h.session.SetAuthState(true, &acc)
		h.prompter.WithConfirms(true)

		err := NewAccountService(h.deps).Delete(context.Background(), acc.ID)

		require.ErrorIs(t, err, common.ErrSelfDeletion, role.String())
		assert.True(t, h.store.AccountByID(acc.ID).IsSet)
		assert.Equal(t, ui.Error(MsgSelfDeletion), h.surface.LastNotice())
		assert.Empty(t, h.prompter.Confirmed)
	}
}

func TestAccountDelete_SaveFailureKeepsMemoryChange(t *testing.T) {
	h := newHarness(t)
	acc := addUser(h)
	h.prompter.WithConfirms(true)
	h.breakStorage()

	err := NewAccountService(h.deps).Delete(context.Background(), acc.ID)

	require.ErrorIs(t, err, common.ErrPersistence)
	assert.False(t, h.store.AccountByID(acc.ID).IsSet)
	assert.Equal(t, ui.NoticeError, h.surface.LastNotice().Kind)
	assert.Contains(t, h.surface.LastNotice().Message, "Could not save changes")
	assert.Equal(t, []router.Page{router.PageAccounts}, h.nav.refreshed)
}
