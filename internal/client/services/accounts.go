package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/staffkeeper/internal/client/form"
	"github.com/dmitrijs2005/staffkeeper/internal/client/models"
	"github.com/dmitrijs2005/staffkeeper/internal/client/router"
	"github.com/dmitrijs2005/staffkeeper/internal/common"
)

const (
	MsgAccountUpdated = "Account updated successfully"
	MsgAccountDeleted = "Account deleted successfully"
	MsgSelfDeletion   = "You cannot delete your own account"
)

// AccountService edits and deletes accounts. Accounts are only created by
// registration.
type AccountService interface {
	Edit(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type AccountParams struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required"`
	Role      string `validate:"oneof=user admin"`
}

type accountService struct {
	*Deps
}

func NewAccountService(d *Deps) AccountService {
	return &accountService{Deps: d}
}

func accountFields(a models.Account) []form.Field {
	return []form.Field{
		{Key: "firstName", Label: "First name", Default: a.FirstName},
		{Key: "lastName", Label: "Last name", Default: a.LastName},
		{Key: "email", Label: "Email", Default: a.Email},
		{Key: "role", Label: "Role (user/admin)", Default: a.Role.String()},
	}
}

func (s *accountService) Edit(ctx context.Context, id int64) error {
	acc, ok := s.Store.AccountByID(id).Get()
	if !ok {
		return s.fail(ctx, fmt.Errorf("%w: account %d", common.ErrNotFound, id), MsgAccountNotFound)
	}

	return form.Submit(ctx, s.Prompter, accountFields(acc), func(ctx context.Context, v form.Values) error {
		p := AccountParams{
			FirstName: v.Get("firstName"),
			LastName:  v.Get("lastName"),
			Email:     common.NormalizeEmail(v.Get("email")),
			Role:      v.Get("role"),
		}
		if err := validateParams(p); err != nil {
			return s.fail(ctx, err, errorText(err))
		}
		role, err := models.ParseRole(p.Role)
		if err != nil {
			return s.fail(ctx, fmt.Errorf("%w: %w", common.ErrValidation, err), "Role must be user or admin")
		}

		s.Store.UpdateAccount(id, func(a *models.Account) {
			a.FirstName = p.FirstName
			a.LastName = p.LastName
			a.Email = p.Email
			a.Role = role
		})
		s.Logger.Info(ctx, "account updated", "id", id)
		return s.commit(ctx, router.PageAccounts, MsgAccountUpdated)
	})
}

func (s *accountService) Delete(ctx context.Context, id int64) error {
	if cur, ok := s.Session.Current(); ok && cur.ID == id {
		return s.fail(ctx, fmt.Errorf("%w: account %d", common.ErrSelfDeletion, id), MsgSelfDeletion)
	}

	acc, ok := s.Store.AccountByID(id).Get()
	if !ok {
		return s.fail(ctx, fmt.Errorf("%w: account %d", common.ErrNotFound, id), MsgAccountNotFound)
	}
	if !s.confirmDelete(ctx, "account "+acc.Email) {
		return nil
	}

	s.Store.DeleteAccount(id)
	s.Logger.Info(ctx, "account deleted", "id", id)
	return s.commit(ctx, router.PageAccounts, MsgAccountDeleted)
}
