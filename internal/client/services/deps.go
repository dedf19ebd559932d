// Package services holds the account flows (register, verify, login, logout,
// silent restore) and the CRUD operations on accounts, departments and
// employees.
//
// Every service reports its outcome to the user through a ui.Notifier and
// also returns it as an error for the caller. An operation abandoned through
// a partially filled form returns common.ErrPartialInput without a notice.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/staffkeeper/internal/client/form"
	"github.com/dmitrijs2005/staffkeeper/internal/client/router"
	"github.com/dmitrijs2005/staffkeeper/internal/client/session"
	"github.com/dmitrijs2005/staffkeeper/internal/client/store"
	"github.com/dmitrijs2005/staffkeeper/internal/client/ui"
	"github.com/dmitrijs2005/staffkeeper/internal/common"
	"github.com/dmitrijs2005/staffkeeper/internal/logging"
	"github.com/go-playground/validator/v10"
)

// Navigator is the part of the router the services drive.
type Navigator interface {
	Navigate(fragment string)
	Refresh(ctx context.Context, page router.Page)
}

// Deps is the application state shared by all services. Store must be
// loaded before any service runs.
type Deps struct {
	Store    *store.Store
	Session  *session.Session
	Router   Navigator
	Notifier ui.Notifier
	Prompter form.Prompter
	Logger   logging.Logger
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateParams runs struct tag validation and converts failures to
// common.ErrValidation with a readable message.
func validateParams(p any) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), " or ")))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(msgs, "; "))
}

// fail shows msg as an error notice and returns err.
func (d *Deps) fail(ctx context.Context, err error, msg string) error {
	d.Logger.Debug(ctx, "operation failed", "error", err)
	d.Notifier.Notify(ui.Error(msg))
	return err
}

// save persists the store. A failure is shown to the user; the in-memory
// change stays.
func (d *Deps) save(ctx context.Context) error {
	if err := d.Store.Save(ctx); err != nil {
		d.Notifier.Notify(ui.Error("Could not save changes: " + errorText(err)))
		return err
	}
	return nil
}

// commit saves, re-renders page and reports success.
func (d *Deps) commit(ctx context.Context, page router.Page, success string) error {
	err := d.save(ctx)
	d.Router.Refresh(ctx, page)
	if err != nil {
		return err
	}
	d.Notifier.Notify(ui.Success(success))
	return nil
}

// errorText is the part of err after the sentinel prefix, for notices.
func errorText(err error) string {
	s := err.Error()
	if i := strings.LastIndex(s, ": "); i >= 0 {
		return s[i+2:]
	}
	return s
}

// confirmDelete asks before deleting. A prompter failure counts as "no".
func (d *Deps) confirmDelete(ctx context.Context, what string) bool {
	ok, err := d.Prompter.Confirm(ctx, fmt.Sprintf("Are you sure you want to delete %s?", what))
	if err != nil {
		d.Logger.Warn(ctx, "confirmation failed", "error", err)
		return false
	}
	return ok
}
