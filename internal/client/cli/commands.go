package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/staffkeeper/internal/client/form"
	"github.com/dmitrijs2005/staffkeeper/internal/client/router"
	"github.com/dmitrijs2005/staffkeeper/internal/client/services"
	"github.com/dmitrijs2005/staffkeeper/internal/client/ui"
	"github.com/dmitrijs2005/staffkeeper/internal/common"
)

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.session.IsAdmin()
}

// getStatus is the REPL prompt status: the fragment and who is signed in.
func (a *App) getStatus() string {
	s := a.router.Location().Current()
	if acc, ok := a.session.Current(); ok {
		s = fmt.Sprintf("%s (%s %s)", s, acc.Email, acc.Role)
	}
	return s
}

func (a *App) settle(ctx context.Context) {
	a.router.Drain(ctx)
}

// Go moves to fragment. Typing the current fragment re-routes it, the way
// a browser reload would.
func (a *App) Go(ctx context.Context, fragment string) error {
	fragment = router.NormalizeFragment(fragment)
	if fragment == a.router.Location().Current() {
		a.router.Route(ctx, fragment)
		return nil
	}
	a.router.Navigate(fragment)
	return nil
}

// Register collects the sign-up form and creates the account.
func (a *App) Register(ctx context.Context) error {
	fields := []form.Field{
		{Key: "firstName", Label: "First name"},
		{Key: "lastName", Label: "Last name"},
		{Key: "email", Label: "Email"},
		{Key: "password", Label: "Password", Secret: true},
	}
	return a.ignorePartial(form.Submit(ctx, a.prompter, fields, func(ctx context.Context, v form.Values) error {
		return a.authService.Register(ctx, services.RegisterParams{
			FirstName: v.Get("firstName"),
			LastName:  v.Get("lastName"),
			Email:     v.Get("email"),
			Password:  v.Get("password"),
		})
	}))
}

// Verify verifies the email left pending by the last registration.
func (a *App) Verify(ctx context.Context) error {
	return a.authService.Verify(ctx)
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	fields := []form.Field{
		{Key: "email", Label: "Email"},
		{Key: "password", Label: "Password", Secret: true},
	}
	return a.ignorePartial(form.Submit(ctx, a.prompter, fields, func(ctx context.Context, v form.Values) error {
		return a.authService.Login(ctx, v.Get("email"), v.Get("password"))
	}))
}

func (a *App) Logout(ctx context.Context) error {
	return a.authService.Logout(ctx)
}

func (a *App) Accounts(ctx context.Context, args []string) error {
	return a.collection(ctx, router.PageAccounts, args, nil, a.accountService.Edit, a.accountService.Delete)
}

func (a *App) Departments(ctx context.Context, args []string) error {
	s := a.departmentService
	return a.collection(ctx, router.PageDepartments, args, s.Create, s.Edit, s.Delete)
}

func (a *App) Employees(ctx context.Context, args []string) error {
	s := a.employeeService
	return a.collection(ctx, router.PageEmployees, args, s.Create, s.Edit, s.Delete)
}

// collection dispatches "<page> add|edit|delete [id]". The commands only
// work while page is shown, and add only where create is not nil.
func (a *App) collection(ctx context.Context, page router.Page, args []string,
	create func(context.Context) error,
	edit, del func(context.Context, int64) error,
) error {
	if active, ok := a.router.Active(); !ok || active != page {
		a.notifier.Notify(ui.Info(fmt.Sprintf("Open %s first", page.Fragment())))
		return nil
	}

	usage := func() error {
		if create != nil {
			a.notifier.Notify(ui.Info(fmt.Sprintf("Usage: %s add | edit <id> | delete <id>", page)))
		} else {
			a.notifier.Notify(ui.Info(fmt.Sprintf("Usage: %s edit <id> | delete <id>", page)))
		}
		return nil
	}
	if len(args) == 0 {
		return usage()
	}

	switch args[0] {
	case "add":
		if create == nil {
			return usage()
		}
		return a.ignorePartial(create(ctx))
	case "edit", "delete":
		if len(args) < 2 {
			return usage()
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			a.notifier.Notify(ui.Error(fmt.Sprintf("Invalid id %q", args[1])))
			return fmt.Errorf("%w: id %q", common.ErrValidation, args[1])
		}
		if args[0] == "edit" {
			return a.ignorePartial(edit(ctx, id))
		}
		return del(ctx, id)
	}
	return usage()
}

// ignorePartial drops common.ErrPartialInput. An abandoned form ends the
// command without any message.
func (a *App) ignorePartial(err error) error {
	if errors.Is(err, common.ErrPartialInput) {
		a.logger.Debug(context.Background(), "form abandoned", "error", err)
		return nil
	}
	return err
}
