package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/staffkeeper/internal/client/models"
	"github.com/dmitrijs2005/staffkeeper/internal/client/router"
	"github.com/dmitrijs2005/staffkeeper/internal/client/store"
	"github.com/dmitrijs2005/staffkeeper/internal/client/ui"
	"github.com/dmitrijs2005/staffkeeper/internal/common"
)

// Notices shown by AuthService.
const (
	MsgEmailTaken         = "An account with this email already exists"
	MsgRegistered         = "Registration successful! Please verify your email."
	MsgNothingToVerify    = "No email pending verification"
	MsgAccountNotFound    = "Account not found"
	MsgVerified           = "Email verified! You can now log in."
	MsgInvalidCredentials = "Invalid email or password, or account not verified"
	MsgLoggedOut          = "You have been logged out"
)

// AuthService manages accounts from the signed-out side and the session.
//
// Contract:
//   - Register: create an unverified user account and mark it pending.
//   - Verify: verify the pending account.
//   - Login: sign in a verified account with its exact password.
//   - Logout: sign out and forget the token.
//   - Restore: sign in from the stored token without a password.
//   - PendingEmail: the email waiting for verification, if any.
type AuthService interface {
	Register(ctx context.Context, p RegisterParams) error
	Verify(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	PendingEmail(ctx context.Context) (string, bool)
}

type RegisterParams struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required"`
	Password  string `validate:"required"`
}

type authService struct {
	*Deps
}

func NewAuthService(d *Deps) AuthService {
	return &authService{Deps: d}
}

func (s *authService) Register(ctx context.Context, p RegisterParams) error {
	p.Email = common.NormalizeEmail(p.Email)
	if err := validateParams(p); err != nil {
		return s.fail(ctx, err, errorText(err))
	}

	if s.Store.AccountByEmail(p.Email).IsSet {
		return s.fail(ctx, fmt.Errorf("%w: email %s", common.ErrConflict, p.Email), MsgEmailTaken)
	}

	acc := s.Store.AddAccount(models.Account{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Password:  p.Password,
		Role:      models.RoleUser,
		Verified:  false,
		CreatedAt: s.Store.Timestamp(),
	})
	s.Logger.Info(ctx, "account registered", "id", acc.ID)

	if err := s.save(ctx); err != nil {
		return err
	}
	if err := s.Store.Storage().Set(ctx, store.PendingVerificationKey, acc.Email); err != nil {
		return s.fail(ctx, fmt.Errorf("%w: %w", common.ErrPersistence, err), "Could not remember the email to verify")
	}

	s.Notifier.Notify(ui.Success(MsgRegistered))
	s.Router.Navigate(router.VerifyFragment)
	return nil
}

func (s *authService) PendingEmail(ctx context.Context) (string, bool) {
	email, ok, err := s.Store.Storage().Get(ctx, store.PendingVerificationKey)
	if err != nil {
		s.Logger.Warn(ctx, "reading pending verification failed", "error", err)
		return "", false
	}
	return email, ok && email != ""
}

func (s *authService) Verify(ctx context.Context) error {
	email, ok := s.PendingEmail(ctx)
	if !ok {
		return s.fail(ctx, fmt.Errorf("%w: no pending verification", common.ErrNotFound), MsgNothingToVerify)
	}

	acc, found := s.Store.AccountByEmail(email).Get()
	if !found {
		return s.fail(ctx, fmt.Errorf("%w: account %s", common.ErrNotFound, email), MsgAccountNotFound)
	}

	s.Store.UpdateAccount(acc.ID, func(a *models.Account) { a.Verified = true })
	if err := s.save(ctx); err != nil {
		return err
	}
	if err := s.Store.Storage().Remove(ctx, store.PendingVerificationKey); err != nil {
		s.Logger.Warn(ctx, "clearing pending verification failed", "error", err)
	}

	s.Notifier.Notify(ui.Success(MsgVerified))
	s.Router.Navigate(router.LoginFragment)
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) error {
	email = common.NormalizeEmail(email)

	acc, found := s.Store.AccountByCredentials(email, password).Get()
	if !found {
		s.Logger.Info(ctx, "login rejected")
		return s.fail(ctx, common.ErrInvalidCredentials, MsgInvalidCredentials)
	}

	if err := s.Store.Storage().Set(ctx, store.TokenKey, acc.Email); err != nil {
		s.Logger.Warn(ctx, "storing login token failed", "error", err)
	}
	s.Session.SetAuthState(true, &acc)

	s.Notifier.Notify(ui.Success(fmt.Sprintf("Welcome, %s!", acc.FullName())))
	s.Router.Navigate(router.ProfileFragment)
	return nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.Store.Storage().Remove(ctx, store.TokenKey); err != nil {
		s.Logger.Warn(ctx, "removing login token failed", "error", err)
	}
	s.Session.SetAuthState(false, nil)

	s.Notifier.Notify(ui.Info(MsgLoggedOut))
	s.Router.Navigate(router.HomeFragment)
	return nil
}

// Restore signs in the account named by the stored token. A token for a
// missing or unverified account is removed.
func (s *authService) Restore(ctx context.Context) error {
	st := s.Store.Storage()

	token, ok, err := st.Get(ctx, store.TokenKey)
	if err != nil {
		return fmt.Errorf("failed to read login token: %w", err)
	}
	if !ok {
		return nil
	}

	acc, found := s.Store.AccountByEmail(token).Get()
	if found && acc.Verified {
		s.Session.SetAuthState(true, &acc)
		s.Logger.Info(ctx, "session restored", "id", acc.ID)
		return nil
	}

	s.Logger.Info(ctx, "discarding stale login token")
	if err := st.Remove(ctx, store.TokenKey); err != nil {
		return fmt.Errorf("failed to remove login token: %w", err)
	}
	return nil
}
