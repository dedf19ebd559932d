// Package session holds the identity of the signed-in account.
package session

import "github.com/dmitrijs2005/staffkeeper/internal/client/models"

// Session is the current identity plus the authenticated and admin markers.
// The zero value is signed out.
type Session struct {
	current       models.Account
	authenticated bool
	admin         bool
}

func New() *Session {
	return &Session{}
}

// SetAuthState signs in with a copy of acc when authenticated is true and
// acc is not nil. Any other combination signs out.
func (s *Session) SetAuthState(authenticated bool, acc *models.Account) {
	if !authenticated || acc == nil {
		*s = Session{}
		return
	}
	s.current = *acc
	s.authenticated = true
	s.admin = acc.IsAdmin()
}

// Current returns the signed-in account, if any.
func (s *Session) Current() (models.Account, bool) {
	return s.current, s.authenticated
}

func (s *Session) IsAuthenticated() bool {
	return s.authenticated
}

func (s *Session) IsAdmin() bool {
	return s.authenticated && s.admin
}
