// Package models defines the records kept by the client: accounts,
// departments, employees and the reserved requests collection, plus Data,
// the shape of the persisted blob.
package models

import (
	"fmt"
	"strings"
)

// Role is the access role of an Account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// ParseRole accepts exactly "user" or "admin".
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %q", s)
	}
	return role, nil
}

// Account is a login identity. Email is stored normalized (trimmed and
// lowercased) and is the natural login key. Password is kept verbatim.
type Account struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Role   `json:"role"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"createdAt"`
}

func (a Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
