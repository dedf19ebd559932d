package router

import "strings"

// Page is one addressable screen.
type Page int

const (
	PageHome Page = iota
	PageLogin
	PageRegister
	PageVerifyEmail
	PageProfile
	PageRequests
	PageAccounts
	PageDepartments
	PageEmployees

	pageCount
)

// Access is who may open a page.
type Access int

const (
	AccessPublic Access = iota
	AccessAuthenticated
	AccessAdmin
)

func (a Access) String() string {
	switch a {
	case AccessAuthenticated:
		return "authenticated"
	case AccessAdmin:
		return "admin"
	default:
		return "public"
	}
}

type renderFunc func(r *Router) any

type pageSpec struct {
	slug   string
	access Access
	render renderFunc
}

var pages = [...]pageSpec{
	PageHome:        {slug: "home", access: AccessPublic},
	PageLogin:       {slug: "login", access: AccessPublic},
	PageRegister:    {slug: "register", access: AccessPublic},
	PageVerifyEmail: {slug: "verify-email", access: AccessPublic},
	PageProfile:     {slug: "profile", access: AccessAuthenticated, render: (*Router).renderProfile},
	PageRequests:    {slug: "requests", access: AccessAuthenticated},
	PageAccounts:    {slug: "accounts", access: AccessAdmin, render: (*Router).renderAccounts},
	PageDepartments: {slug: "departments", access: AccessAdmin, render: (*Router).renderDepartments},
	PageEmployees:   {slug: "employees", access: AccessAdmin, render: (*Router).renderEmployees},
}

// Fails to compile unless pages has exactly one row per Page.
var _ = [1]struct{}{}[len(pages)-int(pageCount)]

func (p Page) valid() bool {
	return p >= 0 && p < pageCount
}

// String returns the page slug used in fragments.
func (p Page) String() string {
	if !p.valid() {
		return "unknown"
	}
	return pages[p].slug
}

func (p Page) Access() Access {
	if !p.valid() {
		return AccessPublic
	}
	return pages[p].access
}

// Fragment is the "#/<slug>" form of p. Home is "#/".
func (p Page) Fragment() string {
	if p == PageHome {
		return HomeFragment
	}
	return "#/" + p.String()
}

// Lookup resolves a slug to its Page.
func Lookup(slug string) (Page, bool) {
	for p := Page(0); p < pageCount; p++ {
		if pages[p].slug == slug {
			return p, true
		}
	}
	return 0, false
}

// Fragments addressed by the application itself.
const (
	HomeFragment    = "#/"
	LoginFragment   = "#/login"
	VerifyFragment  = "#/verify-email"
	ProfileFragment = "#/profile"
)

// ParseFragment extracts the page slug from a "#/<slug>" fragment. An empty
// fragment or "#/" yields "home".
func ParseFragment(fragment string) string {
	name := strings.TrimPrefix(fragment, "#")
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return PageHome.String()
	}
	return name
}

// NormalizeFragment turns user input such as "profile", "/profile" or
// "#/profile" into the "#/profile" form.
func NormalizeFragment(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(s, "/")
	return "#/" + s
}
