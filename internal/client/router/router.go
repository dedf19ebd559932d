// Package router maps fragments to pages and gates them on the session.
//
// Routing never calls itself. A redirect only moves the Location, which
// queues a change event, and Drain routes queued events one at a time the
// way a browser fires hashchange.
package router

import (
	"context"

	"github.com/dmitrijs2005/staffkeeper/internal/client/session"
	"github.com/dmitrijs2005/staffkeeper/internal/client/ui"
	"github.com/dmitrijs2005/staffkeeper/internal/client/views"
	"github.com/dmitrijs2005/staffkeeper/internal/logging"
)

// MaxHops bounds the number of events handled by one Drain.
const MaxHops = 16

// AccessDenied is the notice shown when a non-admin opens an admin page.
const AccessDenied = "Access denied. Admin privileges required."

// Outcome describes what a single Route call did.
type Outcome struct {
	Page      Page
	Known     bool
	Activated bool
	// Redirect is the fragment the Location was moved to, if any.
	Redirect string
	Denied   bool
}

type Router struct {
	loc     *Location
	session *session.Session
	dir     views.Directory
	surface ui.Surface
	logger  logging.Logger

	active    Page
	hasActive bool
}

func New(loc *Location, sess *session.Session, dir views.Directory, surface ui.Surface, logger logging.Logger) *Router {
	return &Router{
		loc:     loc,
		session: sess,
		dir:     dir,
		surface: surface,
		logger:  logger,
	}
}

func (r *Router) Location() *Location {
	return r.loc
}

// Active returns the page currently shown.
func (r *Router) Active() (Page, bool) {
	return r.active, r.hasActive
}

// Navigate moves the Location. Routing happens on the next Drain.
func (r *Router) Navigate(fragment string) {
	r.loc.Set(fragment)
}

// Start routes the initial fragment, defaulting to "#/" when it is empty.
func (r *Router) Start(ctx context.Context) {
	if r.loc.Current() == "" {
		r.loc.Set(HomeFragment)
	} else {
		r.Route(ctx, r.loc.Current())
	}
	r.Drain(ctx)
}

// Drain routes queued fragment changes until none remain or MaxHops is
// reached. It returns the number of events handled.
func (r *Router) Drain(ctx context.Context) int {
	hops := 0
	for {
		if hops == MaxHops {
			if r.loc.Pending() > 0 {
				r.logger.Warn(ctx, "routing stopped after too many redirects", "hops", hops, "fragment", r.loc.Current())
			}
			return hops
		}
		fragment, ok := r.loc.Next()
		if !ok {
			return hops
		}
		r.Route(ctx, fragment)
		hops++
	}
}

// Route applies the access checks for fragment and, when they pass,
// activates and renders its page.
func (r *Router) Route(ctx context.Context, fragment string) Outcome {
	name := ParseFragment(fragment)
	page, known := Lookup(name)
	out := Outcome{Page: page, Known: known}

	r.logger.Debug(ctx, "routing", "fragment", fragment, "page", name)

	if known {
		switch page.Access() {
		case AccessAuthenticated:
			if !r.session.IsAuthenticated() {
				return r.redirect(ctx, out, LoginFragment, "not signed in")
			}
		case AccessAdmin:
			if !r.session.IsAuthenticated() {
				return r.redirect(ctx, out, LoginFragment, "not signed in")
			}
			if !r.session.IsAdmin() {
				r.surface.Notify(ui.Error(AccessDenied))
				out.Denied = true
				return r.redirect(ctx, out, HomeFragment, "not admin")
			}
		}
	}

	r.surface.DeactivateAll()
	r.hasActive = false

	if !known {
		return r.redirect(ctx, out, HomeFragment, "page not found")
	}

	r.surface.Activate(page.String())
	r.active, r.hasActive = page, true
	out.Activated = true
	r.render(page)
	return out
}

func (r *Router) redirect(ctx context.Context, out Outcome, to, reason string) Outcome {
	r.logger.Debug(ctx, "redirecting", "from", out.Page.String(), "to", to, "reason", reason)
	r.loc.Set(to)
	out.Redirect = to
	return out
}

// Refresh re-renders page from current state. Pages without dynamic
// content are left alone.
func (r *Router) Refresh(ctx context.Context, page Page) {
	if !page.valid() {
		return
	}
	r.logger.Debug(ctx, "refreshing", "page", page.String())
	r.render(page)
}

func (r *Router) render(page Page) {
	if fn := pages[page].render; fn != nil {
		r.surface.Render(page.String(), fn(r))
	}
}

func (r *Router) renderProfile() any {
	acc, _ := r.session.Current()
	return views.Profile(acc)
}

func (r *Router) renderAccounts() any {
	return views.Accounts(r.dir)
}

func (r *Router) renderDepartments() any {
	return views.Departments(r.dir)
}

func (r *Router) renderEmployees() any {
	return views.Employees(r.dir)
}
