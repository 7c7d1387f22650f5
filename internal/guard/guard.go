// Package guard decides whether a navigation target is permitted for the
// current session. It is pure: callers perform the actual navigation.
package guard

import (
	"jobdeck/internal/models"
)

// Decision is the outcome of evaluating a navigation request.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectDashboard
	RedirectProfileSetup
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectDashboard:
		return "redirect-dashboard"
	case RedirectProfileSetup:
		return "redirect-profile-setup"
	}
	return "unknown"
}

// Route names the navigable destinations of the client.
type Route string

const (
	RouteHome               Route = "/"
	RouteSearch             Route = "/jobs"
	RouteJobDetails         Route = "/job"
	RouteAuth               Route = "/auth"
	RouteProfileSetup       Route = "/profile"
	RouteEmployerDashboard  Route = "/employer-dashboard"
	RouteJobSeekerDashboard Route = "/jobseeker-dashboard"
	RouteApplications       Route = "/employer-dashboard/applications"
)

// requiresAuth lists the destinations gated behind a session. Everything else
// is public.
var requiresAuth = map[Route]bool{
	RouteEmployerDashboard:  true,
	RouteJobSeekerDashboard: true,
	RouteApplications:       true,
	RouteProfileSetup:       true,
}

// dashboards maps each role to its home view.
var dashboards = map[models.Role]Route{
	models.RoleEmployer:  RouteEmployerDashboard,
	models.RoleJobSeeker: RouteJobSeekerDashboard,
}

// DashboardFor returns the dashboard route for the given role.
func DashboardFor(role models.Role) Route {
	return dashboards[role]
}

// isDashboard reports whether dest is some role's dashboard (the applications
// view counts as part of the employer dashboard).
func isDashboard(dest Route) bool {
	return dest == RouteEmployerDashboard ||
		dest == RouteJobSeekerDashboard ||
		dest == RouteApplications
}

// Evaluate yields the decision for navigating to dest under sess.
//
// Unauthenticated users are sent to the login view for any gated route.
// Authenticated users are bounced off the login view to their dashboard,
// bounced to profile setup while the profile flag is unset, and steered to
// the dashboard of their own role when they request the other one.
func Evaluate(sess models.Session, dest Route) Decision {
	if !sess.IsAuthenticated {
		if requiresAuth[dest] {
			return RedirectLogin
		}
		return Allow
	}

	if dest == RouteAuth {
		return RedirectDashboard
	}

	if !sess.User.HasProfile {
		if dest == RouteProfileSetup || !requiresAuth[dest] {
			return Allow
		}
		return RedirectProfileSetup
	}

	if isDashboard(dest) {
		own := DashboardFor(sess.User.Role)
		if dest == RouteApplications && sess.User.Role == models.RoleEmployer {
			return Allow
		}
		if dest != own {
			return RedirectDashboard
		}
	}

	return Allow
}
