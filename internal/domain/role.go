package domain

import "fmt"

// Role is the closed set of account roles. Values are persisted, do not
// renumber.
type Role int8

const (
	RoleAdmin    Role = 1
	RoleDirector Role = 2
	RoleEmployee Role = 3
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDirector, RoleEmployee:
		return true
	}
	return false
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleDirector:
		return "director"
	case RoleEmployee:
		return "employee"
	}
	return fmt.Sprintf("role(%d)", int8(r))
}

// RouteGroup is a cluster of endpoints gated by the same role check.
type RouteGroup string

const (
	GroupAdministrator RouteGroup = "administrator"
	GroupDirector      RouteGroup = "director"
	GroupEmployee      RouteGroup = "user"
)

// routeGroups maps each role to the single group it may reach. There is
// no hierarchy between roles: an admin cannot open employee routes and
// vice versa.
var routeGroups = map[Role]RouteGroup{
	RoleAdmin:    GroupAdministrator,
	RoleDirector: GroupDirector,
	RoleEmployee: GroupEmployee,
}

// Authorized reports whether role may invoke routes in group.
func Authorized(role Role, group RouteGroup) bool {
	return routeGroups[role] == group
}

// LandingPath returns the page a role is dispatched to after login.
// A role outside the closed set cannot exist under this data model;
// hitting one means broken configuration, so panic rather than guess.
func (r Role) LandingPath() string {
	switch r {
	case RoleAdmin:
		return "/administrator/"
	case RoleDirector:
		return "/director/"
	case RoleEmployee:
		return "/user/"
	}
	panic(fmt.Sprintf("domain: no landing path for %s", r))
}
