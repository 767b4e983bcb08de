package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorized_ExactMatrix(t *testing.T) {
	cases := []struct {
		role  Role
		group RouteGroup
		want  bool
	}{
		{RoleAdmin, GroupAdministrator, true},
		{RoleAdmin, GroupDirector, false},
		{RoleAdmin, GroupEmployee, false},
		{RoleDirector, GroupAdministrator, false},
		{RoleDirector, GroupDirector, true},
		{RoleDirector, GroupEmployee, false},
		{RoleEmployee, GroupAdministrator, false},
		{RoleEmployee, GroupDirector, false},
		{RoleEmployee, GroupEmployee, true},
		{Role(0), GroupAdministrator, false},
		{Role(4), GroupEmployee, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Authorized(tc.role, tc.group), "%s vs %s", tc.role, tc.group)
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleDirector.Valid())
	assert.True(t, RoleEmployee.Valid())
	assert.False(t, Role(0).Valid())
	assert.False(t, Role(4).Valid())
	assert.False(t, Role(-1).Valid())
}

func TestLandingPath(t *testing.T) {
	assert.Equal(t, "/administrator/", RoleAdmin.LandingPath())
	assert.Equal(t, "/director/", RoleDirector.LandingPath())
	assert.Equal(t, "/user/", RoleEmployee.LandingPath())

	assert.Panics(t, func() { Role(42).LandingPath() })
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "admin", RoleAdmin.String())
	assert.Equal(t, "director", RoleDirector.String())
	assert.Equal(t, "employee", RoleEmployee.String())
	assert.Equal(t, "role(9)", Role(9).String())
}
