package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"editor", RoleEditor},
		{"watcher", RoleWatcher},
		{"  ADMIN  ", RoleAdmin},
		{"Editor", RoleEditor},
		// неизвестные и пустые значения понижаются до watcher
		{"", RoleWatcher},
		{"owner", RoleWatcher},
		{"administrator", RoleWatcher},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRole(tt.in), "ParseRole(%q)", tt.in)
	}
}

func TestRoleString_RoundTrip(t *testing.T) {
	for _, r := range []Role{RoleWatcher, RoleEditor, RoleAdmin} {
		assert.Equal(t, r, ParseRole(r.String()))
	}
}

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		role Role
		min  Role
		want bool
	}{
		{RoleWatcher, RoleWatcher, true},
		{RoleWatcher, RoleEditor, false},
		{RoleWatcher, RoleAdmin, false},
		{RoleEditor, RoleWatcher, true},
		{RoleEditor, RoleEditor, true},
		{RoleEditor, RoleAdmin, false},
		{RoleAdmin, RoleWatcher, true},
		{RoleAdmin, RoleEditor, true},
		{RoleAdmin, RoleAdmin, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.AtLeast(tt.min), "%s.AtLeast(%s)", tt.role, tt.min)
	}
}
