package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golang-jwt/jwt/v5"
)

func TestUserFromClaims(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "id-1"},
		Username:         "alice",
		Role:             "editor",
	}

	u := UserFromClaims(claims)
	assert.Equal(t, "id-1", u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, RoleEditor, u.Role)

	// роль из claims, которой нет в иерархии, понижается
	claims.Role = "superuser"
	assert.Equal(t, RoleWatcher, UserFromClaims(claims).Role)
}

func TestAuthorize(t *testing.T) {
	editor := AuthUser{Username: "alice", Role: RoleEditor}

	assert.True(t, Authorize(editor, RoleWatcher))
	assert.True(t, Authorize(editor, RoleEditor))
	assert.False(t, Authorize(editor, RoleAdmin))
}

func TestAuthorizeOwnerOrAdmin(t *testing.T) {
	tests := []struct {
		name   string
		user   AuthUser
		author string
		want   bool
	}{
		{"admin over foreign record", AuthUser{Username: "root", Role: RoleAdmin}, "alice", true},
		{"editor over own record", AuthUser{Username: "alice", Role: RoleEditor}, "alice", true},
		{"editor over foreign record", AuthUser{Username: "bob", Role: RoleEditor}, "alice", false},
		{"watcher over own record", AuthUser{Username: "alice", Role: RoleWatcher}, "alice", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AuthorizeOwnerOrAdmin(tt.user, tt.author))
		})
	}
}
