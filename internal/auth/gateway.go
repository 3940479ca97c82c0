package auth

// AuthUser — аутентифицированный пользователь запроса,
// восстановленный из проверенных claims токена.
type AuthUser struct {
	ID       string
	Username string
	Role     Role
}

// UserFromClaims собирает AuthUser из проверенных claims.
// Неизвестная роль понижается до watcher.
func UserFromClaims(c *Claims) AuthUser {
	return AuthUser{
		ID:       c.Subject,
		Username: c.Username,
		Role:     ParseRole(c.Role),
	}
}

// Authorize — допуск по минимальной роли операции.
func Authorize(u AuthUser, min Role) bool {
	return u.Role.AtLeast(min)
}

// AuthorizeOwnerOrAdmin — допуск для операций, ограниченных автором записи:
// либо роль не ниже admin, либо пользователь и есть автор.
func AuthorizeOwnerOrAdmin(u AuthUser, recordAuthor string) bool {
	return u.Role.AtLeast(RoleAdmin) || u.Username == recordAuthor
}
