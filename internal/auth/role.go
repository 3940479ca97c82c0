package auth

import "strings"

// Role — уровень привилегий пользователя. Порядок значим:
// watcher < editor < admin.
type Role int

const (
	RoleWatcher Role = iota
	RoleEditor
	RoleAdmin
)

// ParseRole разбирает строковую роль. Неизвестные значения понижаются
// до watcher, а не отклоняются (fail-closed).
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "editor":
		return RoleEditor
	case "watcher":
		return RoleWatcher
	default:
		return RoleWatcher
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleEditor:
		return "editor"
	default:
		return "watcher"
	}
}

// AtLeast — проверка доступа по иерархии: сравнение всегда `>=`,
// никогда на равенство.
func (r Role) AtLeast(min Role) bool {
	return r >= min
}
