package auth

import (
	fsrepo "folkers/internal/cli/repo/fs"
)

// SaveToken сохраняет bearer-токен после успешного логина.
// Непустой path переопределяет стандартное расположение файла.
func SaveToken(path, token string) error {
	return fsrepo.AuthFSStore{Path: path}.Save(token)
}

// LoadToken возвращает сохранённый токен (пустая строка, если его нет).
func LoadToken(path string) string {
	token, err := fsrepo.AuthFSStore{Path: path}.Load()
	if err != nil {
		return ""
	}
	return token
}
