package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// AuthFSStore — файловое хранилище bearer-токена для CLI.
// Path переопределяет путь к файлу токена; по умолчанию —
// каталог конфигурации пользователя.
type AuthFSStore struct {
	Path string
}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "folkers")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func (s AuthFSStore) tokenPath() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "auth_token"), nil
}

// Save сохраняет auth-токен в файл.
func (s AuthFSStore) Save(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load читает auth-токен из файла.
func (s AuthFSStore) Load() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", errors.New("empty token file")
	}
	return token, nil
}
