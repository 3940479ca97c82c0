package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"folkers/internal/auth"
	"folkers/internal/model"
	"folkers/internal/repo"
	"folkers/internal/signing"
)

// UserService инкапсулирует аутентификацию и администрирование
// учётных записей.
type UserService struct {
	repo   repo.UserRepository
	hasher *auth.Hasher
	tokens *auth.TokenService
}

func NewUserService(r repo.UserRepository, hasher *auth.Hasher, tokens *auth.TokenService) *UserService {
	return &UserService{repo: r, hasher: hasher, tokens: tokens}
}

// UserInput — данные создания/обновления пользователя.
type UserInput struct {
	Username string
	Password string
	Role     string
}

// Login проверяет учётные данные и выпускает токен сессии.
// Несуществующий пользователь и неверный пароль неразличимы снаружи.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", ErrUnauthorized
	}

	if !s.hasher.Verify(password, user.Password) {
		return "", ErrUnauthorized
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}

	return token, nil
}

// CreateUser создаёт пользователя. Пароль хешируется, роль нормализуется
// через fail-closed разбор, дубликат имени даёт ErrConflict.
func (s *UserService) CreateUser(ctx context.Context, in UserInput, createdBy string) (*model.User, error) {
	if existing, err := s.repo.GetUserByUsername(ctx, in.Username); err == nil && existing != nil {
		return nil, ErrConflict
	}

	user := &model.User{
		Username:  in.Username,
		Password:  s.hasher.Hash(in.Password),
		Role:      auth.ParseRole(in.Role).String(),
		CreatedBy: createdBy,
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return created, nil
}

// GetUser возвращает пользователя по имени.
func (s *UserService) GetUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

// UpdateUser обновляет имя, пароль и/или роль пользователя.
// Пустые поля не трогаются; публичный ключ этим путём не изменяется.
func (s *UserService) UpdateUser(ctx context.Context, username string, in UserInput) (*model.User, error) {
	user, err := s.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Username != "" && in.Username != user.Username {
		if existing, err := s.repo.GetUserByUsername(ctx, in.Username); err == nil && existing != nil {
			return nil, ErrConflict
		}
		updates["username"] = in.Username
	}
	if in.Password != "" {
		updates["password"] = s.hasher.Hash(in.Password)
	}
	if in.Role != "" {
		updates["role"] = auth.ParseRole(in.Role).String()
	}
	if len(updates) == 0 {
		return user, nil
	}

	updated, err := s.repo.UpdateUser(ctx, user.ID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

// DeleteUser удаляет пользователя. Подписи и записи, ссылающиеся на
// него, намеренно не зачищаются.
func (s *UserService) DeleteUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	deleted, err := s.repo.DeleteUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return deleted, nil
}

// EnsureStaticAdmin создаёт статического администратора на старте
// процесса. Существующая учётка не пересоздаётся.
func (s *UserService) EnsureStaticAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return errors.New("static admin credentials are not configured")
	}

	if _, err := s.repo.GetUserByUsername(ctx, username); err == nil {
		return nil
	}

	_, err := s.CreateUser(ctx, UserInput{
		Username: username,
		Password: password,
		Role:     auth.RoleAdmin.String(),
	}, "system")
	return err
}

// GenerateKeypair создаёт пару ключей подписи для пользователя.
// Приватный ключ возвращается один раз; сохраняется только публичный.
// Повторный вызов до явного сброса отклоняется, чтобы исключить
// тихую ротацию ключа под уже выданными подписями.
func (s *UserService) GenerateKeypair(ctx context.Context, userID string) (string, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	if user.PublicKey != nil && *user.PublicKey != "" {
		return "", ErrConflict
	}

	priv, pub, err := signing.GenerateKeypair()
	if err != nil {
		return "", fmt.Errorf("generating keypair: %w", err)
	}

	if err := s.repo.SetPublicKey(ctx, userID, &pub); err != nil {
		return "", err
	}

	return priv, nil
}

// ResetKeypair сбрасывает сохранённый публичный ключ пользователя.
func (s *UserService) ResetKeypair(ctx context.Context, userID string) error {
	if err := s.repo.SetPublicKey(ctx, userID, nil); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
