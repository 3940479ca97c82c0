package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"folkers/internal/model"
)

// UserRepository — минимальный контракт доступа к User для слоя сервиса.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	// UpdateUser обновляет только переданные поля
	UpdateUser(ctx context.Context, id string, updates map[string]any) (*model.User, error)
	DeleteUser(ctx context.Context, id string) (*model.User, error)
	// SetPublicKey устанавливает публичный ключ; nil очищает его
	SetPublicKey(ctx context.Context, id string, publicKey *string) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) UpdateUser(ctx context.Context, id string, updates map[string]any) (*model.User, error) {
	tx := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetUserByID(ctx, id)
}

func (r *userRepo) DeleteUser(ctx context.Context, id string) (*model.User, error) {
	user, err := r.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) SetPublicKey(ctx context.Context, id string, publicKey *string) error {
	tx := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("public_key", publicKey)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
