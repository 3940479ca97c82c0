package model

import "time"

// User — учётная запись с ролью доступа.
// Password всегда содержит только Argon2-хеш, открытый пароль не хранится.
type User struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Username string `gorm:"not null;uniqueIndex" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null" json:"role"`

	// Публичный ключ подписи (base64). Устанавливается только явной
	// операцией keygen и сбрасывается только явным reset.
	PublicKey *string `json:"public_key,omitempty"`

	CreatedBy string    `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
