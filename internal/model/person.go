package model

import "time"

// Person — запись досье. Сериализация содержимого для подписи
// выполняется отдельным каноническим снимком (internal/signing).
type Person struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	Name       string `gorm:"not null;uniqueIndex:idx_person_full_name,priority:2" json:"name"`
	Surname    string `gorm:"not null;uniqueIndex:idx_person_full_name,priority:1" json:"surname"`
	Patronymic string `gorm:"not null;uniqueIndex:idx_person_full_name,priority:3" json:"patronymic"`

	Birthday        time.Time `json:"birthday"`
	City            string    `json:"city"`
	IntendedAddress string    `json:"intended_address"`

	Summary    string `json:"summary"`
	Past       string `json:"past"`
	TraitsGood string `json:"traits_good"`
	TraitsBad  string `json:"traits_bad"`

	// Avatar и Media хранят хеши объектов из медиа-хранилища
	Avatar *string  `json:"avatar,omitempty"`
	Media  []string `gorm:"serializer:json" json:"media"`

	Author string `gorm:"not null;index" json:"author"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
