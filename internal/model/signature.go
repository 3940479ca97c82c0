package model

// Signature — криптографическая подпись записи досье.
// На одну запись допускается не более одной действующей подписи.
type Signature struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	RecordID string `gorm:"not null;uniqueIndex" json:"record_id"`

	// Base64 — ed25519-подпись, PubKey — публичный ключ подписанта
	Base64 string `gorm:"not null" json:"base64"`
	PubKey string `gorm:"not null" json:"pubkey"`

	SignedBy string `gorm:"not null" json:"signed_by"`
}
