package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"folkers/internal/model"
)

// SignatureRepository — контракт доступа к подписям записей.
type SignatureRepository interface {
	GetSignature(ctx context.Context, recordID string) (*model.Signature, error)
	// CreateIfAbsent пытается создать подпись. Возвращает created=false,
	// если подпись для record_id уже существует.
	CreateIfAbsent(ctx context.Context, sig *model.Signature) (created bool, err error)
	DeleteSignature(ctx context.Context, recordID string) (*model.Signature, error)
}

type signatureRepo struct {
	db *gorm.DB
}

// NewSignatureRepository создаёт реализацию репозитория для Signature.
func NewSignatureRepository(db *gorm.DB) SignatureRepository {
	return &signatureRepo{db: db}
}

func (r *signatureRepo) GetSignature(ctx context.Context, recordID string) (*model.Signature, error) {
	var sig model.Signature
	if err := r.db.WithContext(ctx).First(&sig, "record_id = ?", recordID).Error; err != nil {
		return nil, err
	}
	return &sig, nil
}

func (r *signatureRepo) CreateIfAbsent(ctx context.Context, sig *model.Signature) (bool, error) {
	if sig.ID == "" {
		sig.ID = uuid.NewString()
	}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_id"}},
		DoNothing: true,
	}).Create(sig)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *signatureRepo) DeleteSignature(ctx context.Context, recordID string) (*model.Signature, error) {
	sig, err := r.GetSignature(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Signature{}, "record_id = ?", recordID).Error; err != nil {
		return nil, err
	}
	return sig, nil
}
