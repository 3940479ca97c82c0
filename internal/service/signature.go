package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"folkers/internal/auth"
	"folkers/internal/model"
	"folkers/internal/repo"
	"folkers/internal/signing"
)

// SignatureService управляет подписями записей досье.
type SignatureService struct {
	signatures repo.SignatureRepository
	persons    repo.PersonRepository
}

func NewSignatureService(signatures repo.SignatureRepository, persons repo.PersonRepository) *SignatureService {
	return &SignatureService{signatures: signatures, persons: persons}
}

// Sign подписывает запись приватным ключом подписанта и сохраняет
// подпись вместе с его публичным ключом. Вторая подпись той же записи
// отклоняется до явного unsign.
func (s *SignatureService) Sign(ctx context.Context, recordID, privateB64 string, signer auth.AuthUser) (*model.Signature, error) {
	person, err := s.persons.GetPersonByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.signatures.GetSignature(ctx, recordID); err == nil {
		return nil, ErrConflict
	}

	rs, err := signing.Sign(person, privateB64)
	if err != nil {
		// ошибки декодирования ключа — ошибки входа вызывающего
		return nil, err
	}

	sig := &model.Signature{
		RecordID: rs.RecordID,
		Base64:   rs.Base64,
		PubKey:   rs.PubKey,
		SignedBy: signer.Username,
	}

	created, err := s.signatures.CreateIfAbsent(ctx, sig)
	if err != nil {
		return nil, err
	}
	if !created {
		// гонка с параллельным подписанием — существующая подпись побеждает
		return nil, ErrConflict
	}

	return sig, nil
}

// Unsign удаляет подпись записи.
func (s *SignatureService) Unsign(ctx context.Context, recordID string) (*model.Signature, error) {
	if _, err := s.persons.GetPersonByID(ctx, recordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sig, err := s.signatures.DeleteSignature(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sig, nil
}

// Verify пересчитывает дайджест по текущему содержимому записи и
// сверяет его с сохранённой подписью.
func (s *SignatureService) Verify(ctx context.Context, recordID string) (*model.Signature, bool, error) {
	person, err := s.persons.GetPersonByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	sig, err := s.signatures.GetSignature(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	ok, err := signing.Verify(person, sig.Base64, sig.PubKey)
	if err != nil {
		return nil, false, err
	}
	return sig, ok, nil
}
