package signing

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"folkers/internal/model"
)

// Ошибки декодирования входных данных. Несовпадение подписи ошибкой
// не является — Verify в этом случае возвращает false.
var (
	ErrBadPrivateKey = errors.New("signing: malformed private key")
	ErrBadPublicKey  = errors.New("signing: malformed public key")
	ErrBadSignature  = errors.New("signing: malformed signature")
)

// RecordSignature — результат подписания записи.
type RecordSignature struct {
	RecordID string
	Base64   string
	PubKey   string
}

// canonicalRecord — канонический снимок содержимого записи.
// Порядок и набор полей фиксированы: любое изменение любого поля
// после подписания детерминированно инвалидирует подпись.
type canonicalRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Surname    string    `json:"surname"`
	Patronymic string    `json:"patronymic"`
	Birthday   time.Time `json:"birthday"`
	City       string    `json:"city"`
	Address    string    `json:"intended_address"`
	Summary    string    `json:"summary"`
	Past       string    `json:"past"`
	TraitsGood string    `json:"traits_good"`
	TraitsBad  string    `json:"traits_bad"`
	Avatar     *string   `json:"avatar"`
	Media      []string  `json:"media"`
	Author     string    `json:"author"`
}

// digest считает sha256 канонической сериализации записи.
// Подписывается именно дайджест: размер подписи и стоимость проверки
// не зависят от размера записи.
func digest(person *model.Person) ([]byte, error) {
	snapshot := canonicalRecord{
		ID:         person.ID,
		Name:       person.Name,
		Surname:    person.Surname,
		Patronymic: person.Patronymic,
		Birthday:   person.Birthday,
		City:       person.City,
		Address:    person.IntendedAddress,
		Summary:    person.Summary,
		Past:       person.Past,
		TraitsGood: person.TraitsGood,
		TraitsBad:  person.TraitsBad,
		Avatar:     person.Avatar,
		Media:      person.Media,
		Author:     person.Author,
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)
	return sum[:], nil
}

// GenerateKeypair создаёт новую пару ключей ed25519.
// Приватный ключ (base64 от 32-байтного seed) возвращается один раз
// и нигде не сохраняется; хранится только публичный ключ.
func GenerateKeypair() (privateB64, publicB64 string, err error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", "", err
	}

	return base64.StdEncoding.EncodeToString(priv.Seed()),
		base64.StdEncoding.EncodeToString(pub), nil
}

// Sign подписывает дайджест записи приватным ключом.
func Sign(person *model.Person, privateB64 string) (*RecordSignature, error) {
	seed, err := base64.StdEncoding.DecodeString(privateB64)
	if err != nil || len(seed) != ed25519.SeedSize {
		return nil, ErrBadPrivateKey
	}
	key := ed25519.NewKeyFromSeed(seed)

	sum, err := digest(person)
	if err != nil {
		return nil, err
	}

	signature := ed25519.Sign(key, sum)
	pub := key.Public().(ed25519.PublicKey)

	return &RecordSignature{
		RecordID: person.ID,
		Base64:   base64.StdEncoding.EncodeToString(signature),
		PubKey:   base64.StdEncoding.EncodeToString(pub),
	}, nil
}

// Verify пересчитывает дайджест по текущему содержимому записи и
// сверяет подпись. Любое расхождение — false; ошибкой считаются
// только некорректные входные данные.
func Verify(person *model.Person, signatureB64, publicB64 string) (bool, error) {
	signature, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil || len(signature) != ed25519.SignatureSize {
		return false, ErrBadSignature
	}

	pub, err := base64.StdEncoding.DecodeString(publicB64)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		return false, ErrBadPublicKey
	}

	sum, err := digest(person)
	if err != nil {
		return false, err
	}

	return ed25519.Verify(ed25519.PublicKey(pub), sum, signature), nil
}
