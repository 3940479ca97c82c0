package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id по умолчанию
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	minSaltLen = 8
)

var ErrBadSalt = errors.New("auth: malformed base64 salt")

// Hasher — односторонний хешер паролей (Argon2id) с общесерверной солью.
// Ошибка конфигурации соли фатальна на старте, а не во время запроса.
type Hasher struct {
	salt []byte
}

// NewHasher строит хешер из base64-кодированной соли.
func NewHasher(base64Salt string) (*Hasher, error) {
	salt, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(base64Salt, "="))
	if err != nil {
		return nil, ErrBadSalt
	}
	if len(salt) < minSaltLen {
		return nil, ErrBadSalt
	}
	return &Hasher{salt: salt}, nil
}

// Hash возвращает хеш пароля в PHC-формате с вшитыми параметрами и солью.
func (h *Hasher) Hash(password string) string {
	key := argon2.IDKey([]byte(password), h.salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(h.salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

// Verify сверяет пароль с сохранённым хешем. Повреждённый или чужой
// формат хеша даёт false, а не ошибку: параметры и соль берутся из
// самого хеша, сравнение — за константное время.
func (h *Hasher) Verify(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false
	}
	// параметры вне допустимого диапазона argon2 — такой же битый хеш,
	// как и нечитаемый: false, а не паника внутри IDKey
	if time < 1 || threads < 1 || memory < 8*uint32(threads) {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
