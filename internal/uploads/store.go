package uploads

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrTooLarge = errors.New("uploads: payload exceeds size limit")
	ErrNotFound = errors.New("uploads: object not found")
)

const copyChunkSize = 32 * 1024

// Store — контентно-адресуемое хранилище бинарных объектов.
// Имя файла выводится из sha256-хеша содержимого: два одинаковых
// объекта всегда схлопываются в один файл.
type Store struct {
	dir     string
	maxSize int64
}

// NewStore создаёт каталог хранилища, если его ещё нет.
func NewStore(dir string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &Store{dir: dir, maxSize: maxSize}, nil
}

// Save пишет поток во временный файл, параллельно считая хеш.
// Превышение лимита или обрыв потока удаляют временный файл —
// постоянный файл появляется только после успешного завершения.
func (s *Store) Save(ctx context.Context, r io.Reader, contentType string) (string, error) {
	ext := extensionFor(contentType)

	tmpPath := filepath.Join(s.dir, fmt.Sprintf("tmp_upload_%s.%s", uuid.NewString(), ext))
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return "", err
	}

	hasher := sha256.New()
	var total int64

	buf := make([]byte, copyChunkSize)
	for {
		if err := ctx.Err(); err != nil {
			s.discard(tmp, tmpPath)
			return "", err
		}

		n, readErr := r.Read(buf)
		if n > 0 {
			total += int64(n)
			if total > s.maxSize {
				s.discard(tmp, tmpPath)
				return "", ErrTooLarge
			}
			hasher.Write(buf[:n])
			if _, err := tmp.Write(buf[:n]); err != nil {
				s.discard(tmp, tmpPath)
				return "", err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			s.discard(tmp, tmpPath)
			return "", readErr
		}
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}

	hash := hex.EncodeToString(hasher.Sum(nil))
	finalPath := filepath.Join(s.dir, hash+"."+ext)

	// Проверка существования и rename не атомарны. Параллельная загрузка
	// того же содержимого целится в то же самое имя, файлы создаются
	// только один раз и не перезаписываются, поэтому гонка безвредна.
	if _, err := os.Stat(finalPath); err == nil {
		_ = os.Remove(tmpPath)
		return hash, nil
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}

	return hash, nil
}

// Get ищет объект по префиксу хеша линейным проходом по каталогу
// и возвращает содержимое вместе с типом, выведенным из расширения.
func (s *Store) Get(ctx context.Context, hashPrefix string) ([]byte, string, error) {
	if hashPrefix == "" {
		return nil, "", ErrNotFound
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, "", err
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}

		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "tmp_upload_") {
			continue
		}
		if !strings.HasPrefix(name, hashPrefix) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return nil, "", err
		}
		return content, contentTypeFor(name), nil
	}

	return nil, "", ErrNotFound
}

func (s *Store) discard(tmp *os.File, tmpPath string) {
	_ = tmp.Close()
	_ = os.Remove(tmpPath)
}

// extensionFor выводит расширение файла из заявленного media type.
// Неизвестные типы получают общее bin.
func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	case "image/svg+xml":
		return "svg"
	default:
		return "bin"
	}
}

func contentTypeFor(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".jpg"), strings.HasSuffix(filename, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(filename, ".png"):
		return "image/png"
	case strings.HasSuffix(filename, ".gif"):
		return "image/gif"
	case strings.HasSuffix(filename, ".webp"):
		return "image/webp"
	case strings.HasSuffix(filename, ".svg"):
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
