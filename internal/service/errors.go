package service

import "errors"

// Сентинельные ошибки уровня сервисов. Хендлеры сопоставляют их
// с HTTP-статусами через errors.Is.
var (
	ErrUnauthorized = errors.New("service: unauthorized")
	ErrForbidden    = errors.New("service: forbidden")
	ErrNotFound     = errors.New("service: not found")
	ErrConflict     = errors.New("service: conflict")
)
