// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи и хэш пароля.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    `json:"user_id"`  // Уникальный идентификатор пользователя
	Username     string    `json:"username"` // Имя пользователя (уникальное)
	PasswordHash string    `json:"-"`        // Хэш пароля, никогда не сериализуется в ответы
	CreatedAt    time.Time `json:"created_at"`
}
