// Package storage реализует хранилище данных на основе PostgreSQL
// для записей обратной связи и пользователей. Предоставляет методы
// создания, чтения и удаления записей, а также агрегирующие запросы
// для аналитики. Все запросы параметризованы.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища, на которые опирается бизнес-логика.
var (
	// ErrNotFound возвращается, когда запрошенная строка отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists возвращается при нарушении ограничения уникальности.
	ErrAlreadyExists = errors.New("already exists")
)

// Код PostgreSQL для нарушения ограничения уникальности.
const uniqueViolationCode = "23505"

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
