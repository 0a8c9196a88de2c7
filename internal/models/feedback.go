// Package models содержит доменные структуры обратной связи,
// а также вспомогательные типы для приёма данных из JSON-запросов
// и строки агрегированных отчётов аналитики.
package models

import "time"

// Роли, допустимые для записи обратной связи.
const (
	RoleGuest = "guest"
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole сообщает, входит ли роль в перечень допустимых значений.
func ValidRole(role string) bool {
	return role == RoleGuest || role == RoleUser || role == RoleAdmin
}

// Feedback представляет собой сохранённую запись обратной связи.
// UserUID может быть nil — гостевые записи не привязаны к пользователю.
// Username и FeedbackType денормализованы и могут быть пустыми строками.
type Feedback struct {
	ID             int       `json:"id"`
	UserUID        *string   `json:"user_id"`
	Username       string    `json:"username"`
	Role           string    `json:"role"`
	FeedbackType   string    `json:"feedback_type"`
	FeedbackText   string    `json:"feedback_text"`
	SentimentLabel string    `json:"sentiment_label"`
	SentimentScore float64   `json:"sentiment_score"`
	CreatedAt      time.Time `json:"created_at"`
}

// DummyFeedback используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Feedback. Отсутствующие необязательные
// поля остаются пустыми строками, это поведение сохраняется и в хранилище.
type DummyFeedback struct {
	UserUID      *string `json:"user_id"`
	Username     string  `json:"username"`
	Role         string  `json:"role" validate:"required,oneof=guest user admin"`
	FeedbackType string  `json:"feedback_type"`
	FeedbackText string  `json:"feedback_text" validate:"required"`
}

// SentimentCount — строка отчёта о распределении тональностей.
// Метки с нулевым количеством записей в отчёт не попадают.
type SentimentCount struct {
	SentimentLabel string `json:"sentiment_label"`
	Count          int    `json:"count"`
}

// TypeCount — строка отчёта о количестве записей по категориям.
// Категория группируется по исходной строке, включая пустую.
type TypeCount struct {
	FeedbackType string `json:"feedback_type"`
	Count        int    `json:"count"`
}

// DailySentiment — средняя тональность за календарные сутки.
type DailySentiment struct {
	Date     string  `json:"date"`
	AvgScore float64 `json:"avg_score"`
}

// NegativeFeedbackAlert — сообщение для очереди уведомлений,
// публикуется при приёме записи с отрицательной тональностью.
type NegativeFeedbackAlert struct {
	FeedbackID     int     `json:"feedback_id"`
	Username       string  `json:"username"`
	FeedbackType   string  `json:"feedback_type"`
	FeedbackText   string  `json:"feedback_text"`
	SentimentScore float64 `json:"sentiment_score"`
}
