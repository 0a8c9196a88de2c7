// Package list реализует HTTP-обработчик выдачи всех записей обратной связи.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/feedback-hub/internal/http/response"
	"github.com/magabrotheeeer/feedback-hub/internal/lib/sl"
	"github.com/magabrotheeeer/feedback-hub/internal/models"
)

// Handler обрабатывает запросы списка всех записей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс выдачи записей обратной связи.
type Service interface {
	ListAll(ctx context.Context) ([]*models.Feedback, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Все записи обратной связи
// @Description Возвращает массив всех записей, новые первыми.
// @Tags Feedback
// @Produce  json
// @Success 200 {array} models.Feedback "Список записей"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /all-feedback [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.feedback.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	entries, err := h.service.ListAll(r.Context())
	if err != nil {
		log.Error("failed to list feedback", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list feedback"))
		return
	}

	log.Info("feedback listed", slog.Int("count", len(entries)))
	render.JSON(w, r, entries)
}
