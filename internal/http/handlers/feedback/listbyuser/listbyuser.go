// Package listbyuser реализует HTTP-обработчик выдачи записей обратной связи
// конкретного пользователя. Для неизвестного пользователя возвращается
// пустой массив, а не ошибка.
package listbyuser

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/feedback-hub/internal/http/response"
	"github.com/magabrotheeeer/feedback-hub/internal/lib/sl"
	"github.com/magabrotheeeer/feedback-hub/internal/models"
)

// Handler обрабатывает запросы списка записей пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс выдачи записей пользователя.
type Service interface {
	ListByUser(ctx context.Context, userUID string) ([]*models.Feedback, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Записи пользователя
// @Description Возвращает массив записей пользователя, новые первыми.
// @Tags Feedback
// @Produce  json
// @Param userId path string true "Идентификатор пользователя"
// @Success 200 {array} models.Feedback "Список записей"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /feedback/user/{userId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.feedback.listbyuser"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID := chi.URLParam(r, "userId")

	entries, err := h.service.ListByUser(r.Context(), userUID)
	if err != nil {
		log.Error("failed to list user feedback", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list feedback"))
		return
	}

	log.Info("user feedback listed", slog.String("user_uid", userUID), slog.Int("count", len(entries)))
	render.JSON(w, r, entries)
}
