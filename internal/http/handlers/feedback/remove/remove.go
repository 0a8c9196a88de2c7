// Package remove реализует HTTP-обработчик удаления записи обратной связи по ID.
// Удаление несуществующей записи возвращает 404, но не является ошибкой хранилища.
package remove

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/feedback-hub/internal/http/response"
	"github.com/magabrotheeeer/feedback-hub/internal/lib/sl"
)

// Handler обрабатывает запросы удаления записи.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс удаления записи.
type Service interface {
	Remove(ctx context.Context, id int) (int, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удаление записи обратной связи
// @Tags Feedback
// @Produce  json
// @Param id path int true "ID записи"
// @Success 200 {object} response.Response "Запись удалена"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /delete-feedback/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.feedback.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	removed, err := h.service.Remove(r.Context(), id)
	if err != nil {
		log.Error("failed to delete feedback", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete feedback"))
		return
	}
	if removed == 0 {
		log.Info("feedback not found", slog.Int("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("feedback not found"))
		return
	}

	log.Info("feedback deleted", slog.Int("id", id))
	render.JSON(w, r, response.OKWithMessage("feedback deleted"))
}
