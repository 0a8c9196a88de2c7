// Package read реализует HTTP-обработчик чтения одной записи обратной связи по ID.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/feedback-hub/internal/http/response"
	"github.com/magabrotheeeer/feedback-hub/internal/lib/sl"
	"github.com/magabrotheeeer/feedback-hub/internal/models"
	"github.com/magabrotheeeer/feedback-hub/internal/storage"
)

// Handler обрабатывает запросы чтения записи по ID.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс чтения записи.
type Service interface {
	Read(ctx context.Context, id int) (*models.Feedback, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Запись обратной связи по ID
// @Tags Feedback
// @Produce  json
// @Param id path int true "ID записи"
// @Success 200 {object} models.Feedback "Запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /feedback/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.feedback.read"

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

	entry, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("feedback not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("feedback not found"))
			return
		}
		log.Error("failed to read feedback", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read feedback"))
		return
	}

	render.JSON(w, r, entry)
}
