// Package create реализует HTTP-обработчик приёма записи обратной связи.
//
// Текст записи классифицируется по тональности на стороне сервиса,
// обязательны только текст и роль отправителя.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/feedback-hub/internal/http/response"
	"github.com/magabrotheeeer/feedback-hub/internal/lib/sl"
	"github.com/magabrotheeeer/feedback-hub/internal/models"
)

// Handler обрабатывает HTTP-запросы приёма обратной связи.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики приёма обратной связи.
type Service interface {
	Create(ctx context.Context, entry models.DummyFeedback) (int, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Приём записи обратной связи
// @Description Сохраняет запись, классифицируя её тональность. Обязательны текст и роль.
// @Tags Feedback
// @Accept  json
// @Produce  json
// @Param request body models.DummyFeedback true "Запись обратной связи"
// @Success 200 {object} response.Response "Запись сохранена"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /feedback [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.feedback.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyFeedback
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to save feedback", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save feedback"))
		return
	}

	log.Info("feedback saved", slog.Int("id", id))
	render.JSON(w, r, response.OK())
}
