// Package avgsentiment реализует HTTP-обработчик отчёта о средней тональности
// по календарным суткам, по возрастанию даты.
package avgsentiment

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

// Handler обрабатывает запросы отчёта средней тональности по датам.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс аналитики тональности по датам.
type Service interface {
	AverageSentimentOverTime(ctx context.Context) ([]*models.DailySentiment, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Средняя тональность по датам
// @Description Возвращает среднюю тональность за каждые сутки с записями, по возрастанию даты.
// @Tags Analytics
// @Produce  json
// @Success 200 {array} models.DailySentiment "Средняя тональность по датам"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /avg-sentiment-over-time [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analytics.avgsentiment"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	daily, err := h.service.AverageSentimentOverTime(r.Context())
	if err != nil {
		log.Error("failed to build average sentiment report", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to build average sentiment report"))
		return
	}

	render.JSON(w, r, daily)
}
