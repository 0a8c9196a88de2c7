// Package sentimentsummary реализует HTTP-обработчик отчёта о распределении
// тональностей. Метки без записей в отчёт не включаются.
package sentimentsummary

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

// Handler обрабатывает запросы отчёта по тональностям.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс аналитики тональностей.
type Service interface {
	SentimentSummary(ctx context.Context) ([]*models.SentimentCount, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Распределение тональностей
// @Description Возвращает количество записей по каждой встречающейся метке тональности.
// @Tags Analytics
// @Produce  json
// @Success 200 {array} models.SentimentCount "Распределение"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /sentiment-summary [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analytics.sentimentsummary"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	summary, err := h.service.SentimentSummary(r.Context())
	if err != nil {
		log.Error("failed to build sentiment summary", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to build sentiment summary"))
		return
	}

	render.JSON(w, r, summary)
}
