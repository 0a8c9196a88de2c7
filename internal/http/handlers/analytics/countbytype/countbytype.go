// Package countbytype реализует HTTP-обработчик отчёта о количестве записей
// по категориям. Категория группируется по исходной строке, включая пустую.
package countbytype

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

// Handler обрабатывает запросы отчёта по категориям.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс аналитики по категориям.
type Service interface {
	CountByType(ctx context.Context) ([]*models.TypeCount, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Количество записей по категориям
// @Tags Analytics
// @Produce  json
// @Success 200 {array} models.TypeCount "Количество по категориям"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /feedback-count-by-type [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analytics.countbytype"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	counts, err := h.service.CountByType(r.Context())
	if err != nil {
		log.Error("failed to count feedback by type", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to count feedback by type"))
		return
	}

	render.JSON(w, r, counts)
}
