// Package health реализует HTTP-обработчик проверки работоспособности сервиса.
package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/feedback-hub/internal/http/response"
	"github.com/magabrotheeeer/feedback-hub/internal/lib/sl"
)

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping() error
}

// Handler обрабатывает запросы проверки работоспособности.
type Handler struct {
	log *slog.Logger
	db  Pinger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, db Pinger) *Handler {
	return &Handler{log: log, db: db}
}

// ServeHTTP godoc
// @Summary Проверка работоспособности
// @Tags Service
// @Produce  json
// @Success 200 {object} response.Response "Сервис работает"
// @Failure 500 {object} response.ErrorResponse "Хранилище недоступно"
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(); err != nil {
		h.log.Error("storage is unreachable", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("storage is unreachable"))
		return
	}
	render.JSON(w, r, response.OKWithMessage("ok"))
}
