// Package me реализует HTTP-обработчик сведений о текущем пользователе.
// Данные берутся из контекста запроса, заполненного JWT middleware.
package me

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/feedback-hub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/feedback-hub/internal/http/response"
)

// Response — сведения об аутентифицированном пользователе.
type Response struct {
	response.Response
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Handler обрабатывает запросы сведений о текущем пользователе.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Текущий пользователь
// @Description Возвращает имя и идентификатор пользователя из JWT.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} Response "Сведения о пользователе"
// @Failure 401 {object} response.ErrorResponse "Нет или неверный токен"
// @Router /me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username, ok := r.Context().Value(middlewarectx.User).(string)
	uid, okUID := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || !okUID {
		log.Error("user is missing from request context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	render.JSON(w, r, Response{
		Response: response.OK(),
		UserID:   uid,
		Username: username,
	})
}
