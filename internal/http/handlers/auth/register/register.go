// Package register реализует HTTP-обработчик регистрации пользователей.
//
// В нём определяется структура Request для входных данных, выполняется декодирование JSON,
// проверка и валидация полей, а также делегирование операции регистрации сервису аутентификации.
package register

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/feedback-hub/internal/http/response"
	"github.com/magabrotheeeer/feedback-hub/internal/lib/sl"
	services "github.com/magabrotheeeer/feedback-hub/internal/services/auth"
)

// Request — входные данные для регистрации.
type Request struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// Response — ответ успешной регистрации с идентификатором пользователя.
type Response struct {
	response.Response
	UserID string `json:"userId"`
}

// Handler обрабатывает HTTP-запросы регистрации.
type Handler struct {
	log         *slog.Logger
	authService Service
	validate    *validator.Validate
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, username, password string) (string, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, authService Service) *Handler {
	return &Handler{
		log:         log,
		authService: authService,
		validate:    validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Description Создаёт нового пользователя по имени и паролю. Возвращает идентификатор пользователя.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} Response "Успешная регистрация"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или занятое имя"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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

	uid, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			log.Error("username already taken", slog.String("username", req.Username))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("username already taken"))
			return
		}
		log.Error("registration failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to register user"))
		return
	}

	log.Info("user registered", slog.String("username", req.Username))
	render.JSON(w, r, Response{
		Response: response.OK(),
		UserID:   uid,
	})
}
