package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	"github.com/wekeepgrowing/semo-todo/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/semo-todo/internal/usecase"
	apperrors "github.com/wekeepgrowing/semo-todo/pkg/errors"
)

// UserHandler handles registration and the caller's own profile
type UserHandler struct {
	users  *usecase.UserUseCase
	logger *zap.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(users *usecase.UserUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// RegisterRoutes mounts the user routes. Registration only needs public middleware.
func (h *UserHandler) RegisterRoutes(g *echo.Group, public, protected []echo.MiddlewareFunc) {
	g.POST("/users", h.Register, public...)
	g.GET("/users/me", h.GetMe, protected...)
	g.PATCH("/users/me", h.UpdateMe, protected...)
	g.PATCH("/users/me/password", h.UpdatePassword, protected...)
}

// Register handles POST /api/v1/users
func (h *UserHandler) Register(c echo.Context) error {
	uow, err := middleware.UnitOfWorkFromContext(c)
	if err != nil {
		return apperrors.Wrap(err, "request is not bound to a transaction")
	}

	var in entity.UserRegister
	if err := bindBody(c, &in); err != nil {
		return err
	}

	user, err := h.users.Register(c.Request().Context(), uow, in)
	if err != nil {
		return err
	}

	h.logger.Info("User registered", zap.String("user_id", user.ID.String()))
	return c.JSON(http.StatusCreated, user)
}

// GetMe handles GET /api/v1/users/me
func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe handles PATCH /api/v1/users/me
func (h *UserHandler) UpdateMe(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}

	var in entity.UserUpdate
	if err := bindBody(c, &in); err != nil {
		return err
	}

	user, err := h.users.UpdateProfile(ctx, uow, actor, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdatePassword handles PATCH /api/v1/users/me/password
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}

	var in entity.PasswordUpdate
	if err := bindBody(c, &in); err != nil {
		return err
	}

	if err := h.users.UpdatePassword(ctx, uow, actor, in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Password updated successfully"})
}
