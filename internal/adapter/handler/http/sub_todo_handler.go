package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	"github.com/wekeepgrowing/semo-todo/internal/usecase"
)

// SubTodoHandler handles sub-todos nested under a todo
type SubTodoHandler struct {
	subTodos *usecase.SubTodoUseCase
	limits   usecase.PageLimits
	logger   *zap.Logger
}

// NewSubTodoHandler creates a new sub-todo handler instance
func NewSubTodoHandler(subTodos *usecase.SubTodoUseCase, limits usecase.PageLimits, logger *zap.Logger) *SubTodoHandler {
	return &SubTodoHandler{subTodos: subTodos, limits: limits, logger: logger}
}

// RegisterRoutes mounts the sub-todo routes behind the given middleware
func (h *SubTodoHandler) RegisterRoutes(g *echo.Group, m ...echo.MiddlewareFunc) {
	g.GET("/todos/:id/subtodos", h.List, m...)
	g.POST("/todos/:id/subtodos", h.Create, m...)
	g.GET("/todos/:id/subtodos/:sub_id", h.Get, m...)
	g.PUT("/todos/:id/subtodos/:sub_id", h.Update, m...)
	g.DELETE("/todos/:id/subtodos/:sub_id", h.Delete, m...)
}

// List handles GET /api/v1/todos/:id/subtodos
func (h *SubTodoHandler) List(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	todoID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	page, err := bindPage(c, h.limits)
	if err != nil {
		return err
	}

	subs, total, err := h.subTodos.List(ctx, uow, actor, todoID, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entity.NewPage(subs, page, total))
}

// Create handles POST /api/v1/todos/:id/subtodos
func (h *SubTodoHandler) Create(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	todoID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var in entity.SubTodoCreate
	if err := bindBody(c, &in); err != nil {
		return err
	}

	sub, err := h.subTodos.Create(ctx, uow, actor, todoID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sub)
}

// Get handles GET /api/v1/todos/:id/subtodos/:sub_id
func (h *SubTodoHandler) Get(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	todoID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "sub_id")
	if err != nil {
		return err
	}

	sub, err := h.subTodos.Get(ctx, uow, actor, todoID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sub)
}

// Update handles PUT /api/v1/todos/:id/subtodos/:sub_id
func (h *SubTodoHandler) Update(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	todoID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "sub_id")
	if err != nil {
		return err
	}

	var in entity.SubTodoUpdate
	if err := bindBody(c, &in); err != nil {
		return err
	}

	sub, err := h.subTodos.Update(ctx, uow, actor, todoID, id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sub)
}

// Delete handles DELETE /api/v1/todos/:id/subtodos/:sub_id
func (h *SubTodoHandler) Delete(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	todoID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "sub_id")
	if err != nil {
		return err
	}

	if err := h.subTodos.Delete(ctx, uow, actor, todoID, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Sub-todo deleted successfully"})
}
