package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	"github.com/wekeepgrowing/semo-todo/internal/usecase"
)

// TodoHandler handles todo CRUD and listing
type TodoHandler struct {
	todos  *usecase.TodoUseCase
	access *usecase.AccessUseCase
	limits usecase.PageLimits
	logger *zap.Logger
}

// NewTodoHandler creates a new todo handler instance
func NewTodoHandler(todos *usecase.TodoUseCase, access *usecase.AccessUseCase, limits usecase.PageLimits, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{
		todos:  todos,
		access: access,
		limits: limits,
		logger: logger,
	}
}

// RegisterRoutes mounts the todo routes behind the given middleware
func (h *TodoHandler) RegisterRoutes(g *echo.Group, m ...echo.MiddlewareFunc) {
	g.GET("/todos", h.List, m...)
	g.POST("/todos", h.Create, m...)
	g.GET("/todos/:id", h.Get, m...)
	g.PUT("/todos/:id", h.Update, m...)
	g.DELETE("/todos/:id", h.Delete, m...)
	g.GET("/todos/:id/access", h.CheckAccess, m...)
}

// List handles GET /api/v1/todos?page=&limit=&search=&case_sensitive=
func (h *TodoHandler) List(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}

	page, err := bindPage(c, h.limits)
	if err != nil {
		return err
	}

	var filter entity.TodoFilter
	err = echo.QueryParamsBinder(c).
		String("search", &filter.Search).
		Bool("case_sensitive", &filter.CaseSensitive).
		BindError()
	if err != nil {
		return bindingError(err)
	}

	todos, total, err := h.todos.List(ctx, uow, actor, page, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entity.NewPage(todos, page, total))
}

// Create handles POST /api/v1/todos
func (h *TodoHandler) Create(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}

	var in entity.TodoCreate
	if err := bindBody(c, &in); err != nil {
		return err
	}

	todo, err := h.todos.Create(ctx, uow, actor, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, todo)
}

// Get handles GET /api/v1/todos/:id
func (h *TodoHandler) Get(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	todo, err := h.todos.Get(ctx, uow, actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Update handles PUT /api/v1/todos/:id
func (h *TodoHandler) Update(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var in entity.TodoUpdate
	if err := bindBody(c, &in); err != nil {
		return err
	}

	todo, err := h.todos.Update(ctx, uow, actor, id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Delete handles DELETE /api/v1/todos/:id
func (h *TodoHandler) Delete(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.todos.Delete(ctx, uow, actor, id); err != nil {
		return err
	}

	h.logger.Info("Todo deleted",
		zap.String("todo_id", id.String()),
		zap.String("user_id", actor.ID.String()))
	return c.JSON(http.StatusOK, MessageResponse{Message: "Todo deleted successfully"})
}

// CheckAccess handles GET /api/v1/todos/:id/access
func (h *TodoHandler) CheckAccess(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	ok, err := h.access.CheckAccess(ctx, uow, actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, AccessResponse{TodoID: id, HasAccess: ok})
}
