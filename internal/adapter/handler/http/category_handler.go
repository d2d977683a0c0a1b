package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	"github.com/wekeepgrowing/semo-todo/internal/usecase"
)

// CategoryHandler handles the caller's categories
type CategoryHandler struct {
	categories *usecase.CategoryUseCase
	limits     usecase.PageLimits
	logger     *zap.Logger
}

// NewCategoryHandler creates a new category handler instance
func NewCategoryHandler(categories *usecase.CategoryUseCase, limits usecase.PageLimits, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, limits: limits, logger: logger}
}

// RegisterRoutes mounts the category routes behind the given middleware
func (h *CategoryHandler) RegisterRoutes(g *echo.Group, m ...echo.MiddlewareFunc) {
	g.GET("/categories", h.List, m...)
	g.POST("/categories", h.Create, m...)
	g.DELETE("/categories", h.DeleteAll, m...)
	g.GET("/categories/:id", h.Get, m...)
	g.PUT("/categories/:id", h.Update, m...)
	g.DELETE("/categories/:id", h.Delete, m...)
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	page, err := bindPage(c, h.limits)
	if err != nil {
		return err
	}

	categories, total, err := h.categories.List(ctx, uow, actor, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entity.NewPage(categories, page, total))
}

// Create handles POST /api/v1/categories
func (h *CategoryHandler) Create(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}

	var in entity.CategoryCreate
	if err := bindBody(c, &in); err != nil {
		return err
	}

	category, err := h.categories.Create(ctx, uow, actor, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// Get handles GET /api/v1/categories/:id
func (h *CategoryHandler) Get(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categories.Get(ctx, uow, actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Update handles PUT /api/v1/categories/:id
func (h *CategoryHandler) Update(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var in entity.CategoryUpdate
	if err := bindBody(c, &in); err != nil {
		return err
	}

	category, err := h.categories.Update(ctx, uow, actor, id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /api/v1/categories/:id
func (h *CategoryHandler) Delete(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.categories.Delete(ctx, uow, actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Category deleted successfully"})
}

// DeleteAll handles DELETE /api/v1/categories
func (h *CategoryHandler) DeleteAll(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}

	n, err := h.categories.DeleteAll(ctx, uow, actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, DeletedResponse{Message: "Categories deleted successfully", Deleted: n})
}
