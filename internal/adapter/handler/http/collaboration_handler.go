package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	"github.com/wekeepgrowing/semo-todo/internal/usecase"
)

// CollaborationHandler handles invitations and collaborator management
type CollaborationHandler struct {
	collaboration *usecase.CollaborationUseCase
	limits        usecase.PageLimits
	logger        *zap.Logger
}

// NewCollaborationHandler creates a new collaboration handler instance
func NewCollaborationHandler(collaboration *usecase.CollaborationUseCase, limits usecase.PageLimits, logger *zap.Logger) *CollaborationHandler {
	return &CollaborationHandler{
		collaboration: collaboration,
		limits:        limits,
		logger:        logger,
	}
}

// RegisterRoutes mounts the collaboration routes behind the given middleware
func (h *CollaborationHandler) RegisterRoutes(g *echo.Group, m ...echo.MiddlewareFunc) {
	g.GET("/todos/collaborated", h.ListCollaborated, m...)
	g.POST("/todos/:id/invite", h.Invite, m...)
	g.PUT("/todos/:id/confirm", h.Confirm, m...)
	g.GET("/todos/:id/collaborators", h.ListCollaborators, m...)
	g.DELETE("/todos/:id/collaborators/:user_id", h.Remove, m...)
	g.DELETE("/todos/:id/collaboration", h.Leave, m...)
}

// Invite handles POST /api/v1/todos/:id/invite
func (h *CollaborationHandler) Invite(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	todoID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var in entity.CollaboratorInvite
	if err := bindBody(c, &in); err != nil {
		return err
	}

	invite, err := h.collaboration.Invite(ctx, uow, actor, todoID, in)
	if err != nil {
		return err
	}

	h.logger.Info("Collaborator invited",
		zap.String("todo_id", todoID.String()),
		zap.String("user_id", actor.ID.String()))
	return c.JSON(http.StatusCreated, invite)
}

// Confirm handles PUT /api/v1/todos/:id/confirm
func (h *CollaborationHandler) Confirm(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	todoID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var in entity.CollaborationConfirm
	if err := bindBody(c, &in); err != nil {
		return err
	}

	todo, err := h.collaboration.Confirm(ctx, uow, actor, todoID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// ListCollaborators handles GET /api/v1/todos/:id/collaborators
func (h *CollaborationHandler) ListCollaborators(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	todoID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	details, err := h.collaboration.ListCollaborators(ctx, uow, actor, todoID)
	if err != nil {
		return err
	}
	if details == nil {
		details = []*entity.CollaboratorDetail{}
	}
	return c.JSON(http.StatusOK, details)
}

// Remove handles DELETE /api/v1/todos/:id/collaborators/:user_id
func (h *CollaborationHandler) Remove(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	todoID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "user_id")
	if err != nil {
		return err
	}

	if err := h.collaboration.Remove(ctx, uow, actor, todoID, userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Collaborator removed successfully"})
}

// Leave handles DELETE /api/v1/todos/:id/collaboration
func (h *CollaborationHandler) Leave(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}
	todoID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.collaboration.Leave(ctx, uow, actor, todoID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Left collaboration successfully"})
}

// ListCollaborated handles GET /api/v1/todos/collaborated?accepted=true
func (h *CollaborationHandler) ListCollaborated(c echo.Context) error {
	ctx, uow, actor, err := requestScope(c)
	if err != nil {
		return err
	}

	page, err := bindPage(c, h.limits)
	if err != nil {
		return err
	}

	var accepted bool
	if err := echo.QueryParamsBinder(c).Bool("accepted", &accepted).BindError(); err != nil {
		return bindingError(err)
	}

	todos, total, err := h.collaboration.ListCollaboratedTodos(ctx, uow, actor, accepted, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entity.NewPage(todos, page, total))
}
