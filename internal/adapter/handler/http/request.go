package http

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/semo-todo/internal/domain/errors"
	"github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	"github.com/wekeepgrowing/semo-todo/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/semo-todo/internal/usecase"
	apperrors "github.com/wekeepgrowing/semo-todo/pkg/errors"
)

// MessageResponse is returned by endpoints that have no resource to show.
type MessageResponse struct {
	Message string `json:"message"`
}

// DeletedResponse reports how many rows a bulk delete removed.
type DeletedResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// AccessResponse answers whether the caller is related to a todo.
type AccessResponse struct {
	TodoID    uuid.UUID `json:"todo_id"`
	HasAccess bool      `json:"has_access"`
}

// requestScope returns what every authenticated handler needs: the request
// context, the unit of work opened by the transaction middleware and the actor.
func requestScope(c echo.Context) (context.Context, repository.UnitOfWork, *entity.User, error) {
	uow, err := middleware.UnitOfWorkFromContext(c)
	if err != nil {
		return nil, nil, nil, apperrors.Wrap(err, "request is not bound to a transaction")
	}
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return nil, nil, nil, err
	}
	return c.Request().Context(), uow, user, nil
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

// bindBody decodes the JSON body only; path and query values never leak into payloads.
func bindBody(c echo.Context, dst interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return domainerrors.NewValidationError("body", "must be a valid JSON object")
	}
	return nil
}

func bindPage(c echo.Context, limits usecase.PageLimits) (entity.PaginationParams, error) {
	var page entity.PaginationParams
	err := echo.QueryParamsBinder(c).
		Int("page", &page.Page).
		Int("limit", &page.Limit).
		BindError()
	if err != nil {
		return page, bindingError(err)
	}
	return limits.Apply(page), nil
}

func bindingError(err error) error {
	var be *echo.BindingError
	if errors.As(err, &be) {
		return domainerrors.NewValidationError(be.Field, "has an invalid value")
	}
	return domainerrors.NewValidationError("query", err.Error())
}
