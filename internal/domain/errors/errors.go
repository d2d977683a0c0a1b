// Package errors defines the domain failures surfaced by the todo service.
package errors

import (
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"

	apperrors "github.com/wekeepgrowing/semo-todo/pkg/errors"
)

// Codes specific to collaboration; generic kinds reuse pkg/errors codes.
const (
	CodeInvalidInviteCode     = "INVALID_INVITE_CODE"
	CodeSelfInvite            = "SELF_INVITE"
	CodeDuplicateCollaborator = "DUPLICATE_COLLABORATOR"
	CodeEmailTaken            = "EMAIL_TAKEN"
	CodeInactiveUser          = "INACTIVE_USER"
)

func init() {
	apperrors.RegisterCode(CodeInvalidInviteCode, http.StatusBadRequest, codes.InvalidArgument)
	apperrors.RegisterCode(CodeSelfInvite, http.StatusBadRequest, codes.InvalidArgument)
	apperrors.RegisterCode(CodeDuplicateCollaborator, http.StatusConflict, codes.AlreadyExists)
	apperrors.RegisterCode(CodeEmailTaken, http.StatusConflict, codes.AlreadyExists)
	apperrors.RegisterCode(CodeInactiveUser, http.StatusForbidden, codes.PermissionDenied)
}

var (
	ErrTodoNotFound          = apperrors.NewAppError(apperrors.ErrNotFound, "todo not found", nil)
	ErrSubTodoNotFound       = apperrors.NewAppError(apperrors.ErrNotFound, "sub-todo not found", nil)
	ErrCollaborationNotFound = apperrors.NewAppError(apperrors.ErrNotFound, "collaboration not found", nil)
	ErrUserNotFound          = apperrors.NewAppError(apperrors.ErrNotFound, "user not found", nil)
	ErrCategoryNotFound      = apperrors.NewAppError(apperrors.ErrNotFound, "category not found", nil)

	ErrPermissionDenied = apperrors.NewAppError(apperrors.ErrUnauthorized, "not enough permissions", nil)
	ErrUnauthenticated  = apperrors.NewAppError(apperrors.ErrUnauthenticated, "could not validate credentials", nil)
	ErrInactiveUser     = apperrors.NewAppError(CodeInactiveUser, "inactive user", nil)

	ErrInvalidInviteCode     = apperrors.NewAppError(CodeInvalidInviteCode, "invalid invite code", nil)
	ErrSelfInvite            = apperrors.NewAppError(CodeSelfInvite, "cannot invite yourself", nil)
	ErrDuplicateCollaborator = apperrors.NewAppError(CodeDuplicateCollaborator, "user is already a collaborator", nil)

	ErrEmailTaken        = apperrors.NewAppError(CodeEmailTaken, "a user with this email already exists", nil)
	ErrIncorrectPassword = apperrors.NewAppError(apperrors.ErrInvalidArgument, "incorrect password", nil)
	ErrSamePassword      = apperrors.NewAppError(apperrors.ErrInvalidArgument, "new password cannot be the same as the current one", nil)
)

// ValidationError reports a payload field that violates its constraints.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError wraps a field violation as an INVALID_ARGUMENT AppError.
func NewValidationError(field, reason string) error {
	verr := &ValidationError{Field: field, Reason: reason}
	return apperrors.NewAppError(apperrors.ErrInvalidArgument, "validation failed", verr)
}
