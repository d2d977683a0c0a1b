package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "github.com/wekeepgrowing/semo-todo/pkg/errors"
)

func TestWrapKeepsCode(t *testing.T) {
	base := apperrors.NewAppError(apperrors.ErrNotFound, "todo not found", nil)
	wrapped := apperrors.Wrap(base, "get todo")

	assert.True(t, apperrors.Is(wrapped, base))
	assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(wrapped))
	assert.Equal(t, "get todo: todo not found", wrapped.Error())
}

func TestWrapPlainErrorBecomesInternal(t *testing.T) {
	wrapped := apperrors.Wrap(fmt.Errorf("connection reset"), "list todos")
	assert.Equal(t, apperrors.ErrInternal, apperrors.CodeOf(wrapped))
	assert.Nil(t, apperrors.Wrap(nil, "noop"))
}

func TestRegisterCode(t *testing.T) {
	apperrors.RegisterCode("TEST_TEAPOT", http.StatusTeapot, codes.FailedPrecondition)

	httpStatus, grpcCode := apperrors.GetCodeMapping("TEST_TEAPOT")
	assert.Equal(t, http.StatusTeapot, httpStatus)
	assert.Equal(t, codes.FailedPrecondition, grpcCode)

	httpStatus, grpcCode = apperrors.GetCodeMapping("UNKNOWN_CODE")
	assert.Equal(t, http.StatusInternalServerError, httpStatus)
	assert.Equal(t, codes.Internal, grpcCode)
}

func TestToHTTPError(t *testing.T) {
	t.Run("app error uses innermost message", func(t *testing.T) {
		base := apperrors.NewAppError(apperrors.ErrUnauthorized, "permission denied", nil)
		he := apperrors.ToHTTPError(apperrors.Wrap(base, "delete todo"))

		assert.Equal(t, http.StatusForbidden, he.Code)
		body, ok := he.Message.(apperrors.ErrorResponse)
		require.True(t, ok)
		assert.Equal(t, "permission denied", body.Error)
		assert.Equal(t, apperrors.ErrUnauthorized, body.Code)
	})

	t.Run("internal error hides cause", func(t *testing.T) {
		he := apperrors.ToHTTPError(apperrors.Wrap(fmt.Errorf("pq: relation missing"), "query"))

		assert.Equal(t, http.StatusInternalServerError, he.Code)
		body := he.Message.(apperrors.ErrorResponse)
		assert.NotContains(t, body.Error, "pq")
	})

	t.Run("echo error passes through", func(t *testing.T) {
		orig := echo.NewHTTPError(http.StatusMethodNotAllowed, "nope")
		assert.Same(t, orig, apperrors.ToHTTPError(orig))
	})
}

func TestFromHTTPError(t *testing.T) {
	err := apperrors.FromHTTPError(echo.NewHTTPError(http.StatusConflict, "exists"))
	assert.Equal(t, apperrors.ErrConflict, apperrors.CodeOf(err))
	assert.Equal(t, "exists", err.Error())
}

func TestToGRPCError(t *testing.T) {
	err := apperrors.ToGRPCError(apperrors.NewAppError(apperrors.ErrInvalidArgument, "bad title", nil))
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Nil(t, apperrors.ToGRPCError(nil))
}
