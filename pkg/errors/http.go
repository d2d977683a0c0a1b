package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse는 HTTP 에러 응답 본문입니다
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToHTTPStatus는 에러 코드를 HTTP 상태 코드로 변환합니다
func ToHTTPStatus(code string) int {
	httpStatus, _ := GetCodeMapping(code)
	return httpStatus
}

// ToHTTPError는 에러를 Echo HTTP 에러로 변환합니다
func ToHTTPError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		return echoErr
	}

	var appErr *AppError
	if As(err, &appErr) {
		return echo.NewHTTPError(ToHTTPStatus(appErr.Code()), ErrorResponse{
			Error: rootMessage(appErr),
			Code:  appErr.Code(),
		})
	}

	return echo.NewHTTPError(http.StatusInternalServerError, ErrorResponse{
		Error: http.StatusText(http.StatusInternalServerError),
		Code:  ErrInternal,
	})
}

// rootMessage는 같은 코드를 가진 가장 안쪽 AppError의 메시지를 반환합니다.
// INTERNAL 에러의 내부 원인은 클라이언트에 노출하지 않습니다.
func rootMessage(appErr *AppError) string {
	if appErr.Code() == ErrInternal {
		return http.StatusText(http.StatusInternalServerError)
	}
	innermost := appErr
	for cur := appErr.err; cur != nil; cur = errors.Unwrap(cur) {
		if inner, ok := cur.(*AppError); ok && inner.Code() == appErr.Code() {
			innermost = inner
		}
	}
	return innermost.Error()
}

// FromHTTPError는 Echo HTTP 에러를 내부 에러로 변환합니다
func FromHTTPError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return err
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		msg := "HTTP error"
		if m, ok := echoErr.Message.(string); ok {
			msg = m
		}
		return NewAppError(httpStatusToCode(echoErr.Code), msg, nil)
	}

	return NewAppError(ErrInternal, err.Error(), err)
}

func httpStatusToCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrInvalidArgument
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrConflict
	case http.StatusGatewayTimeout:
		return ErrTimeout
	case http.StatusNotImplemented:
		return ErrNotImplemented
	default:
		return ErrInternal
	}
}
