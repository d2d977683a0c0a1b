package errors

import (
	"errors"
	"fmt"
)

// 호출 측에서 표준 errors를 따로 import하지 않도록 재노출합니다
var (
	Is = errors.Is
	As = errors.As
)

// AppError는 코드와 클라이언트용 메시지를 가진 에러입니다.
// 원인 에러는 err에 보관되며 errors.Is/As로 따라갈 수 있습니다.
type AppError struct {
	code    string
	message string
	err     error
}

// NewAppError는 새 애플리케이션 에러를 생성합니다
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{code: code, message: message, err: err}
}

func (e *AppError) Error() string {
	if e.err == nil {
		return e.message
	}
	return fmt.Sprintf("%s: %v", e.message, e.err)
}

// Code는 에러 코드를 반환합니다
func (e *AppError) Code() string { return e.code }

// Message는 원인 에러를 제외한 메시지만 반환합니다
func (e *AppError) Message() string { return e.message }

func (e *AppError) Unwrap() error { return e.err }

// Wrap은 err에 메시지를 덧붙입니다.
// 체인에 AppError가 있으면 그 코드를, 없으면 INTERNAL을 사용합니다.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return NewAppError(CodeOf(err), message, err)
}

// CodeOf는 에러 체인에서 가장 바깥 AppError의 코드를 반환합니다
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.code
	}
	return ErrInternal
}
