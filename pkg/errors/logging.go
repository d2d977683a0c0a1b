package errors

import (
	"go.uber.org/zap"
)

// LogError는 에러를 구조화된 로그로 기록합니다.
// 클라이언트 측 에러 코드(NOT_FOUND 등)는 Warn, 그 외는 Error 레벨을 사용합니다.
func LogError(logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	if err == nil || logger == nil {
		return
	}

	allFields := make([]zap.Field, 0, len(fields)+2)
	allFields = append(allFields, zap.Error(err))

	code := ErrInternal
	var appErr *AppError
	if As(err, &appErr) {
		code = appErr.Code()
		allFields = append(allFields, zap.String("error_code", code))
	}
	allFields = append(allFields, fields...)

	if ToHTTPStatus(code) < 500 {
		logger.Warn(msg, allFields...)
		return
	}
	logger.Error(msg, allFields...)
}
