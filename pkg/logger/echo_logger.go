package logger

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	apperrors "github.com/wekeepgrowing/semo-todo/pkg/errors"
)

// NewEchoRequestLogger는 요청/응답을 zap으로 기록하는 Echo 미들웨어를 생성합니다.
func NewEchoRequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		HandleError:    true,
		LogLatency:     true,
		LogRemoteIP:    true,
		LogMethod:      true,
		LogURI:         true,
		LogRoutePath:   true,
		LogRequestID:   true,
		LogUserAgent:   true,
		LogStatus:      true,
		LogError:       true,
		LogHeaders:     []string{"Authorization"},
		LogQueryParams: []string{"page", "limit", "search", "accepted"},
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request.remote_ip", v.RemoteIP),
				zap.String("request.method", v.Method),
				zap.String("request.uri", v.URI),
				zap.String("request.route", v.RoutePath),
				zap.String("request.user_agent", v.UserAgent),
				zap.String("request.request_id", v.RequestID),
				zap.Int("response.status", v.Status),
				zap.Duration("response.latency", v.Latency),
			}
			if auth := v.Headers["Authorization"]; len(auth) > 0 {
				fields = append(fields, zap.String("request.authorization", MaskToken(auth[0])))
			}
			if len(v.QueryParams) > 0 {
				fields = append(fields, zap.Any("request.query_params", v.QueryParams))
			}

			switch {
			case v.Status >= 500:
				if v.Error != nil {
					fields = append(fields, zap.Error(v.Error))
				}
				logger.Error("Server error", fields...)
			case v.Status >= 400:
				if v.Error != nil {
					fields = append(fields, zap.Error(v.Error))
				}
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request completed", fields...)
			}
			return nil
		},
	})
}

// MaskToken은 Authorization 헤더 값의 앞뒤 일부만 남깁니다.
func MaskToken(val string) string {
	if len(val) > 15 {
		return val[:10] + "..." + val[len(val)-5:]
	}
	return "[MASKED]"
}

// WithEchoLogger는 AppError를 JSON 응답으로 변환하는 에러 핸들러를 설정합니다.
func WithEchoLogger(e *echo.Echo, logger *zap.Logger) {
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		he := apperrors.ToHTTPError(err)

		if he.Code >= http.StatusInternalServerError {
			logger.Error("HTTP error",
				zap.Error(err),
				zap.Int("status", he.Code),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
			)
		}

		if c.Response().Committed {
			return
		}

		var sendErr error
		switch {
		case c.Request().Method == http.MethodHead:
			sendErr = c.NoContent(he.Code)
		default:
			body, ok := he.Message.(apperrors.ErrorResponse)
			if !ok {
				body = apperrors.ErrorResponse{
					Error: messageOf(he),
					Code:  apperrors.CodeOf(apperrors.FromHTTPError(he)),
				}
			}
			sendErr = c.JSON(he.Code, body)
		}
		if sendErr != nil {
			logger.Error("Failed to send error response", zap.Error(sendErr))
		}
	}
}

func messageOf(he *echo.HTTPError) string {
	if msg, ok := he.Message.(string); ok {
		return msg
	}
	return http.StatusText(he.Code)
}
