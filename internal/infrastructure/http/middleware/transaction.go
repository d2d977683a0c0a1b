package middleware

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	apperrors "github.com/wekeepgrowing/semo-todo/pkg/errors"
)

const uowKey = "uow"

// ErrNoUnitOfWork 트랜잭션 미들웨어가 적용되지 않은 라우트
var ErrNoUnitOfWork = errors.New("unit of work not found in context")

// TransactionMiddleware 요청마다 트랜잭션을 열고 UnitOfWork를 컨텍스트에 저장합니다.
// 응답은 커밋이 끝날 때까지 버퍼에 보관되므로 커밋에 실패한 요청은 500을 받습니다.
// 핸들러가 에러를 반환하거나 4xx/5xx로 응답하면 롤백합니다.
func TransactionMiddleware(tm repository.TransactionManager, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tx, err := tm.Begin(c.Request().Context())
			if err != nil {
				return apperrors.Wrap(err, "failed to begin transaction")
			}
			c.Set(uowKey, tx)

			res := c.Response()
			underlying := res.Writer
			buf := &bufferedWriter{header: underlying.Header()}
			res.Writer = buf

			defer func() {
				if r := recover(); r != nil {
					res.Writer = underlying
					resetResponse(res)
					if rbErr := tx.Rollback(); rbErr != nil {
						logger.Error("rollback failed", zap.Error(rbErr))
					}
					panic(r)
				}
			}()

			handlerErr := next(c)

			if handlerErr != nil || res.Status >= http.StatusBadRequest {
				if rbErr := tx.Rollback(); rbErr != nil {
					logger.Error("rollback failed", zap.Error(rbErr))
				}
				res.Writer = underlying
				buf.flushTo(underlying)
				return handlerErr
			}

			if err := tx.Commit(); err != nil {
				res.Writer = underlying
				resetResponse(res)
				logger.Error("commit failed",
					zap.String("method", c.Request().Method),
					zap.String("path", c.Request().URL.Path),
					zap.Error(err))
				return apperrors.Wrap(err, "failed to commit transaction")
			}

			res.Writer = underlying
			buf.flushTo(underlying)
			return nil
		}
	}
}

// UnitOfWorkFromContext 트랜잭션 미들웨어가 연 UnitOfWork를 반환합니다.
func UnitOfWorkFromContext(c echo.Context) (repository.UnitOfWork, error) {
	uow, ok := c.Get(uowKey).(repository.UnitOfWork)
	if !ok || uow == nil {
		return nil, ErrNoUnitOfWork
	}
	return uow, nil
}

func resetResponse(res *echo.Response) {
	res.Committed = false
	res.Status = http.StatusOK
	res.Size = 0
}

// bufferedWriter 헤더는 원래 writer의 것을 공유하고 상태 코드와 본문만 보관합니다.
type bufferedWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (w *bufferedWriter) Header() http.Header {
	return w.header
}

func (w *bufferedWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}

func (w *bufferedWriter) flushTo(dst http.ResponseWriter) {
	if w.status == 0 {
		return
	}
	dst.WriteHeader(w.status)
	if w.body.Len() > 0 {
		_, _ = dst.Write(w.body.Bytes())
	}
}
