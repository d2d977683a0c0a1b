package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/semo-todo/internal/domain/errors"
	"github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	apperrors "github.com/wekeepgrowing/semo-todo/pkg/errors"
)

// 컨텍스트 키
const (
	UserIDKey = "user_id"
	UserKey   = "user"
)

// Authenticator 토큰의 subject로 활성 사용자를 조회합니다.
type Authenticator interface {
	Authenticate(ctx context.Context, uow repository.UnitOfWork, userID uuid.UUID) (*entity.User, error)
}

// JWTConfig JWT 미들웨어 설정
type JWTConfig struct {
	Secret        string
	Authenticator Authenticator
	// 사용자 조회용. 트랜잭션 밖에서 실행됩니다.
	UnitOfWork repository.UnitOfWork
	Logger     *zap.Logger
}

// JWTMiddleware HS256 토큰을 검증하고 sub 클레임의 사용자를 컨텍스트에 저장합니다.
func JWTMiddleware(config JWTConfig) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				config.Logger.Debug("Missing authorization header", zap.String("path", path))
				return unauthenticated(c, "authorization header required")
			}

			tokenString, ok := bearerToken(authHeader)
			if !ok {
				config.Logger.Debug("Invalid authorization header format", zap.String("path", path))
				return unauthenticated(c, "invalid authorization header format, expected: Bearer <token>")
			}

			var claims jwt.RegisteredClaims
			_, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
				return []byte(config.Secret), nil
			})
			if err != nil {
				config.Logger.Info("JWT validation failed",
					zap.Error(err),
					zap.String("ip", c.RealIP()),
					zap.String("path", path))
				return unauthenticated(c, "could not validate credentials")
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				config.Logger.Info("Invalid subject claim", zap.String("sub", claims.Subject))
				return unauthenticated(c, "could not validate credentials")
			}

			user, err := config.Authenticator.Authenticate(c.Request().Context(), config.UnitOfWork, userID)
			if err != nil {
				he := apperrors.ToHTTPError(err)
				if he.Code >= http.StatusInternalServerError {
					return err
				}
				config.Logger.Info("Authentication rejected",
					zap.String("user_id", userID.String()),
					zap.Error(err))
				return c.JSON(he.Code, he.Message)
			}

			c.Set(UserIDKey, user.ID)
			c.Set(UserKey, user)

			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func unauthenticated(c echo.Context, message string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: message,
		Code:  apperrors.ErrUnauthenticated,
	})
}

// CurrentUser 인증 미들웨어가 저장한 사용자를 반환합니다.
func CurrentUser(c echo.Context) (*entity.User, error) {
	user, ok := c.Get(UserKey).(*entity.User)
	if !ok || user == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	return user, nil
}
