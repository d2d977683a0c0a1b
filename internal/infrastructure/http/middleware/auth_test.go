package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/semo-todo/internal/domain/errors"
	"github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	apperrors "github.com/wekeepgrowing/semo-todo/pkg/errors"
)

const testSecret = "test-secret"

// MockAuthenticator is a mock implementation of Authenticator
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, uow repository.UnitOfWork, userID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, uow, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(sub string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
}

func runAuth(t *testing.T, auth Authenticator, header string) (*httptest.ResponseRecorder, *entity.User) {
	t.Helper()

	e := echo.New()
	var seen *entity.User
	handler := JWTMiddleware(JWTConfig{
		Secret:        testSecret,
		Authenticator: auth,
		Logger:        zap.NewNop(),
	})(func(c echo.Context) error {
		user, err := CurrentUser(c)
		require.NoError(t, err)
		seen = user
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec, seen
}

func TestJWTMiddleware_SuccessfulAuthentication(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", IsActive: true}
	auth := new(MockAuthenticator)
	auth.On("Authenticate", mock.Anything, mock.Anything, user.ID).Return(user, nil)

	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(user.ID.String()))
	rec, seen := runAuth(t, auth, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, user.ID, seen.ID)
	auth.AssertExpectations(t)
}

func TestJWTMiddleware_Rejections(t *testing.T) {
	userID := uuid.New()

	expired := validClaims(userID.String())
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(userID.String()))},
		{"bad signature", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other-secret"), validClaims(userID.String()))},
		{"other algorithm", "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims(userID.String()))},
		{"expired", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{"subject is not a uuid", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("alice"))},
		{"garbage", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(MockAuthenticator)
			rec, seen := runAuth(t, auth, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, seen)

			var body apperrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, apperrors.ErrUnauthenticated, body.Code)
			auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestJWTMiddleware_UserLookup(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(userID.String()))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unknown user", domainerrors.ErrUnauthenticated, http.StatusUnauthorized, apperrors.ErrUnauthenticated},
		{"inactive user", domainerrors.ErrInactiveUser, http.StatusForbidden, domainerrors.CodeInactiveUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(MockAuthenticator)
			auth.On("Authenticate", mock.Anything, mock.Anything, userID).Return(nil, tt.err)

			rec, seen := runAuth(t, auth, "Bearer "+token)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Nil(t, seen)

			var body apperrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}
