package errors

import (
	"net/http"
	"sync"

	"google.golang.org/grpc/codes"
)

// 공통 에러 코드
const (
	ErrInternal        = "INTERNAL"
	ErrNotFound        = "NOT_FOUND"
	ErrInvalidArgument = "INVALID_ARGUMENT"
	ErrUnauthenticated = "UNAUTHENTICATED"
	ErrUnauthorized    = "UNAUTHORIZED"
	ErrConflict        = "CONFLICT"
	ErrTimeout         = "TIMEOUT"
	ErrNotImplemented  = "NOT_IMPLEMENTED"
)

// CodePair는 에러 코드별 HTTP 상태와 gRPC 코드 쌍입니다
type CodePair struct {
	HTTPStatus int
	GRPCCode   codes.Code
}

var (
	mappingMu   sync.RWMutex
	codeMapping = map[string]CodePair{
		ErrInternal:        {http.StatusInternalServerError, codes.Internal},
		ErrNotFound:        {http.StatusNotFound, codes.NotFound},
		ErrInvalidArgument: {http.StatusBadRequest, codes.InvalidArgument},
		ErrUnauthenticated: {http.StatusUnauthorized, codes.Unauthenticated},
		ErrUnauthorized:    {http.StatusForbidden, codes.PermissionDenied},
		ErrConflict:        {http.StatusConflict, codes.AlreadyExists},
		ErrTimeout:         {http.StatusGatewayTimeout, codes.DeadlineExceeded},
		ErrNotImplemented:  {http.StatusNotImplemented, codes.Unimplemented},
	}
)

// RegisterCode는 서비스 전용 에러 코드의 매핑을 등록합니다.
// 이미 등록된 코드는 덮어씁니다.
func RegisterCode(code string, httpStatus int, grpcCode codes.Code) {
	mappingMu.Lock()
	defer mappingMu.Unlock()
	codeMapping[code] = CodePair{HTTPStatus: httpStatus, GRPCCode: grpcCode}
}

// GetCodeMapping은 에러 코드에 대한 HTTP 및 gRPC 코드를 반환합니다
func GetCodeMapping(code string) (int, codes.Code) {
	mappingMu.RLock()
	defer mappingMu.RUnlock()
	if pair, ok := codeMapping[code]; ok {
		return pair.HTTPStatus, pair.GRPCCode
	}
	return http.StatusInternalServerError, codes.Internal
}
