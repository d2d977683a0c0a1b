package logger

import (
	"context"
	"path"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "github.com/wekeepgrowing/semo-todo/pkg/errors"
)

// NewGrpcUnaryServerInterceptor는 unary 호출을 기록하고 AppError를 gRPC status로 변환합니다.
func NewGrpcUnaryServerInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		err = apperrors.ToGRPCError(err)
		logGrpcCall(logger, info.FullMethod, err, time.Since(start))
		return resp, err
	}
}

// NewGrpcStreamServerInterceptor는 스트리밍 호출(health Watch 등)을 기록합니다.
func NewGrpcStreamServerInterceptor(logger *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := apperrors.ToGRPCError(handler(srv, ss))
		logGrpcCall(logger, info.FullMethod, err, time.Since(start))
		return err
	}
}

func logGrpcCall(logger *zap.Logger, fullMethod string, err error, duration time.Duration) {
	code := status.Code(err)
	fields := []zap.Field{
		zap.String("grpc.service", path.Dir(fullMethod)[1:]),
		zap.String("grpc.method", path.Base(fullMethod)),
		zap.String("grpc.code", code.String()),
		zap.Duration("grpc.duration", duration),
	}

	switch code {
	case codes.OK:
		logger.Info("gRPC 요청 완료", fields...)
	case codes.Canceled, codes.DeadlineExceeded, codes.ResourceExhausted,
		codes.Aborted, codes.Unavailable, codes.NotFound, codes.InvalidArgument:
		logger.Warn("gRPC 요청 실패", append(fields, zap.Error(err))...)
	default:
		logger.Error("gRPC 요청 오류", append(fields, zap.Error(err))...)
	}
}
