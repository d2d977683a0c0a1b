package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Publisher는 채널로 JSON 메시지를 발행합니다.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Close() error
}

// RedisOptions Redis 접속 정보
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

type redisPublisher struct {
	client redis.UniversalClient
}

// NewRedisPublisher는 Redis에 접속하고 ping으로 연결을 확인합니다.
func NewRedisPublisher(ctx context.Context, opts RedisOptions) (Publisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}

	return NewRedisPublisherFromClient(client), nil
}

// NewRedisPublisherFromClient는 이미 만들어진 클라이언트를 사용합니다.
func NewRedisPublisherFromClient(client redis.UniversalClient) Publisher {
	return &redisPublisher{client: client}
}

func (r *redisPublisher) Publish(ctx context.Context, channel string, message interface{}) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("메시지 직렬화 실패: %w", err)
	}
	return r.client.Publish(ctx, channel, payload).Err()
}

func (r *redisPublisher) Close() error {
	return r.client.Close()
}

// NopPublisher는 아무것도 발행하지 않습니다. Redis가 비활성화된 경우에 사용합니다.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }
func (NopPublisher) Close() error                                       { return nil }
