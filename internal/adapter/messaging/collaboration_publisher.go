package messaging

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	"github.com/wekeepgrowing/semo-todo/pkg/messaging"
)

// CollaborationPublisher 협업 이벤트를 Redis 채널로 발행합니다.
type CollaborationPublisher struct {
	publisher messaging.Publisher
	channel   string
	logger    *zap.Logger
}

// NewCollaborationPublisher 협업 이벤트 발행자 생성
func NewCollaborationPublisher(publisher messaging.Publisher, channel string, logger *zap.Logger) *CollaborationPublisher {
	return &CollaborationPublisher{
		publisher: publisher,
		channel:   channel,
		logger:    logger,
	}
}

// PublishCollaborationEvent 전체 채널과 수신자별 채널에 발행합니다.
// 실패는 로그로 남기고 모든 채널 발행을 시도합니다.
func (p *CollaborationPublisher) PublishCollaborationEvent(ctx context.Context, event entity.CollaborationEvent) error {
	var errs []error

	// 전체 채널
	if err := p.publisher.Publish(ctx, p.channel, event); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", p.channel, err))
	}

	// 사용자별 채널
	for _, userID := range event.Recipients {
		channel := UserChannel(p.channel, userID.String())
		if err := p.publisher.Publish(ctx, channel, event); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", channel, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		p.logger.Warn("협업 이벤트 발행 실패",
			zap.String("type", string(event.Type)),
			zap.String("todo_id", event.TodoID.String()),
			zap.Error(err),
		)
		return err
	}

	p.logger.Debug("협업 이벤트 발행",
		zap.String("type", string(event.Type)),
		zap.String("todo_id", event.TodoID.String()),
		zap.Int("recipients", len(event.Recipients)),
	)
	return nil
}

// UserChannel 사용자별 채널 이름
func UserChannel(channel, userID string) string {
	return fmt.Sprintf("%s:%s", channel, userID)
}
