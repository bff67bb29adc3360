package events

import (
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisProcessEvents fans kettle transitions out over a Redis pub/sub
// channel so every API replica can push them to its status viewers.
type RedisProcessEvents struct {
	rdb     *redis.Client
	channel string
}

var (
	_ interfaces.IProcessEventPublisher  = (*RedisProcessEvents)(nil)
	_ interfaces.IProcessEventSubscriber = (*RedisProcessEvents)(nil)
)

func NewRedisProcessEvents(rdb *redis.Client, channel string) *RedisProcessEvents {
	return &RedisProcessEvents{rdb: rdb, channel: channel}
}

func (p *RedisProcessEvents) Publish(ctx context.Context, ev entities.ProcessEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal process event: %w", err)
	}
	if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish process event: %w", err)
	}
	return nil
}

// Subscribe waits for the subscription to be confirmed before returning, so
// no event published after Subscribe returns is missed.
func (p *RedisProcessEvents) Subscribe(ctx context.Context) (<-chan entities.ProcessEvent, error) {
	pubsub := p.rdb.Subscribe(ctx, p.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", p.channel, err)
	}

	out := make(chan entities.ProcessEvent, 10)
	go func() {
		defer close(out)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var ev entities.ProcessEvent
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					log.Printf("[events][redis] skip malformed payload channel=%s err=%v", p.channel, err)
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
