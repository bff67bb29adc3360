package interfaces

import (
	"bitumen_production/internal/domain/entities"
	"context"
)

// IProcessEventPublisher notifies viewers after a kettle transition commits.
type IProcessEventPublisher interface {
	Publish(ctx context.Context, ev entities.ProcessEvent) error
}

// IProcessEventSubscriber streams kettle transitions until ctx is done; the
// channel is closed afterwards.
type IProcessEventSubscriber interface {
	Subscribe(ctx context.Context) (<-chan entities.ProcessEvent, error)
}
