package usecase

import (
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"time"
)

var ErrStatusStreamUnavailable = errors.New("status stream unavailable")

// IStatusFeedUseCase is the read model of the kettle. It never mutates state.
//
//   - Current => one poll, elapsed recomputed against now
//   - Watch   => push stream of statuses, one per committed transition
type IStatusFeedUseCase interface {
	Current(ctx context.Context) (entities.ProcessStatus, error)
	Watch(ctx context.Context) (<-chan entities.ProcessStatus, error)
}

type StatusFeedUseCase struct {
	repo       interfaces.IConversionRepository
	subscriber interfaces.IProcessEventSubscriber
	clock      func() time.Time
}

var _ IStatusFeedUseCase = (*StatusFeedUseCase)(nil)

// NewStatusFeedUseCase builds the feed. Without a subscriber only polling is
// available and Watch returns ErrStatusStreamUnavailable.
func NewStatusFeedUseCase(repo interfaces.IConversionRepository, subscriber interfaces.IProcessEventSubscriber) *StatusFeedUseCase {
	return &StatusFeedUseCase{
		repo:       repo,
		subscriber: subscriber,
		clock:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *StatusFeedUseCase) Current(ctx context.Context) (entities.ProcessStatus, error) {
	now := u.clock()

	b, err := u.repo.GetActive(ctx)
	if err != nil {
		log.Printf("[status][usecase] failed loading active batch err=%v", err)
		return entities.ProcessStatus{}, err
	}
	if !b.IsBoiling() {
		return entities.ProcessStatus{State: entities.ConversionStateIdle, ObservedAt: now}, nil
	}

	startedAt := b.StartedAt
	inputs := b.Inputs
	return entities.ProcessStatus{
		State:             entities.ConversionStateBoiling,
		BatchID:           b.ID,
		StartedAt:         &startedAt,
		Elapsed:           b.Elapsed(now),
		Inputs:            &inputs,
		ProjectedOutputKg: b.ProjectedOutputKg(),
		ProjectedUnitCost: b.UnitCost,
		ObservedAt:        now,
	}, nil
}

// Watch emits the current status immediately and again after every process
// event. The channel closes when ctx is done or the event stream ends.
func (u *StatusFeedUseCase) Watch(ctx context.Context) (<-chan entities.ProcessStatus, error) {
	if u.subscriber == nil {
		return nil, ErrStatusStreamUnavailable
	}

	// The subscription lives until ctx is done or the snapshot fails.
	ctx, cancel := context.WithCancel(ctx)

	// Subscribe first so a transition between the snapshot and the
	// subscription is not lost.
	events, err := u.subscriber.Subscribe(ctx)
	if err != nil {
		cancel()
		log.Printf("[status][usecase] subscribe failed err=%v", err)
		return nil, err
	}
	first, err := u.Current(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	out := make(chan entities.ProcessStatus, 1)
	out <- first

	go func() {
		defer cancel()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				st, err := u.Current(ctx)
				if err != nil {
					log.Printf("[status][usecase] refresh after event failed type=%s batch_id=%s err=%v", ev.Type, ev.BatchID, err)
					continue
				}
				select {
				case out <- st:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
