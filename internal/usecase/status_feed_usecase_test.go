package usecase

import (
	"bitumen_production/internal/domain/entities"
	mock_interfaces "bitumen_production/internal/usecase/interfaces/mocks"
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

func TestStatusFeedUseCase_Current(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversionRepository(ctrl)
		uc := NewStatusFeedUseCase(repo, nil)
		uc.clock = func() time.Time { return fixedNow }
		repo.EXPECT().GetActive(gomock.Any()).Return(entities.ConversionBatch{}, nil)

		st, err := uc.Current(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !st.IsIdle() || st.State != entities.ConversionStateIdle || st.StartedAt != nil || st.Inputs != nil {
			t.Fatalf("unexpected idle status %+v", st)
		}
		if !st.ObservedAt.Equal(fixedNow) {
			t.Fatalf("expected observed at %v, got %v", fixedNow, st.ObservedAt)
		}
	})

	t.Run("boiling recomputes elapsed on each poll", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversionRepository(ctrl)
		uc := NewStatusFeedUseCase(repo, nil)

		b := entities.ConversionBatch{
			ID:        "b-1",
			State:     entities.ConversionStateBoiling,
			StartedAt: fixedNow,
			Inputs:    referenceInputs(),
			UnitCost:  dec("771"),
		}
		repo.EXPECT().GetActive(gomock.Any()).Return(b, nil).Times(2)

		now := fixedNow.Add(90 * time.Minute)
		uc.clock = func() time.Time { return now }
		st, err := uc.Current(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.State != entities.ConversionStateBoiling || st.BatchID != "b-1" || st.Elapsed != 90*time.Minute {
			t.Fatalf("unexpected status %+v", st)
		}
		if !st.ProjectedUnitCost.Equal(dec("771")) || !st.ProjectedOutputKg.Equal(dec("14500")) {
			t.Fatalf("unexpected projection unit=%s out=%s", st.ProjectedUnitCost, st.ProjectedOutputKg)
		}
		if st.StartedAt == nil || !st.StartedAt.Equal(fixedNow) || st.Inputs == nil {
			t.Fatalf("expected started at and inputs, got %+v", st)
		}

		now = now.Add(10 * time.Second)
		st, _ = uc.Current(context.Background())
		if st.Elapsed != 90*time.Minute+10*time.Second {
			t.Fatalf("expected elapsed to advance, got %v", st.Elapsed)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversionRepository(ctrl)
		uc := NewStatusFeedUseCase(repo, nil)
		repo.EXPECT().GetActive(gomock.Any()).Return(entities.ConversionBatch{}, errors.New("db"))

		_, err := uc.Current(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestStatusFeedUseCase_Watch(t *testing.T) {
	t.Run("no subscriber", func(t *testing.T) {
		uc := NewStatusFeedUseCase(nil, nil)
		_, err := uc.Watch(context.Background())
		if !errors.Is(err, ErrStatusStreamUnavailable) {
			t.Fatalf("expected ErrStatusStreamUnavailable, got %v", err)
		}
	})

	t.Run("subscribe error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sub := mock_interfaces.NewMockIProcessEventSubscriber(ctrl)
		uc := NewStatusFeedUseCase(nil, sub)
		sub.EXPECT().Subscribe(gomock.Any()).Return(nil, errors.New("redis"))

		_, err := uc.Watch(context.Background())
		if err == nil || err.Error() != "redis" {
			t.Fatalf("expected redis error, got %v", err)
		}
	})

	t.Run("snapshot error releases subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversionRepository(ctrl)
		sub := mock_interfaces.NewMockIProcessEventSubscriber(ctrl)
		uc := NewStatusFeedUseCase(repo, sub)

		var subCtx context.Context
		sub.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(ctx context.Context) (<-chan entities.ProcessEvent, error) {
			subCtx = ctx
			return make(chan entities.ProcessEvent), nil
		})
		repo.EXPECT().GetActive(gomock.Any()).Return(entities.ConversionBatch{}, errors.New("db"))

		_, err := uc.Watch(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		select {
		case <-subCtx.Done():
		case <-time.After(time.Second):
			t.Fatalf("expected subscription context to be cancelled")
		}
	})

	t.Run("emits snapshot then one status per event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversionRepository(ctrl)
		sub := mock_interfaces.NewMockIProcessEventSubscriber(ctrl)
		uc := NewStatusFeedUseCase(repo, sub)
		uc.clock = func() time.Time { return fixedNow }

		events := make(chan entities.ProcessEvent)
		sub.EXPECT().Subscribe(gomock.Any()).Return((<-chan entities.ProcessEvent)(events), nil)
		gomock.InOrder(
			repo.EXPECT().GetActive(gomock.Any()).Return(entities.ConversionBatch{}, nil),
			repo.EXPECT().GetActive(gomock.Any()).Return(entities.ConversionBatch{ID: "b-1", State: entities.ConversionStateBoiling, StartedAt: fixedNow, Inputs: referenceInputs()}, nil),
		)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		out, err := uc.Watch(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		first := <-out
		if !first.IsIdle() {
			t.Fatalf("expected idle snapshot, got %+v", first)
		}

		events <- entities.ProcessEvent{Type: entities.ProcessEventStarted, BatchID: "b-1", At: fixedNow}
		select {
		case st := <-out:
			if st.BatchID != "b-1" || st.IsIdle() {
				t.Fatalf("expected boiling status, got %+v", st)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for status")
		}

		close(events)
		select {
		case _, ok := <-out:
			if ok {
				t.Fatalf("expected stream to close")
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for close")
		}
	})
}
