package sampler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"driversync/internal/entities"
	"driversync/internal/locations/sampler"
	"driversync/pkg/logger"
)

type fakeSource struct {
	mu       sync.Mutex
	onSample func(entities.Location)
	onErr    func(error)
	stopped  bool
	subErr   error
}

func (s *fakeSource) Subscribe(onSample func(entities.Location), onErr func(error)) (func(), error) {
	if s.subErr != nil {
		return nil, s.subErr
	}

	s.mu.Lock()
	s.onSample = onSample
	s.onErr = onErr
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()
	}, nil
}

func (s *fakeSource) emit(lat, lng float64) {
	s.mu.Lock()
	fn := s.onSample
	s.mu.Unlock()
	fn(entities.Location{Latitude: lat, Longitude: lng, CapturedAt: time.Now()})
}

func (s *fakeSource) isStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

type coord struct {
	lat, lng float64
}

type fakeSink struct {
	updates chan coord
	err     error
}

func newFakeSink() *fakeSink {
	return &fakeSink{updates: make(chan coord, 16)}
}

func (s *fakeSink) UpdateLocation(ctx context.Context, lat, lng float64) error {
	s.updates <- coord{lat: lat, lng: lng}
	return s.err
}

func waitUpdate(t *testing.T, sink *fakeSink) coord {
	t.Helper()
	select {
	case c := <-sink.updates:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("сэмпл не дошел до приемника")
		return coord{}
	}
}

func assertNoUpdate(t *testing.T, sink *fakeSink) {
	t.Helper()
	select {
	case c := <-sink.updates:
		t.Fatalf("неожиданный сэмпл: %+v", c)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSampler_ThrottlesWithinWindow(t *testing.T) {
	t.Parallel()

	source := &fakeSource{}
	sink := newFakeSink()
	s := sampler.New(logger.NewNop(), source, sink, time.Hour)

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	source.emit(55.75, 37.61)
	first := waitUpdate(t, sink)
	assert.InDelta(t, 55.75, first.lat, 1e-9)

	// поздние сэмплы внутри окна отбрасываются, а не ставятся в очередь
	source.emit(55.76, 37.62)
	source.emit(55.77, 37.63)
	assertNoUpdate(t, sink)
}

func TestSampler_EmitsAgainAfterWindow(t *testing.T) {
	t.Parallel()

	source := &fakeSource{}
	sink := newFakeSink()
	s := sampler.New(logger.NewNop(), source, sink, 20*time.Millisecond)

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	source.emit(55.75, 37.61)
	waitUpdate(t, sink)

	time.Sleep(30 * time.Millisecond)

	source.emit(55.80, 37.70)
	second := waitUpdate(t, sink)
	assert.InDelta(t, 55.80, second.lat, 1e-9)
}

func TestSampler_StartStop(t *testing.T) {
	t.Parallel()

	t.Run("повторный Start отклоняется", func(t *testing.T) {
		t.Parallel()

		source := &fakeSource{}
		s := sampler.New(logger.NewNop(), source, newFakeSink(), time.Hour)

		require.NoError(t, s.Start(context.Background()))
		defer s.Stop()

		require.ErrorIs(t, s.Start(context.Background()), sampler.ErrAlreadyStarted)
	})

	t.Run("ошибка подписки пробрасывается", func(t *testing.T) {
		t.Parallel()

		source := &fakeSource{subErr: errors.New("sensor unavailable")}
		s := sampler.New(logger.NewNop(), source, newFakeSink(), time.Hour)

		err := s.Start(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "subscribe location source")
	})

	t.Run("Stop освобождает подписку и идемпотентен", func(t *testing.T) {
		t.Parallel()

		source := &fakeSource{}
		sink := newFakeSink()
		s := sampler.New(logger.NewNop(), source, sink, time.Hour)

		require.NoError(t, s.Start(context.Background()))
		s.Stop()
		s.Stop()

		assert.True(t, source.isStopped())

		// сэмплы после Stop игнорируются
		source.emit(55.75, 37.61)
		assertNoUpdate(t, sink)
	})

	t.Run("после Stop можно запуститься заново", func(t *testing.T) {
		t.Parallel()

		source := &fakeSource{}
		sink := newFakeSink()
		s := sampler.New(logger.NewNop(), source, sink, time.Hour)

		require.NoError(t, s.Start(context.Background()))
		s.Stop()

		require.NoError(t, s.Start(context.Background()))
		defer s.Stop()

		source.emit(55.75, 37.61)
		waitUpdate(t, sink)
	})
}

func TestSampler_SinkErrorDoesNotKillSubscription(t *testing.T) {
	t.Parallel()

	source := &fakeSource{}
	sink := newFakeSink()
	sink.err = errors.New("driver is not known yet")
	s := sampler.New(logger.NewNop(), source, sink, 10*time.Millisecond)

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	source.emit(55.75, 37.61)
	waitUpdate(t, sink)

	time.Sleep(20 * time.Millisecond)

	// подписка пережила отказ приемника
	source.emit(55.80, 37.70)
	waitUpdate(t, sink)
}

func TestSampler_SourceErrorIsNonFatal(t *testing.T) {
	t.Parallel()

	source := &fakeSource{}
	sink := newFakeSink()
	s := sampler.New(logger.NewNop(), source, sink, 10*time.Millisecond)

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	source.onErr(errors.New("gps glitch"))

	source.emit(55.75, 37.61)
	waitUpdate(t, sink)
}
