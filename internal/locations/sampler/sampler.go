package sampler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"driversync/internal/entities"
	"driversync/pkg/logger"
)

const DefaultMinInterval = 10 * time.Second

var ErrAlreadyStarted = errors.New("sampler is already started")

// Sampler прореживает поток позиций: не чаще одного сэмпла на
// minInterval, поздние сэмплы внутри окна отбрасываются, не ставятся
// в очередь. Ошибки источника и приемника логируются, подписка живет.
type Sampler struct {
	log         handlerLogger
	source      Source
	sink        Sink
	minInterval time.Duration

	mu       sync.Mutex
	running  bool
	stop     func()
	lastEmit time.Time
	ctx      context.Context
	cancel   context.CancelFunc
}

func New(log handlerLogger, source Source, sink Sink, minInterval time.Duration) *Sampler {
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}

	return &Sampler{
		log:         log,
		source:      source,
		sink:        sink,
		minInterval: minInterval,
	}
}

func (s *Sampler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyStarted
	}

	s.ctx, s.cancel = context.WithCancel(ctx)

	stop, err := s.source.Subscribe(s.onSample, s.onSourceError)
	if err != nil {
		s.cancel()
		return fmt.Errorf("subscribe location source: %w", err)
	}

	s.stop = stop
	s.running = true
	s.lastEmit = time.Time{}
	return nil
}

// Stop идемпотентен и полностью освобождает подписку на источник.
func (s *Sampler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.running = false
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Sampler) onSample(loc entities.Location) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}

	now := time.Now()
	if !s.lastEmit.IsZero() && now.Sub(s.lastEmit) < s.minInterval {
		s.mu.Unlock()
		return
	}
	s.lastEmit = now
	ctx := s.ctx
	s.mu.Unlock()

	// не блокируем колбек источника на время сетевых вызовов стора
	go func() {
		err := s.sink.UpdateLocation(ctx, loc.Latitude, loc.Longitude)
		if err != nil && !errors.Is(err, context.Canceled) {
			s.log.Warn("location sink rejected sample",
				logger.NewField("error", err),
			)
		}
	}()
}

func (s *Sampler) onSourceError(err error) {
	s.log.Error("location source error",
		logger.NewField("error", err),
	)
}
