package simsource

import (
	"math/rand"
	"sync"
	"time"

	"github.com/AlekSi/pointer"
	"driversync/internal/entities"
)

const (
	defaultTick = 2 * time.Second
	// ~50 метров на шаг в градусах
	defaultStep = 0.0005
)

// Source - симулятор сенсора: случайное блуждание вокруг стартовой
// точки. Используется бинарем сессии и демо вместо реального устройства.
type Source struct {
	lat  float64
	lng  float64
	tick time.Duration
	rng  *rand.Rand
	mu   sync.Mutex
}

func New(startLat, startLng float64, tick time.Duration, seed int64) *Source {
	if tick <= 0 {
		tick = defaultTick
	}

	return &Source{
		lat:  startLat,
		lng:  startLng,
		tick: tick,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (s *Source) Subscribe(onSample func(entities.Location), _ func(error)) (func(), error) {
	done := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(s.tick)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				onSample(s.next())
			}
		}
	}()

	stop := func() {
		once.Do(func() {
			close(done)
		})
	}
	return stop, nil
}

func (s *Source) next() entities.Location {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lat += (s.rng.Float64() - 0.5) * 2 * defaultStep
	s.lng += (s.rng.Float64() - 0.5) * 2 * defaultStep

	return entities.Location{
		Latitude:   s.lat,
		Longitude:  s.lng,
		Accuracy:   pointer.ToFloat64(5 + s.rng.Float64()*10),
		CapturedAt: time.Now().UTC(),
	}
}
