package tracker

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/shenikar/site_grid_system/internal/grid"
)

// SimulatedLocator - случайное блуждание вокруг стартовой точки.
// Используется бинарником трекера на стенде и в тестах.
type SimulatedLocator struct {
	mu        sync.Mutex
	lat       float64
	lng       float64
	stepM     float64
	interval  time.Duration
	rng       *rand.Rand
	denied    bool
	accuracyM float64
}

func NewSimulatedLocator(lat, lng, stepMeters float64, interval time.Duration, seed int64) *SimulatedLocator {
	if interval <= 0 {
		interval = time.Second
	}
	return &SimulatedLocator{
		lat:       lat,
		lng:       lng,
		stepM:     stepMeters,
		interval:  interval,
		rng:       rand.New(rand.NewSource(seed)),
		accuracyM: 5,
	}
}

// SetDenied имитирует отзыв разрешения на геолокацию
func (l *SimulatedLocator) SetDenied(denied bool) {
	l.mu.Lock()
	l.denied = denied
	l.mu.Unlock()
}

func (l *SimulatedLocator) CurrentPosition(ctx context.Context) (Fix, error) {
	if err := ctx.Err(); err != nil {
		return Fix{}, err
	}
	return l.next()
}

func (l *SimulatedLocator) Watch(ctx context.Context) <-chan Reading {
	out := make(chan Reading)
	go func() {
		defer close(out)
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fix, err := l.next()
				select {
				case out <- Reading{Fix: fix, Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

func (l *SimulatedLocator) next() (Fix, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.denied {
		return Fix{}, ErrPermissionDenied
	}

	latStep, lngStep := grid.Steps(l.lat, l.stepM)
	angle := l.rng.Float64() * 2 * math.Pi
	l.lat += math.Sin(angle) * latStep
	l.lng += math.Cos(angle) * lngStep

	return Fix{
		Lat:       l.lat,
		Lng:       l.lng,
		Accuracy:  l.accuracyM,
		Timestamp: time.Now(),
	}, nil
}
