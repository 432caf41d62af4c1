// Package tracker отслеживает позицию работника двумя независимыми потоками:
// непрерывное наблюдение для локального маркера и периодическая отправка на сервер.
package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shenikar/site_grid_system/internal/metrics"
	"github.com/shenikar/site_grid_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	DefaultReportInterval = 5 * time.Second
	RoleWorker            = "worker"

	streamWatch  = "watch"
	streamReport = "report"
)

type State int

const (
	StateIdle State = iota
	StateTracking
)

func (s State) String() string {
	if s == StateTracking {
		return "TRACKING"
	}
	return "IDLE"
}

// Fix - одно определение позиции
type Fix struct {
	Lat       float64
	Lng       float64
	Accuracy  float64
	Timestamp time.Time
}

// Reading - элемент потока наблюдения: либо позиция, либо ошибка
type Reading struct {
	Fix Fix
	Err error
}

// Locator - источник позиции с высокой точностью
type Locator interface {
	// Watch отдает позиции, пока ctx не отменен, затем закрывает канал
	Watch(ctx context.Context) <-chan Reading
	CurrentPosition(ctx context.Context) (Fix, error)
}

// Reporter доставляет отчет о позиции на сервер
type Reporter interface {
	Report(ctx context.Context, report models.LocationReport) error
}

// Session - активная сессия пользователя; трекинг идет только для роли worker
type Session struct {
	WorkerID int64
	Role     string
}

type Options struct {
	// ReportInterval - период отправки, по умолчанию 5 секунд
	ReportInterval time.Duration
	// FixTimeout ограничивает один тик отправки; по умолчанию равен ReportInterval
	FixTimeout time.Duration
	// OnPosition вызывается при каждом обновлении локального маркера.
	// Вызов идет из отдельной горутины, поэтому колбэк может вызывать Stop и SetSession.
	// Если колбэк не успевает, промежуточные позиции пропускаются, доставляется последняя.
	OnPosition func(Fix)
}

type Tracker struct {
	locator  Locator
	reporter Reporter
	logger   *logrus.Logger
	opts     Options

	mu       sync.Mutex
	state    State
	workerID int64
	run      *run

	posMu    sync.RWMutex
	position *Fix
}

// run - одна сессия TRACKING: оба потока и их тики
type run struct {
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	positions chan Fix
}

func New(locator Locator, reporter Reporter, logger *logrus.Logger, opts Options) *Tracker {
	if opts.ReportInterval <= 0 {
		opts.ReportInterval = DefaultReportInterval
	}
	if opts.FixTimeout <= 0 {
		opts.FixTimeout = opts.ReportInterval
	}
	return &Tracker{
		locator:  locator,
		reporter: reporter,
		logger:   logger,
		opts:     opts,
	}
}

// SetSession переводит трекер в TRACKING для сессии работника и в IDLE для любой другой (или nil)
func (t *Tracker) SetSession(ctx context.Context, s *Session) {
	if s == nil || s.Role != RoleWorker || s.WorkerID == 0 {
		t.Stop()
		return
	}
	t.Start(ctx, s.WorkerID)
}

// Start запускает оба потока заново. Повторный Start с другим работником
// сначала останавливает текущие подписки; предыдущая позиция не переиспользуется.
func (t *Tracker) Start(ctx context.Context, workerID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateTracking {
		if t.workerID == workerID && t.run.ctx.Err() == nil {
			return
		}
		t.stopLocked()
	}

	t.clearPosition()
	runCtx, cancel := context.WithCancel(ctx)
	r := &run{ctx: runCtx, cancel: cancel, positions: make(chan Fix, 1)}
	t.run = r
	t.workerID = workerID
	t.state = StateTracking

	r.wg.Add(2)
	go t.runWatch(r)
	go t.runReport(r, workerID)
	if t.opts.OnPosition != nil {
		go t.dispatchPositions(r)
	}
	go t.supervise(r)

	t.logger.WithFields(logrus.Fields{
		"component": "tracker",
		"worker_id": workerID,
		"interval":  t.opts.ReportInterval.String(),
	}).Info("Location tracking started")
}

// Stop отменяет подписку и таймер и дожидается завершения всех горутин
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *Tracker) stopLocked() {
	if t.state != StateTracking {
		return
	}
	t.run.cancel()
	t.run.wg.Wait()
	t.resetLocked("Location tracking stopped")
}

func (t *Tracker) resetLocked(msg string) {
	t.logger.WithFields(logrus.Fields{
		"component": "tracker",
		"worker_id": t.workerID,
	}).Info(msg)

	t.run = nil
	t.workerID = 0
	t.state = StateIdle
	t.clearPosition()
}

// supervise возвращает трекер в IDLE, если родительский контекст run завершился без Stop
func (t *Tracker) supervise(r *run) {
	<-r.ctx.Done()
	r.cancel()
	r.wg.Wait()

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.run != r {
		return
	}
	t.resetLocked("Location tracking ended with parent context")
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Position - последняя позиция для локального маркера
func (t *Tracker) Position() (Fix, bool) {
	t.posMu.RLock()
	defer t.posMu.RUnlock()
	if t.position == nil {
		return Fix{}, false
	}
	return *t.position, true
}

// ReportOnce берет свежую позицию и отправляет ее. Возвращает *TelemetryError или nil.
func (t *Tracker) ReportOnce(ctx context.Context, workerID int64) error {
	fix, err := t.locator.CurrentPosition(ctx)
	if err != nil {
		metrics.TrackerFixFailuresTotal.WithLabelValues(streamReport).Inc()
		return &TelemetryError{Kind: LocationUnavailable, Stream: streamReport, WorkerID: workerID, Err: err}
	}

	report := models.LocationReport{
		WorkerID:     workerID,
		Lat:          fix.Lat,
		Lng:          fix.Lng,
		TrackingMode: models.TrackingModeGPS,
	}
	if err := t.reporter.Report(ctx, report); err != nil {
		metrics.TrackerReportsTotal.WithLabelValues("failed").Inc()
		return &TelemetryError{Kind: ReportTransportFailure, Stream: streamReport, WorkerID: workerID, Err: err}
	}
	metrics.TrackerReportsTotal.WithLabelValues("sent").Inc()
	return nil
}

func (t *Tracker) runWatch(r *run) {
	defer r.wg.Done()

	ctx := r.ctx
	readings := t.locator.Watch(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case reading, ok := <-readings:
			if !ok {
				return
			}
			if reading.Err != nil {
				metrics.TrackerFixFailuresTotal.WithLabelValues(streamWatch).Inc()
				t.logTelemetry(&TelemetryError{Kind: LocationUnavailable, Stream: streamWatch, Err: reading.Err})
				continue
			}
			t.setPosition(r, reading.Fix)
		}
	}
}

func (t *Tracker) runReport(r *run, workerID int64) {
	defer r.wg.Done()

	ctx := r.ctx
	ticker := time.NewTicker(t.opts.ReportInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// каждый тик независим: медленная отправка не задерживает следующий
			r.wg.Add(1)
			go func() {
				defer r.wg.Done()
				tickCtx, cancel := context.WithTimeout(ctx, t.opts.FixTimeout)
				defer cancel()
				if err := t.ReportOnce(tickCtx, workerID); err != nil {
					t.logTelemetry(err)
				}
			}()
		}
	}
}

func (t *Tracker) logTelemetry(err error) {
	log := t.logger.WithField("component", "tracker")
	var terr *TelemetryError
	if errors.As(err, &terr) {
		log = log.WithFields(logrus.Fields{
			"kind":      terr.Kind.String(),
			"stream":    terr.Stream,
			"worker_id": terr.WorkerID,
		})
	}
	if errors.Is(err, context.Canceled) {
		log.WithError(err).Debug("Telemetry step cancelled")
		return
	}
	log.WithError(err).Warn("Telemetry step failed, waiting for next tick")
}

func (t *Tracker) setPosition(r *run, fix Fix) {
	t.posMu.Lock()
	t.position = &fix
	t.posMu.Unlock()
	if t.opts.OnPosition == nil {
		return
	}
	// единственный писатель: после вычитывания устаревшей позиции место в буфере есть
	select {
	case <-r.positions:
	default:
	}
	r.positions <- fix
}

// dispatchPositions не входит в r.wg: Stop из колбэка не ждет сам себя
func (t *Tracker) dispatchPositions(r *run) {
	for {
		select {
		case <-r.ctx.Done():
			return
		case fix := <-r.positions:
			t.opts.OnPosition(fix)
		}
	}
}

func (t *Tracker) clearPosition() {
	t.posMu.Lock()
	t.position = nil
	t.posMu.Unlock()
}
