package ticks

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"stock-dashboard/src/analysis/core"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------
// SyntheticTickSource produces uniformly distributed price ticks for a fixed
// symbol set on a timer. Each tick carries a price in [PriceMin, PriceMax]
// and a volume of BaseVolume scaled by [0.8, 1.5).
// -----------------------------------------------------------------------------

const (
	volumeScaleMin = 0.8
	volumeScaleMax = 1.5
)

type SyntheticTickSource struct {
	Config     models.MSimulatorConfig
	Logger     *logger.Logger
	symbols    atomic.Value // stores []string safely
	rng        *rand.Rand
	rngMu      sync.Mutex
	cancelFunc context.CancelFunc
	ctx        context.Context
	outputChan chan<- []models.MPricePoint
	isRunning  atomic.Bool
	mu         sync.Mutex
}

// -----------------------------------------------------------------------------

func (s *SyntheticTickSource) Name() string {
	return "synthetic"
}

// -----------------------------------------------------------------------------

func NewSyntheticTickSource(cfg models.MSimulatorConfig, logLevel string, seed int64) *SyntheticTickSource {
	s := &SyntheticTickSource{
		Config: cfg,
		Logger: logger.NewLogger(logLevel, "SyntheticTickSource"),
		rng:    rand.New(rand.NewSource(seed)),
	}
	s.symbols.Store(cfg.Symbols)
	return s
}

// -----------------------------------------------------------------------------

// GenerateBatch produces one tick per configured symbol at the given instant.
// Exposed so the startup path can prime histories before the loop starts.
func (s *SyntheticTickSource) GenerateBatch(now time.Time) []models.MPricePoint {
	symbols := s.getSymbols()
	batch := make([]models.MPricePoint, 0, len(symbols))
	ts := now.Unix()

	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	for _, symbol := range symbols {
		price := s.Config.PriceMin + s.rng.Float64()*(s.Config.PriceMax-s.Config.PriceMin)
		scale := volumeScaleMin + s.rng.Float64()*(volumeScaleMax-volumeScaleMin)

		batch = append(batch, models.MPricePoint{
			Symbol:    symbol,
			Price:     core.Round2(price),
			Volume:    s.Config.BaseVolume * scale,
			Timestamp: ts,
		})
	}

	return batch
}

// -----------------------------------------------------------------------------

// Start begins the tick production loop
func (s *SyntheticTickSource) Start(parentCtx context.Context, outputChan chan<- []models.MPricePoint, wg *sync.WaitGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning.Load() {
		return fmt.Errorf("source %s is already running", s.Name())
	}

	// Derive a context so we can stop just this source via Stop()
	ctx, cancel := context.WithCancel(parentCtx)
	s.cancelFunc = cancel
	s.ctx = ctx
	s.outputChan = outputChan
	s.isRunning.Store(true)

	wg.Add(1)
	go s.runLoop(ctx, outputChan, wg)
	s.Logger.Info("Started SyntheticTickSource: %d symbols, interval %ds",
		len(s.getSymbols()), s.Config.TickIntervalSeconds)
	return nil
}

// -----------------------------------------------------------------------------

// Stop signals the run loop to exit
func (s *SyntheticTickSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning.Load() {
		return fmt.Errorf("source %s is not running", s.Name())
	}

	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.isRunning.Store(false)
	s.Logger.Info("Stopped SyntheticTickSource")
	return nil
}

// -----------------------------------------------------------------------------

// push sends a batch to the output channel, aborting if the context dies.
func (s *SyntheticTickSource) push(batch []models.MPricePoint) error {
	if s.outputChan == nil {
		return fmt.Errorf("output channel is nil")
	}

	select {
	case s.outputChan <- batch:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	}
}

// -----------------------------------------------------------------------------

// runLoop emits one batch per tick interval until cancelled.
func (s *SyntheticTickSource) runLoop(ctx context.Context, outputChan chan<- []models.MPricePoint, wg *sync.WaitGroup) {
	defer wg.Done()

	ticker := time.NewTicker(time.Duration(s.Config.TickIntervalSeconds) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			batch := s.GenerateBatch(now)
			if err := s.push(batch); err != nil {
				return // context cancelled during push
			}
		}
	}
}

// -----------------------------------------------------------------------------

func (s *SyntheticTickSource) UpdateSymbols(symbols []string) error {
	// Atomic swap
	s.symbols.Store(symbols)
	s.Logger.Info("Updated symbol list. New count: %d", len(symbols))
	return nil
}

// -----------------------------------------------------------------------------

func (s *SyntheticTickSource) getSymbols() []string {
	return s.symbols.Load().([]string)
}
