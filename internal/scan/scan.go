// Package scan drives concurrent TCP exposure probing across a host range.
package scan

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"netexposure/internal/model"
	"netexposure/internal/risk"
)

// ErrInvalidConcurrency is returned when the concurrency bound is zero or
// negative. A scan with such a bound would either deadlock or run ungated,
// so it is rejected before any socket is opened.
var ErrInvalidConcurrency = errors.New("concurrency must be greater than zero")

// Config holds settings for one scan run.
type Config struct {
	Target      string        // original range descriptor, kept for the report
	Hosts       []string      // expanded host addresses
	Ports       []int         // resolved port set
	Timeout     time.Duration // per-probe connect and read budget
	Concurrency int           // admission gate size

	// Progress, when set, is called once per resolved probe. Calls are
	// serialized, so the callback needs no locking of its own.
	Progress func(done, total int)
}

// Scanner coordinates concurrent probes across the hosts × ports cross product.
type Scanner struct {
	cfg     Config
	log     *zap.Logger
	probeFn func(ctx context.Context, host string, port int, timeout time.Duration) *model.Exposure
}

// New creates a Scanner. A nil logger is replaced with a no-op one and a
// non-positive timeout falls back to one second.
func New(cfg Config, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Second
	}
	return &Scanner{
		cfg:     cfg,
		log:     logger.With(zap.String("component", "scanner")),
		probeFn: Probe,
	}
}

// Run probes every (host, port) pair and assembles the final report.
//
// A gate slot is acquired before each probe goroutine starts, so at most
// cfg.Concurrency probes are in flight at any instant and the cross product
// is never materialized up front. Exposures are appended in probe completion
// order; callers needing deterministic ordering must sort the result
// themselves. When ctx is canceled, dispatch stops, in-flight probes unwind
// and release their sockets, and no report is returned.
func (s *Scanner) Run(ctx context.Context) (*model.ScanReport, error) {
	if s.cfg.Concurrency <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidConcurrency, s.cfg.Concurrency)
	}

	total := len(s.cfg.Hosts) * len(s.cfg.Ports)
	s.log.Info("starting scan",
		zap.String("target", s.cfg.Target),
		zap.Int("hosts", len(s.cfg.Hosts)),
		zap.Int("ports", len(s.cfg.Ports)),
		zap.Int("concurrency", s.cfg.Concurrency),
		zap.Duration("timeout", s.cfg.Timeout),
	)

	startedAt := time.Now().UTC()
	exposures := make([]model.Exposure, 0)
	resolved := 0
	mu := &sync.Mutex{}
	gate := semaphore.NewWeighted(int64(s.cfg.Concurrency))
	wg := sync.WaitGroup{}

dispatch:
	for _, host := range s.cfg.Hosts {
		for _, port := range s.cfg.Ports {
			if err := gate.Acquire(ctx, 1); err != nil {
				break dispatch
			}
			wg.Add(1)
			go func(host string, port int) {
				defer wg.Done()
				defer gate.Release(1)
				exp := s.probeFn(ctx, host, port, s.cfg.Timeout)
				mu.Lock()
				defer mu.Unlock()
				if exp != nil {
					if note, ok := risk.Note(exp.Port); ok {
						exp.Risk = &note
					}
					exposures = append(exposures, *exp)
					s.log.Debug("exposure found",
						zap.String("host", exp.Host),
						zap.Int("port", exp.Port),
					)
				}
				resolved++
				if s.cfg.Progress != nil {
					s.cfg.Progress(resolved, total)
				}
			}(host, port)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		s.log.Info("scan aborted", zap.Int("resolved", resolved), zap.Int("total", total))
		return nil, fmt.Errorf("scan aborted: %w", err)
	}

	report := &model.ScanReport{
		Target:     s.cfg.Target,
		Ports:      append([]int(nil), s.cfg.Ports...),
		HostCount:  len(s.cfg.Hosts),
		Exposures:  exposures,
		StartedAt:  startedAt,
		FinishedAt: time.Now().UTC(),
	}
	s.log.Info("scan complete",
		zap.Int("exposures", len(report.Exposures)),
		zap.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
	)
	return report, nil
}
