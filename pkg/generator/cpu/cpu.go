package cpu

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Amr-9/nwcgen/internal/logging"
	"github.com/Amr-9/nwcgen/pkg/generator"
	"github.com/Amr-9/nwcgen/pkg/generator/nostr"
)

// CPUGenerator implements the Generator interface using CPU-based goroutines.
type CPUGenerator struct {
	attempts  uint64       // Atomic counter for total attempts
	startNano atomic.Int64 // When generation started (UnixNano)
	workers   int          // Number of concurrent workers
	keys      *nostr.KeyGenerator
	log       logrus.FieldLogger

	mu  sync.Mutex
	err error // First worker failure of the current search
}

// NewCPUGenerator creates a new CPU-based generator.
// If workers is 0, it defaults to the number of CPU cores.
func NewCPUGenerator(workers int) *CPUGenerator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &CPUGenerator{
		workers: workers,
		keys:    &nostr.KeyGenerator{},
		log:     logging.Log,
	}
}

// Name returns the implementation name.
func (g *CPUGenerator) Name() string {
	return "CPU"
}

// Stats returns the current performance statistics.
func (g *CPUGenerator) Stats() generator.Stats {
	attempts := atomic.LoadUint64(&g.attempts)
	start := g.startNano.Load()
	if start == 0 {
		return generator.Stats{Attempts: attempts}
	}
	elapsed := time.Since(time.Unix(0, start)).Seconds()

	var hashRate float64
	if elapsed > 0 {
		hashRate = float64(attempts) / elapsed
	}

	return generator.Stats{
		Attempts:    attempts,
		HashRate:    hashRate,
		ElapsedSecs: elapsed,
	}
}

// Err returns the error that stopped the last search, if any.
func (g *CPUGenerator) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}

func (g *CPUGenerator) fail(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err == nil {
		g.err = err
	}
}

// Start begins the vanity npub search with the given configuration.
// The result channel is closed once every worker has exited.
func (g *CPUGenerator) Start(ctx context.Context, config *generator.Config) (<-chan generator.Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	resultChan := make(chan generator.Result, 1)
	g.startNano.Store(time.Now().UnixNano())
	atomic.StoreUint64(&g.attempts, 0)
	g.mu.Lock()
	g.err = nil
	g.mu.Unlock()

	done := make(chan struct{})
	var closeOnce sync.Once

	workers := g.workers
	if config.Workers > 0 {
		workers = config.Workers
	}

	g.log.WithFields(logrus.Fields{
		"prefix":  config.Prefix,
		"suffix":  config.Suffix,
		"workers": workers,
	}).Debug("starting vanity search")

	matcher := nostr.NewNpubMatcher(config.Prefix, config.Suffix)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			g.worker(ctx, matcher, resultChan, done, &closeOnce)
		}()
	}
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	return resultChan, nil
}

// worker generates key pairs until one matches or the search stops
func (g *CPUGenerator) worker(ctx context.Context, matcher *nostr.NpubMatcher, resultChan chan<- generator.Result, done chan struct{}, closeOnce *sync.Once) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		default:
			kp, err := g.keys.Generate()
			if err != nil {
				g.log.WithError(err).Error("vanity worker stopped")
				g.fail(err)
				closeOnce.Do(func() { close(done) })
				return
			}

			atomic.AddUint64(&g.attempts, 1)

			npub := kp.Npub()
			if !matcher.Matches(npub) {
				kp.Zero()
				continue
			}

			result := generator.Result{
				Keys: kp,
				Npub: npub,
			}

			select {
			case resultChan <- result:
				closeOnce.Do(func() { close(done) })
			default:
				// Another worker won the race
				kp.Zero()
			}
			return
		}
	}
}
