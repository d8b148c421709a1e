package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

const (
	// DefaultKeyPrefix matches the record keys consumers already parse:
	// <prefix>-q<index>, index 1-based.
	DefaultKeyPrefix = "sdku-v1"

	// puzzleAttempts is how many fresh complete grids a single puzzle
	// may burn through when carving stalls.
	puzzleAttempts = 4
)

// SetBuilder assembles puzzle sets, fanning generation out across a
// bounded worker pool. Puzzles share no state: each derives its own
// rand source from Seed and its 1-based index, so a fixed seed
// reproduces the same set regardless of scheduling, and set order
// always follows the request index rather than completion order.
type SetBuilder struct {
	Gen     ports.Generator
	Seed    int64
	Workers int // <=0 means runtime.NumCPU()
	Prefix  string
}

func NewSetBuilder(g ports.Generator, seed int64) *SetBuilder {
	return &SetBuilder{Gen: g, Seed: seed, Prefix: DefaultKeyPrefix}
}

// Key returns the set key for the 1-based puzzle index.
func (b *SetBuilder) Key(index int) string {
	prefix := b.Prefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return fmt.Sprintf("%s-q%d", prefix, index)
}

// Build generates count puzzles at difficulty d. The caller validates
// count and d; Build assumes both are sane. On the first failure the
// remaining work is canceled and no partial set is returned.
func (b *SetBuilder) Build(ctx context.Context, count int, d domain.Difficulty) (*domain.Set, ports.Stats, error) {
	start := time.Now()
	workers := b.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > count {
		workers = count
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		index  int
		puzzle domain.Puzzle
		err    error
	}
	jobs := make(chan int)
	results := make(chan result, count)
	var nodes atomic.Int64

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				p, st, err := b.buildOne(ctx, index, d)
				nodes.Add(int64(st.Nodes))
				results <- result{index: index, puzzle: p, err: err}
			}
		}()
	}
	go func() {
		defer close(jobs)
		for i := 1; i <= count; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	puzzles := make([]domain.Puzzle, count)
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
				cancel()
			}
			continue
		}
		puzzles[res.index-1] = res.puzzle
	}
	st := ports.Stats{Nodes: int(nodes.Load()), Duration: time.Since(start)}
	if firstErr != nil {
		return nil, st, firstErr
	}
	// Jobs skipped by cancellation produce no result at all.
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}

	set := domain.NewSet()
	for i, p := range puzzles {
		if err := set.Add(b.Key(i+1), p); err != nil {
			return nil, st, err
		}
	}
	return set, st, nil
}

// buildOne produces puzzle number index: a fresh complete grid, carved
// at difficulty d. A stalled carve retries on a new complete grid up to
// puzzleAttempts times before surfacing the stall.
func (b *SetBuilder) buildOne(ctx context.Context, index int, d domain.Difficulty) (domain.Puzzle, ports.Stats, error) {
	rng := rand.New(rand.NewSource(b.Seed + int64(index)))
	var st ports.Stats
	var lastErr error
	for attempt := 0; attempt < puzzleAttempts; attempt++ {
		full, cst, err := b.Gen.Complete(ctx, rng)
		st.Nodes += cst.Nodes
		if err != nil {
			return domain.Puzzle{}, st, err
		}
		question, kst, err := b.Gen.Carve(ctx, rng, full, d)
		st.Nodes += kst.Nodes
		if err != nil {
			if errors.Is(err, ErrCarveStalled) {
				lastErr = err
				continue
			}
			return domain.Puzzle{}, st, err
		}
		return domain.Puzzle{Question: question, Answer: full, Difficulty: d}, st, nil
	}
	return domain.Puzzle{}, st, lastErr
}
