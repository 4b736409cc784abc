package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/itemdrop"
	"github.com/osse101/WorldLoot_Go/internal/random"
)

// simulation describes one batch of resolutions of the same box
type simulation struct {
	Kind      domain.BoxKind
	BoxID     int
	Runs      int
	Workers   int
	Seed      uint64
	Level     int
	IsBoss    bool
	Requester domain.Requester
	Rarity    int
}

// tallyKey groups identical outcomes
type tallyKey struct {
	ItemID int
	Rarity int
}

// tally counts drops across runs
type tally struct {
	Runs   int
	Empty  int
	Items  map[tallyKey]int
	Amount map[tallyKey]int64
}

func newTally() *tally {
	return &tally{
		Items:  make(map[tallyKey]int),
		Amount: make(map[tallyKey]int64),
	}
}

func (t *tally) add(items []*domain.ResolvedItem) {
	t.Runs++
	if len(items) == 0 {
		t.Empty++
		return
	}
	for _, item := range items {
		k := tallyKey{ItemID: item.ItemID, Rarity: item.Rarity}
		t.Items[k]++
		t.Amount[k] += int64(item.Amount)
	}
}

func (t *tally) merge(other *tally) {
	t.Runs += other.Runs
	t.Empty += other.Empty
	for k, v := range other.Items {
		t.Items[k] += v
	}
	for k, v := range other.Amount {
		t.Amount[k] += v
	}
}

// newResolver builds a resolver with its own random source
type newResolver func(rng random.Source) itemdrop.Service

// run splits the runs across workers. Worker i is seeded with Seed+i so a
// batch is reproducible for a fixed worker count.
func run(ctx context.Context, sim simulation, build newResolver) (*tally, error) {
	if sim.Runs <= 0 {
		return nil, fmt.Errorf("runs must be positive, got %d", sim.Runs)
	}
	workers := max(1, min(sim.Workers, sim.Runs))

	var (
		mu    sync.Mutex
		total = newTally()
	)

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		share := sim.Runs / workers
		if w < sim.Runs%workers {
			share++
		}
		svc := build(random.NewSeeded(sim.Seed + uint64(w)))

		eg.Go(func() error {
			local := newTally()
			for i := 0; i < share; i++ {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				local.add(resolve(ctx, svc, sim))
			}
			mu.Lock()
			total.merge(local)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return total, nil
}

func resolve(ctx context.Context, svc itemdrop.Service, sim simulation) []*domain.ResolvedItem {
	switch sim.Kind {
	case domain.BoxKindIndividual:
		return svc.ResolveIndividualBox(ctx, sim.Requester, sim.Level, sim.BoxID, -1, -1, sim.IsBoss)
	case domain.BoxKindRarity:
		return svc.ResolveIndividualBoxByRarity(ctx, sim.Requester.Field, sim.BoxID, sim.Rarity)
	default:
		return svc.ResolveGlobalBox(ctx, sim.Requester.Field, sim.BoxID, sim.Level, sim.IsBoss)
	}
}

// report prints per-item frequencies, most frequent first
func report(w io.Writer, sim simulation, t *tally, names func(itemID int) string) {
	p := message.NewPrinter(language.English)
	title := cases.Title(language.English)

	p.Fprintf(w, "%s box %s: %d runs, %d empty (%.2f%%)\n",
		title.String(string(sim.Kind)), strconv.Itoa(sim.BoxID), t.Runs, t.Empty, percent(t.Empty, t.Runs))

	keys := lo.Keys(t.Items)
	slices.SortFunc(keys, func(a, b tallyKey) int {
		if d := t.Items[b] - t.Items[a]; d != 0 {
			return d
		}
		if a.ItemID != b.ItemID {
			return a.ItemID - b.ItemID
		}
		return a.Rarity - b.Rarity
	})

	for _, k := range keys {
		count := t.Items[k]
		// ids are printed verbatim, counts with digit grouping
		p.Fprintf(w, "  %-10s %-24s rarity %d  %10d drops  %7.3f%%  avg amount %.2f\n",
			strconv.Itoa(k.ItemID), names(k.ItemID), k.Rarity, count,
			percent(count, t.Runs), float64(t.Amount[k])/float64(count))
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
