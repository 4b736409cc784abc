package gamedata

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/logger"
	"github.com/osse101/WorldLoot_Go/internal/metrics"
)

// TablesLoader loads a complete set of tables from a directory
type TablesLoader interface {
	Load(ctx context.Context, dir string) (*Tables, error)
}

// Store serves lookups from the current Tables and swaps them atomically on reload.
// Lookups never block on a reload.
type Store struct {
	dir    string
	loader TablesLoader
	tables atomic.Pointer[Tables]

	reloadMu sync.Mutex
	hooksMu  sync.RWMutex
	hooks    []func()
}

// NewStore creates a Store reading from dir. Call Load before serving lookups.
func NewStore(dir string, loader TablesLoader) *Store {
	s := &Store{dir: dir, loader: loader}
	s.tables.Store(&Tables{})
	return s
}

// NewStoreFromTables creates a Store already holding t. Reload is unavailable
// unless a loader is supplied.
func NewStoreFromTables(t *Tables, loader TablesLoader) *Store {
	s := &Store{loader: loader}
	s.tables.Store(t)
	return s
}

// Load performs the initial load
func (s *Store) Load(ctx context.Context) error {
	return s.swap(ctx, false)
}

// Reload re-reads the directory. On failure the previous tables stay in place.
func (s *Store) Reload(ctx context.Context) error {
	return s.swap(ctx, true)
}

// OnReload registers fn to run after every successful reload
func (s *Store) OnReload(fn func()) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.hooks = append(s.hooks, fn)
}

func (s *Store) swap(ctx context.Context, isReload bool) error {
	if s.loader == nil {
		return fmt.Errorf("%w: no loader configured", domain.ErrInvalidGameData)
	}

	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	t, err := s.loader.Load(ctx, s.dir)
	if err != nil {
		if isReload {
			metrics.GameDataReloads.WithLabelValues(metrics.OutcomeFailure).Inc()
		}
		return err
	}
	s.tables.Store(t)

	if !isReload {
		return nil
	}

	metrics.GameDataReloads.WithLabelValues(metrics.OutcomeSuccess).Inc()
	logger.FromContext(ctx).Info(LogMsgGameDataReloaded, LogFieldDir, s.dir, LogFieldCounts, t.Counts())

	s.hooksMu.RLock()
	hooks := append([]func(){}, s.hooks...)
	s.hooksMu.RUnlock()
	for _, fn := range hooks {
		fn()
	}
	return nil
}

// Current returns the tables in effect right now
func (s *Store) Current() *Tables {
	return s.tables.Load()
}

// Item returns item metadata by id
func (s *Store) Item(itemID int) (*domain.ItemMetadata, bool) {
	return s.Current().Item(itemID)
}

// GlobalDropBox returns a global box by id
func (s *Store) GlobalDropBox(boxID int) (*domain.GlobalDropBox, bool) {
	return s.Current().GlobalDropBox(boxID)
}

// IndividualDropBox returns an individual box by id
func (s *Store) IndividualDropBox(boxID int) (*domain.IndividualDropBox, bool) {
	return s.Current().IndividualDropBox(boxID)
}

// ColorPalette returns the ordered entries of a palette
func (s *Store) ColorPalette(paletteID int) ([]domain.ColorPaletteEntry, bool) {
	return s.Current().ColorPalette(paletteID)
}

// EnchantOption returns the bonus table of an enchant level
func (s *Store) EnchantOption(level int) (domain.EnchantOption, bool) {
	return s.Current().EnchantOption(level)
}

// CheckHealth reports an error until a non-empty item table has been loaded
func (s *Store) CheckHealth(context.Context) error {
	if s.Current().ItemCount() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidGameData, ErrMsgNoItemsLoaded)
	}
	return nil
}
