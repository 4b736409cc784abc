package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/WorldLoot_Go/internal/config"
	"github.com/osse101/WorldLoot_Go/internal/enchant"
	"github.com/osse101/WorldLoot_Go/internal/gamedata"
	"github.com/osse101/WorldLoot_Go/internal/itemdrop"
	"github.com/osse101/WorldLoot_Go/internal/itemstats"
	"github.com/osse101/WorldLoot_Go/internal/logger"
	"github.com/osse101/WorldLoot_Go/internal/random"
	"github.com/osse101/WorldLoot_Go/internal/rates"
	"github.com/osse101/WorldLoot_Go/internal/validation"
)

// Engine holds the drop resolver and the stores it reads from
type Engine struct {
	GameData *gamedata.Store
	Rates    *rates.Store
	Stats    *itemstats.Calculator
	Drops    itemdrop.Service
}

// InitializeEngine loads the game data and wires the drop resolver.
// A nil rng uses the shared process source.
func InitializeEngine(ctx context.Context, cfg *config.Config, rng random.Source) (*Engine, error) {
	dir, err := validation.ResolvePath(cfg.GameDataDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgResolveGameData, err)
	}

	store := gamedata.NewStore(dir, gamedata.NewLoader())
	if err := store.Load(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadGameData, err)
	}

	rateStore, err := rates.NewStore(cfg.Rates)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInitRates, err)
	}

	if rng == nil {
		rng = random.Shared()
	}
	calc := itemstats.NewCalculator(cfg.StatsCacheSize, cfg.StatsCacheTTL, rng)

	// Scaled stat ranges are derived from item metadata and go stale on reload
	store.OnReload(func() {
		calc.Purge()
		logger.Debug(LogMsgStatsCachePurged)
	})

	engine := &Engine{
		GameData: store,
		Rates:    rateStore,
		Stats:    calc,
		Drops:    itemdrop.NewServiceWithSource(store, rateStore, calc, enchant.NewEnchanter(store), rng),
	}

	logger.FromContext(ctx).Info(LogMsgEngineReady, "dir", dir, "rates", rateStore.Snapshot())
	return engine, nil
}
