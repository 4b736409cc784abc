package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/osse101/WorldLoot_Go/internal/config"
	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/enchant"
	"github.com/osse101/WorldLoot_Go/internal/gamedata"
	"github.com/osse101/WorldLoot_Go/internal/itemdrop"
	"github.com/osse101/WorldLoot_Go/internal/itemstats"
	"github.com/osse101/WorldLoot_Go/internal/logger"
	"github.com/osse101/WorldLoot_Go/internal/random"
	"github.com/osse101/WorldLoot_Go/internal/rates"
	"github.com/osse101/WorldLoot_Go/internal/validation"
)

func main() {
	dir := flag.String("dir", config.DefaultGameDataDir, "Game data directory")
	kind := flag.String("kind", string(domain.BoxKindGlobal), "Box kind: global, individual or individual_rarity")
	boxID := flag.Int("box", 0, "Drop box id")
	runs := flag.Int("runs", 10000, "Number of resolutions")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "Parallel workers")
	seed := flag.Uint64("seed", 1, "Base random seed")
	level := flag.Int("level", 50, "Monster or character level")
	boss := flag.Bool("boss", false, "Resolve as a boss kill")
	job := flag.Int("job", int(domain.JobNone), "Requester job code")
	gender := flag.Int("gender", int(domain.GenderMale), "Requester gender (0 male, 1 female)")
	rarity := flag.Int("rarity", domain.RarityEpic, "Fixed rarity for -kind individual_rarity")
	globalRate := flag.Float64("global-rate", config.DefaultDropRate, "Global drop rate multiplier")
	bossRate := flag.Float64("boss-rate", config.DefaultDropRate, "Boss drop rate multiplier")
	rareRate := flag.Float64("rare-rate", config.DefaultDropRate, "Rare drop rate multiplier")
	mesoRate := flag.Float64("meso-rate", config.DefaultDropRate, "Meso drop rate multiplier")
	flag.Parse()

	logger.InitLogger(logger.NewConfig(logger.LogLevelWarn, logger.LogFormatText, "dropsim", config.DefaultVersion, "dev", false))

	if *boxID <= 0 {
		log.Fatal("-box is required")
	}
	boxKind := domain.BoxKind(*kind)
	switch boxKind {
	case domain.BoxKindGlobal, domain.BoxKindIndividual, domain.BoxKindRarity:
	default:
		log.Fatalf("unknown -kind %q", *kind)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	resolved, err := validation.ResolvePath(*dir)
	if err != nil {
		log.Fatalf("Failed to resolve game data directory: %v", err)
	}
	store := gamedata.NewStore(resolved, gamedata.NewLoader())
	if err := store.Load(ctx); err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	lootRates := domain.Rates{
		GlobalDropRate: *globalRate,
		BossDropRate:   *bossRate,
		RareDropRate:   *rareRate,
		MesoDropRate:   *mesoRate,
	}
	rateStore, err := rates.NewStore(lootRates)
	if err != nil {
		log.Fatalf("Invalid rates: %v", err)
	}

	sim := simulation{
		Kind:    boxKind,
		BoxID:   *boxID,
		Runs:    *runs,
		Workers: *workers,
		Seed:    *seed,
		Level:   *level,
		IsBoss:  *boss,
		Rarity:  *rarity,
		Requester: domain.Requester{
			Character: domain.Character{Job: domain.JobCode(*job), Gender: domain.Gender(*gender)},
			Quests:    domain.NewActiveQuests(),
		},
	}

	ench := enchant.NewEnchanter(store)
	t, err := run(ctx, sim, func(rng random.Source) itemdrop.Service {
		calc := itemstats.NewCalculator(itemstats.DefaultCacheSize, 0, rng)
		return itemdrop.NewServiceWithSource(store, rateStore, calc, ench, rng)
	})
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	report(os.Stdout, sim, t, func(itemID int) string {
		if meta, ok := store.Item(itemID); ok {
			return meta.Name
		}
		return "?"
	})
}
