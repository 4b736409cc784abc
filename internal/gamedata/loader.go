package gamedata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/logger"
	"github.com/osse101/WorldLoot_Go/internal/validation"
)

// ItemsConfig is the JSON layout of items.json
type ItemsConfig struct {
	Version string                `json:"version"`
	Items   []domain.ItemMetadata `json:"items"`
}

// DropsConfig is the JSON layout of drops.json
type DropsConfig struct {
	Version         string                     `json:"version"`
	GlobalBoxes     []domain.GlobalDropBox     `json:"global_boxes"`
	IndividualBoxes []domain.IndividualDropBox `json:"individual_boxes"`
}

// TablesConfig is the JSON layout of tables.json
type TablesConfig struct {
	Version        string                 `json:"version"`
	ColorPalettes  []domain.ColorPalette  `json:"color_palettes"`
	EnchantOptions []domain.EnchantOption `json:"enchant_options"`
}

// Loader reads and validates the game data directory
type Loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader
func NewLoader() *Loader {
	return &Loader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads the three game data files in parallel and builds indexed Tables
func (l *Loader) Load(ctx context.Context, dir string) (*Tables, error) {
	var (
		items  ItemsConfig
		drops  DropsConfig
		tables TablesConfig
	)

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return l.loadFile(filepath.Join(dir, ItemsFile), ItemsSchemaPath, &items)
	})
	eg.Go(func() error {
		return l.loadFile(filepath.Join(dir, DropsFile), DropsSchemaPath, &drops)
	})
	eg.Go(func() error {
		return l.loadFile(filepath.Join(dir, TablesFile), TablesSchemaPath, &tables)
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	t, err := Build(&items, &drops, &tables)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgGameDataLoaded, LogFieldDir, dir, LogFieldCounts, t.Counts())
	checkReferences(ctx, t)
	return t, nil
}

func (l *Loader) loadFile(path, schemaPath string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrContextFailedToReadFile, path, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, schemaPath); err != nil {
		return fmt.Errorf("%s for %s: %w", ErrContextSchemaValidation, path, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: %w", ErrContextFailedToParseFile, path, err)
	}
	return nil
}

// Build validates decoded configs and indexes them by id
func Build(items *ItemsConfig, drops *DropsConfig, tables *TablesConfig) (*Tables, error) {
	if err := validate(items, drops, tables); err != nil {
		return nil, err
	}

	t := &Tables{
		items:           make(map[int]*domain.ItemMetadata, len(items.Items)),
		globalBoxes:     make(map[int]*domain.GlobalDropBox, len(drops.GlobalBoxes)),
		individualBoxes: make(map[int]*domain.IndividualDropBox, len(drops.IndividualBoxes)),
		palettes:        make(map[int][]domain.ColorPaletteEntry, len(tables.ColorPalettes)),
		enchants:        lo.KeyBy(tables.EnchantOptions, func(o domain.EnchantOption) int { return o.Level }),
	}

	for i := range items.Items {
		t.items[items.Items[i].ID] = &items.Items[i]
	}
	for i := range drops.GlobalBoxes {
		t.globalBoxes[drops.GlobalBoxes[i].ID] = &drops.GlobalBoxes[i]
	}
	for i := range drops.IndividualBoxes {
		t.individualBoxes[drops.IndividualBoxes[i].ID] = &drops.IndividualBoxes[i]
	}
	for _, palette := range tables.ColorPalettes {
		entries := slices.Clone(palette.Entries)
		slices.SortFunc(entries, func(a, b domain.ColorPaletteEntry) int { return a.Index - b.Index })
		t.palettes[palette.ID] = entries
	}

	return t, nil
}

func validate(items *ItemsConfig, drops *DropsConfig, tables *TablesConfig) error {
	if dup := lo.FindDuplicatesBy(items.Items, func(m domain.ItemMetadata) int { return m.ID }); len(dup) > 0 {
		return fmt.Errorf("%w: duplicate item id %d", domain.ErrInvalidGameData, dup[0].ID)
	}
	if dup := lo.FindDuplicatesBy(drops.GlobalBoxes, func(b domain.GlobalDropBox) int { return b.ID }); len(dup) > 0 {
		return fmt.Errorf("%w: duplicate global box id %d", domain.ErrInvalidGameData, dup[0].ID)
	}
	if dup := lo.FindDuplicatesBy(drops.IndividualBoxes, func(b domain.IndividualDropBox) int { return b.ID }); len(dup) > 0 {
		return fmt.Errorf("%w: duplicate individual box id %d", domain.ErrInvalidGameData, dup[0].ID)
	}
	if dup := lo.FindDuplicatesBy(tables.ColorPalettes, func(p domain.ColorPalette) int { return p.ID }); len(dup) > 0 {
		return fmt.Errorf("%w: duplicate palette id %d", domain.ErrInvalidGameData, dup[0].ID)
	}

	for _, box := range drops.GlobalBoxes {
		for _, group := range box.Groups {
			if err := validateDropCounts(box.ID, group.GroupID, group.DropCounts); err != nil {
				return err
			}
			for _, item := range group.Items {
				if item.Weight < 0 {
					return fmt.Errorf("%w: global box %d group %d item %d has negative weight", domain.ErrInvalidGameData, box.ID, group.GroupID, item.ItemID)
				}
				if err := validateQuantity(box.ID, group.GroupID, item.Quantity); err != nil {
					return err
				}
			}
		}
	}

	for _, box := range drops.IndividualBoxes {
		if dup := lo.FindDuplicatesBy(box.Groups, func(g domain.IndividualDropGroup) int { return g.GroupID }); len(dup) > 0 {
			return fmt.Errorf("%w: individual box %d has duplicate group %d", domain.ErrInvalidGameData, box.ID, dup[0].GroupID)
		}
		for _, group := range box.Groups {
			if err := validateDropCounts(box.ID, group.GroupID, group.DropCounts); err != nil {
				return err
			}
			for _, item := range group.Items {
				if len(item.ItemIDs) == 0 {
					return fmt.Errorf("%w: individual box %d group %d has an entry without item ids", domain.ErrInvalidGameData, box.ID, group.GroupID)
				}
				if item.Weight < 0 || item.ProperJobWeight < 0 || item.ImproperJobWeight < 0 {
					return fmt.Errorf("%w: individual box %d group %d item %d has negative weight", domain.ErrInvalidGameData, box.ID, group.GroupID, item.PrimaryItemID())
				}
				if err := validateQuantity(box.ID, group.GroupID, item.Quantity); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func validateDropCounts(boxID, groupID int, counts []domain.DropCount) error {
	for _, dc := range counts {
		if dc.Probability < 0 {
			return fmt.Errorf("%w: box %d group %d has negative drop-count probability", domain.ErrInvalidGameData, boxID, groupID)
		}
	}
	return nil
}

func validateQuantity(boxID, groupID int, q domain.QuantityRange) error {
	if q.Min < 0 || q.Max < q.Min {
		return fmt.Errorf("%w: box %d group %d has invalid quantity range [%d,%d]", domain.ErrInvalidGameData, boxID, groupID, q.Min, q.Max)
	}
	return nil
}

// checkReferences warns about drop entries pointing at unknown items. They are
// skipped at resolution time, so this is not fatal.
func checkReferences(ctx context.Context, t *Tables) {
	log := logger.FromContext(ctx)

	for _, box := range t.globalBoxes {
		for _, group := range box.Groups {
			for _, item := range group.Items {
				if _, ok := t.items[item.ItemID]; !ok {
					log.Warn(LogMsgUnknownDropItem, LogFieldBox, box.ID, LogFieldGroup, group.GroupID, LogFieldItem, item.ItemID)
				}
			}
		}
	}
	for _, box := range t.individualBoxes {
		for _, group := range box.Groups {
			for _, item := range group.Items {
				for _, id := range item.ItemIDs {
					if _, ok := t.items[id]; !ok {
						log.Warn(LogMsgUnknownDropItem, LogFieldBox, box.ID, LogFieldGroup, group.GroupID, LogFieldItem, id)
					}
				}
			}
		}
	}
}
