package itemdrop

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/logger"
	"github.com/osse101/WorldLoot_Go/internal/metrics"
	"github.com/osse101/WorldLoot_Go/internal/random"
	"github.com/osse101/WorldLoot_Go/internal/utils"
)

// CreateItem materializes one item. It returns nil when the item is unknown or
// a currency amount scales down to nothing.
func (s *service) CreateItem(ctx context.Context, itemID, rarity, amount int, rollMax bool) *domain.ResolvedItem {
	meta, ok := s.data.Item(itemID)
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgItemNotFound, LogFieldItem, itemID)
		return nil
	}
	return s.instantiate(ctx, meta, rarity, amount, rollMax)
}

func (s *service) instantiate(ctx context.Context, meta *domain.ItemMetadata, rarity, amount int, rollMax bool) *domain.ResolvedItem {
	if rarity <= 0 {
		rarity = defaultRarity(meta)
	}

	if domain.IsCurrency(meta.ID) && amount > 0 {
		value, ok := s.convertCurrency(meta, amount)
		if !ok {
			logger.FromContext(ctx).Debug(LogMsgCurrencyScaledAway, LogFieldItem, meta.ID, LogFieldAmount, amount)
			return nil
		}
		amount = value
	}

	return &domain.ResolvedItem{
		UID:      uuid.New(),
		ItemID:   meta.ID,
		Rarity:   rarity,
		Amount:   amount,
		Stats:    s.stats.GetStats(meta, rarity, rollMax),
		Socket:   s.stats.GetSockets(meta, rollMax),
		Color:    s.color(meta.Customize),
		Transfer: &domain.ItemTransfer{RemainTrades: meta.Limit.TradableCount},
	}
}

// defaultRarity uses the item's constant rarity when it is a valid grade
func defaultRarity(meta *domain.ItemMetadata) int {
	if meta.Option != nil && meta.Option.ConstantID >= domain.RarityNormal && meta.Option.ConstantID <= domain.RarityAscendant {
		return meta.Option.ConstantID
	}
	return domain.RarityNormal
}

// convertCurrency scales a pouch count by the meso rate and turns it into a
// meso value. The result saturates at math.MaxInt32.
func (s *service) convertCurrency(meta *domain.ItemMetadata, amount int) (int, bool) {
	scaled := utils.RoundToInt(float64(amount) * s.rates.MesoDropRate())
	if scaled <= 0 {
		return 0, false
	}

	price, ok := meta.SellPrice()
	if !ok {
		price = 1
	}

	total := utils.SaturatingMulInt32(int64(scaled), price)
	metrics.MesoConverted.Add(float64(total))
	return total, true
}

// color resolves the cosmetic color of an item. Palette 0 or an unknown palette
// leaves the item uncolored.
func (s *service) color(customize *domain.ItemCustomize) *domain.EquipColor {
	if customize == nil || customize.ColorPalette == 0 {
		return nil
	}
	entries, ok := s.data.ColorPalette(customize.ColorPalette)
	if !ok || len(entries) == 0 {
		return nil
	}

	if customize.DefaultColorIndex < 0 {
		return newEquipColor(entries[s.rng.IntN(len(entries))], customize.ColorPalette)
	}

	entry, ok := lo.Find(entries, func(e domain.ColorPaletteEntry) bool {
		return e.Index == customize.DefaultColorIndex
	})
	if !ok {
		return nil
	}
	return newEquipColor(entry, customize.ColorPalette)
}

func newEquipColor(entry domain.ColorPaletteEntry, palette int) *domain.EquipColor {
	return &domain.EquipColor{
		Primary:   entry.Primary,
		Secondary: entry.Secondary,
		Tertiary:  entry.Tertiary,
		Palette:   palette,
		Index:     entry.Index,
	}
}

func (s *service) createEntryItemsFor(ctx context.Context, picks []domain.IndividualDropItem, character *domain.Character) []*domain.ResolvedItem {
	return lo.FlatMap(picks, func(pick domain.IndividualDropItem, _ int) []*domain.ResolvedItem {
		return s.createEntryItems(ctx, &pick, character, domain.RarityUnset)
	})
}

// createEntryItems creates every linked item of an entry with one shared
// amount and grade, then applies the entry's flags. A nil character skips binding.
func (s *service) createEntryItems(ctx context.Context, entry *domain.IndividualDropItem, character *domain.Character, rarity int) []*domain.ResolvedItem {
	amount := random.IntRange(s.rng, entry.Quantity.Min, entry.Quantity.Max)
	if rarity <= 0 {
		rarity = s.rollRarity(entry.Rarities)
	}

	items := make([]*domain.ResolvedItem, 0, len(entry.ItemIDs))
	for _, itemID := range entry.ItemIDs {
		meta, ok := s.data.Item(itemID)
		if !ok {
			logger.FromContext(ctx).Debug(LogMsgItemNotFound, LogFieldItem, itemID)
			continue
		}
		item := s.instantiate(ctx, meta, rarity, amount, false)
		if item == nil {
			continue
		}
		s.applyFlags(item, meta, entry, character)
		items = append(items, item)
	}
	return items
}

func (s *service) applyFlags(item *domain.ResolvedItem, meta *domain.ItemMetadata, entry *domain.IndividualDropItem, character *domain.Character) {
	if entry.DeductTradeCount && item.Transfer.RemainTrades > 0 {
		item.Transfer.RemainTrades--
	}
	if entry.DeductRepackLimit {
		item.Transfer.RepackageCount++
	}
	if entry.Bind && character != nil {
		item.Transfer.Bind(character)
	}
	if entry.EnchantLevel > 0 {
		if enchant, ok := s.enchanter.GetEnchant(meta, entry.EnchantLevel); ok {
			item.Enchant = enchant
		}
	}
}
