// Package itemdrop resolves drop boxes into freshly created items.
package itemdrop

import (
	"context"
	"time"

	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/logger"
	"github.com/osse101/WorldLoot_Go/internal/metrics"
	"github.com/osse101/WorldLoot_Go/internal/random"
	"github.com/osse101/WorldLoot_Go/internal/rates"
)

// DataSource is the read-only game data the resolver queries
type DataSource interface {
	Item(itemID int) (*domain.ItemMetadata, bool)
	GlobalDropBox(boxID int) (*domain.GlobalDropBox, bool)
	IndividualDropBox(boxID int) (*domain.IndividualDropBox, bool)
	ColorPalette(paletteID int) ([]domain.ColorPaletteEntry, bool)
}

// StatsGenerator rolls stat blocks and socket layouts
type StatsGenerator interface {
	GetStats(meta *domain.ItemMetadata, rarity int, rollMax bool) *domain.ItemStats
	GetSockets(meta *domain.ItemMetadata, rollMax bool) *domain.ItemSocket
}

// Enchanter builds the enchant block for a target level
type Enchanter interface {
	GetEnchant(meta *domain.ItemMetadata, level int) (*domain.ItemEnchant, bool)
}

// Service resolves drop boxes. Misses are empty results, never errors.
type Service interface {
	ResolveGlobalBox(ctx context.Context, field domain.Field, boxID, level int, isBoss bool) []*domain.ResolvedItem
	ResolveIndividualBox(ctx context.Context, requester domain.Requester, level, boxID, index, groupID int, isBoss bool) []*domain.ResolvedItem
	ResolveIndividualBoxByRarity(ctx context.Context, field domain.Field, boxID, rarity int) []*domain.ResolvedItem
	CreateItem(ctx context.Context, itemID, rarity, amount int, rollMax bool) *domain.ResolvedItem
}

type service struct {
	data      DataSource
	rates     rates.Provider
	stats     StatsGenerator
	enchanter Enchanter
	rng       random.Source // Injectable for testing
}

// NewService creates a drop resolver using the shared random source
func NewService(data DataSource, rateProvider rates.Provider, stats StatsGenerator, enchanter Enchanter) Service {
	return NewServiceWithSource(data, rateProvider, stats, enchanter, random.Shared())
}

// NewServiceWithSource creates a drop resolver drawing from rng
func NewServiceWithSource(data DataSource, rateProvider rates.Provider, stats StatsGenerator, enchanter Enchanter, rng random.Source) Service {
	return &service{
		data:      data,
		rates:     rateProvider,
		stats:     stats,
		enchanter: enchanter,
		rng:       rng,
	}
}

// ResolveGlobalBox evaluates every group of a global box against level, boss
// flag and field. No per-character filtering applies.
func (s *service) ResolveGlobalBox(ctx context.Context, field domain.Field, boxID, level int, isBoss bool) []*domain.ResolvedItem {
	defer observe(domain.BoxKindGlobal, time.Now())

	box, ok := s.data.GlobalDropBox(boxID)
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgBoxNotFound, LogFieldBox, boxID, LogFieldKind, domain.BoxKindGlobal)
		return nil
	}

	var results []*domain.ResolvedItem
	for i := range box.Groups {
		group := &box.Groups[i]
		units := s.rollGroup(domain.BoxKindGlobal, group.GroupConditions, group.DropCounts, level, field, isBoss)
		if units <= 0 {
			continue
		}
		picks := s.pickGlobalItems(group, units, level, field)
		results = append(results, s.createGlobalItems(ctx, picks)...)
	}

	return finish(domain.BoxKindGlobal, results)
}

// ResolveIndividualBox evaluates an individual box for one character. With
// index >= 0 and an existing groupID only that group's entry at index is
// resolved; otherwise every group is evaluated.
func (s *service) ResolveIndividualBox(ctx context.Context, requester domain.Requester, level, boxID, index, groupID int, isBoss bool) []*domain.ResolvedItem {
	defer observe(domain.BoxKindIndividual, time.Now())

	box, ok := s.data.IndividualDropBox(boxID)
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgBoxNotFound, LogFieldBox, boxID, LogFieldKind, domain.BoxKindIndividual)
		return nil
	}

	if index >= 0 && groupID > 0 {
		if group, ok := box.Group(groupID); ok {
			return finish(domain.BoxKindIndividual, s.resolveSelection(ctx, requester, level, group, index, isBoss))
		}
	}

	var results []*domain.ResolvedItem
	for i := range box.Groups {
		group := &box.Groups[i]
		units := s.rollGroup(domain.BoxKindIndividual, group.GroupConditions, group.DropCounts, level, requester.Field, isBoss)
		if units <= 0 {
			continue
		}
		picks := s.pickIndividualItems(ctx, group, units, requester, level)
		results = append(results, s.createEntryItemsFor(ctx, picks, &requester.Character)...)
	}

	return finish(domain.BoxKindIndividual, results)
}

// ResolveIndividualBoxByRarity creates every map-eligible entry of the box at a
// fixed rarity without probability gating. rarity <= 0 rolls each entry's table.
func (s *service) ResolveIndividualBoxByRarity(ctx context.Context, field domain.Field, boxID, rarity int) []*domain.ResolvedItem {
	defer observe(domain.BoxKindRarity, time.Now())

	box, ok := s.data.IndividualDropBox(boxID)
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgBoxNotFound, LogFieldBox, boxID, LogFieldKind, domain.BoxKindRarity)
		return nil
	}

	var results []*domain.ResolvedItem
	for _, group := range box.Groups {
		for i := range group.Items {
			entry := &group.Items[i]
			if !domain.MapAllowed(entry.MapIDs, field.MapID) {
				continue
			}
			results = append(results, s.createEntryItems(ctx, entry, nil, rarity)...)
		}
	}

	return finish(domain.BoxKindRarity, results)
}

func observe(kind domain.BoxKind, start time.Time) {
	metrics.DropResolutions.WithLabelValues(string(kind)).Inc()
	metrics.ResolutionDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
}

func finish(kind domain.BoxKind, results []*domain.ResolvedItem) []*domain.ResolvedItem {
	if len(results) > 0 {
		metrics.DroppedItems.WithLabelValues(string(kind)).Add(float64(len(results)))
	}
	return results
}
