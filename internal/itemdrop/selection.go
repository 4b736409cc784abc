package itemdrop

import (
	"context"

	"github.com/samber/lo"

	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/logger"
	"github.com/osse101/WorldLoot_Go/internal/random"
	"github.com/osse101/WorldLoot_Go/internal/utils"
	"github.com/osse101/WorldLoot_Go/internal/weighted"
)

// pickGlobalItems draws units candidates, with replacement, from the entries of
// a global group that qualify for level and field.
func (s *service) pickGlobalItems(group *domain.GlobalDropGroup, units, level int, field domain.Field) []domain.GlobalDropItem {
	entries := lo.Filter(group.Items, func(item domain.GlobalDropItem, _ int) bool {
		// No quest context exists for global boxes
		return !item.QuestConstraint &&
			domain.InLevelWindow(level, item.MinLevel, item.MaxLevel) &&
			domain.MapAllowed(item.MapIDs, field.MapID)
	})
	s.shuffle(len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })

	rareRate := s.rates.RareDropRate()
	set := weighted.NewWithCapacity[domain.GlobalDropItem](len(entries))
	for _, entry := range entries {
		_ = set.Add(entry, utils.ScaleWeight(entry.Weight, rareScale(entry.Rarity, rareRate)))
	}

	return draw(set, units, s.rng)
}

func (s *service) createGlobalItems(ctx context.Context, picks []domain.GlobalDropItem) []*domain.ResolvedItem {
	return lo.FilterMap(picks, func(pick domain.GlobalDropItem, _ int) (*domain.ResolvedItem, bool) {
		amount := random.IntRange(s.rng, pick.Quantity.Min, pick.Quantity.Max)
		item := s.CreateItem(ctx, pick.ItemID, pick.Rarity, amount, false)
		return item, item != nil
	})
}

// pickIndividualItems filters the group's entries for the requester and draws
// units of them.
func (s *service) pickIndividualItems(ctx context.Context, group *domain.IndividualDropGroup, units int, requester domain.Requester, level int) []domain.IndividualDropItem {
	entries := lo.Filter(s.genderedEntries(group, requester.Character.Gender), func(item domain.IndividualDropItem, _ int) bool {
		return domain.InLevelWindow(level, item.MinLevel, item.MaxLevel) &&
			domain.MapAllowed(item.MapIDs, requester.Field.MapID) &&
			(item.QuestID <= 0 || requester.HasStartedQuest(item.QuestID))
	})

	jobWeighted := group.SmartDropRate > 0
	job := requester.Character.Job

	// Zero-weight job groups hand out the first entry suited to the job
	if jobWeighted && lo.EveryBy(entries, func(item domain.IndividualDropItem) bool { return item.Weight == 0 }) {
		entry, ok := lo.Find(entries, func(item domain.IndividualDropItem) bool {
			return s.isJobRecommended(item.PrimaryItemID(), job)
		})
		if !ok {
			logger.FromContext(ctx).Debug(LogMsgNoJobRecommendedItem, LogFieldGroup, group.GroupID)
			return nil
		}
		return lo.Times(units, func(int) domain.IndividualDropItem { return entry })
	}

	s.shuffle(len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })

	set := weighted.NewWithCapacity[domain.IndividualDropItem](len(entries))
	for _, entry := range entries {
		weight := entry.Weight
		if jobWeighted {
			weight = s.jobWeight(&entry, job)
		}
		_ = set.Add(entry, weighted.ClampWeight(weight))
	}

	return draw(set, units, s.rng)
}

// resolveSelection handles a pre-narrowed choice: the group still has to roll a
// drop, then exactly the entry at index is created.
func (s *service) resolveSelection(ctx context.Context, requester domain.Requester, level int, group *domain.IndividualDropGroup, index int, isBoss bool) []*domain.ResolvedItem {
	units := s.rollGroup(domain.BoxKindIndividual, group.GroupConditions, group.DropCounts, level, requester.Field, isBoss)
	if units <= 0 {
		return nil
	}

	entries := s.genderedEntries(group, requester.Character.Gender)
	if index >= len(entries) {
		logger.FromContext(ctx).Debug(LogMsgSelectionOutOfRange, LogFieldGroup, group.GroupID, LogFieldIndex, index)
		return nil
	}
	return s.createEntryItems(ctx, &entries[index], &requester.Character, domain.RarityUnset)
}

// genderedEntries drops entries whose primary item cannot be worn by gender
// when the group is gender-smart. Entries with unknown items are dropped too.
// The returned slice must not be mutated when the group is not gender-smart.
func (s *service) genderedEntries(group *domain.IndividualDropGroup, gender domain.Gender) []domain.IndividualDropItem {
	if !group.SmartGender {
		return group.Items
	}
	return lo.Filter(group.Items, func(item domain.IndividualDropItem, _ int) bool {
		meta, ok := s.data.Item(item.PrimaryItemID())
		if !ok {
			return false
		}
		return meta.Limit.Gender == domain.GenderAll || meta.Limit.Gender == gender
	})
}

func (s *service) isJobRecommended(itemID int, job domain.JobCode) bool {
	meta, ok := s.data.Item(itemID)
	if !ok {
		return false
	}
	return meta.IsJobRecommended(job)
}

// jobWeight picks the proper or improper job weight. Unknown items keep their base weight.
func (s *service) jobWeight(entry *domain.IndividualDropItem, job domain.JobCode) int {
	meta, ok := s.data.Item(entry.PrimaryItemID())
	if !ok {
		return entry.Weight
	}
	if meta.IsJobRecommended(job) {
		return entry.ProperJobWeight
	}
	return entry.ImproperJobWeight
}

// rollRarity draws a grade from an entry's rarity table, boosting rare grades
// by the live rare rate. Entries without a table yield RarityUnset.
func (s *service) rollRarity(rarities []domain.RarityWeight) int {
	if len(rarities) == 0 {
		return domain.RarityUnset
	}

	rareRate := s.rates.RareDropRate()
	set := weighted.NewWithCapacity[int](len(rarities))
	for _, r := range rarities {
		_ = set.Add(r.Grade, utils.ScaleWeight(r.Probability, rareScale(r.Grade, rareRate)))
	}

	grade, ok := set.Get(s.rng)
	if !ok {
		return domain.RarityUnset
	}
	return grade
}

func (s *service) shuffle(n int, swap func(i, j int)) {
	if n > 1 {
		s.rng.Shuffle(n, swap)
	}
}

func rareScale(grade int, rareRate float64) float64 {
	if domain.IsRareGrade(grade) {
		return rareRate
	}
	return 1
}

// draw performs n independent draws with replacement
func draw[T any](set *weighted.Set[T], n int, rng random.Source) []T {
	if set.Count() == 0 || n <= 0 {
		return nil
	}
	picks := make([]T, 0, n)
	for i := 0; i < n; i++ {
		if v, ok := set.Get(rng); ok {
			picks = append(picks, v)
		}
	}
	return picks
}
