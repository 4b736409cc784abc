package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/WorldLoot_Go/internal/domain"
)

type MockDropService struct {
	mock.Mock
}

func (m *MockDropService) ResolveGlobalBox(ctx context.Context, field domain.Field, boxID, level int, isBoss bool) []*domain.ResolvedItem {
	args := m.Called(ctx, field, boxID, level, isBoss)
	return items(args.Get(0))
}

func (m *MockDropService) ResolveIndividualBox(ctx context.Context, requester domain.Requester, level, boxID, index, groupID int, isBoss bool) []*domain.ResolvedItem {
	args := m.Called(ctx, requester, level, boxID, index, groupID, isBoss)
	return items(args.Get(0))
}

func (m *MockDropService) ResolveIndividualBoxByRarity(ctx context.Context, field domain.Field, boxID, rarity int) []*domain.ResolvedItem {
	args := m.Called(ctx, field, boxID, rarity)
	return items(args.Get(0))
}

func (m *MockDropService) CreateItem(ctx context.Context, itemID, rarity, amount int, rollMax bool) *domain.ResolvedItem {
	args := m.Called(ctx, itemID, rarity, amount, rollMax)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.ResolvedItem)
}

func items(v any) []*domain.ResolvedItem {
	if v == nil {
		return nil
	}
	return v.([]*domain.ResolvedItem)
}

// fakeCatalog knows a fixed set of box ids
type fakeCatalog struct {
	global     map[int]bool
	individual map[int]bool
}

func (c fakeCatalog) GlobalDropBox(boxID int) (*domain.GlobalDropBox, bool) {
	if !c.global[boxID] {
		return nil, false
	}
	return &domain.GlobalDropBox{ID: boxID}, true
}

func (c fakeCatalog) IndividualDropBox(boxID int) (*domain.IndividualDropBox, bool) {
	if !c.individual[boxID] {
		return nil, false
	}
	return &domain.IndividualDropBox{ID: boxID}, true
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, kind domain.BoxKind, boxID int, characterID int64, items []*domain.ResolvedItem) {
	m.Called(ctx, kind, boxID, characterID, items)
}

type MockRateStore struct {
	mock.Mock
}

func (m *MockRateStore) Snapshot() domain.Rates {
	args := m.Called()
	return args.Get(0).(domain.Rates)
}

func (m *MockRateStore) Set(key string, value float64) error {
	args := m.Called(key, value)
	return args.Error(0)
}

type MockReloader struct {
	mock.Mock
}

func (m *MockReloader) Reload(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockDropLogReader struct {
	mock.Mock
}

func (m *MockDropLogReader) ListDrops(ctx context.Context, characterID int64, limit int) ([]domain.DropRecord, error) {
	args := m.Called(ctx, characterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DropRecord), args.Error(1)
}
