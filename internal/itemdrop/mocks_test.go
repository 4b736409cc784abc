package itemdrop

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/random"
	"github.com/osse101/WorldLoot_Go/internal/rates"
)

// MockStatsGenerator is a testify mock for StatsGenerator
type MockStatsGenerator struct {
	mock.Mock
}

func (m *MockStatsGenerator) GetStats(meta *domain.ItemMetadata, rarity int, rollMax bool) *domain.ItemStats {
	args := m.Called(meta, rarity, rollMax)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.ItemStats)
}

func (m *MockStatsGenerator) GetSockets(meta *domain.ItemMetadata, rollMax bool) *domain.ItemSocket {
	args := m.Called(meta, rollMax)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.ItemSocket)
}

// MockEnchanter is a testify mock for Enchanter
type MockEnchanter struct {
	mock.Mock
}

func (m *MockEnchanter) GetEnchant(meta *domain.ItemMetadata, level int) (*domain.ItemEnchant, bool) {
	args := m.Called(meta, level)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.ItemEnchant), args.Bool(1)
}

// stubStats returns empty blocks without recording calls, for hot loops
type stubStats struct{}

func (stubStats) GetStats(*domain.ItemMetadata, int, bool) *domain.ItemStats { return nil }
func (stubStats) GetSockets(*domain.ItemMetadata, bool) *domain.ItemSocket   { return nil }

type stubEnchanter struct{}

func (stubEnchanter) GetEnchant(_ *domain.ItemMetadata, level int) (*domain.ItemEnchant, bool) {
	return &domain.ItemEnchant{Level: level}, true
}

// scriptedSource replays queued values. Exhausted queues yield 0.
type scriptedSource struct {
	mu         sync.Mutex
	floats     []float64
	ints       []int
	floatCalls int
	intCalls   int
}

func (s *scriptedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floatCalls++
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intCalls++
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Shuffle(int, func(i, j int)) {}

// fakeData is an in-memory DataSource
type fakeData struct {
	items      map[int]*domain.ItemMetadata
	global     map[int]*domain.GlobalDropBox
	individual map[int]*domain.IndividualDropBox
	palettes   map[int][]domain.ColorPaletteEntry
}

func newFakeData() *fakeData {
	return &fakeData{
		items:      make(map[int]*domain.ItemMetadata),
		global:     make(map[int]*domain.GlobalDropBox),
		individual: make(map[int]*domain.IndividualDropBox),
		palettes:   make(map[int][]domain.ColorPaletteEntry),
	}
}

func (f *fakeData) withItems(items ...domain.ItemMetadata) *fakeData {
	for i := range items {
		f.items[items[i].ID] = &items[i]
	}
	return f
}

func (f *fakeData) withGlobal(box domain.GlobalDropBox) *fakeData {
	f.global[box.ID] = &box
	return f
}

func (f *fakeData) withIndividual(box domain.IndividualDropBox) *fakeData {
	f.individual[box.ID] = &box
	return f
}

func (f *fakeData) Item(itemID int) (*domain.ItemMetadata, bool) {
	item, ok := f.items[itemID]
	return item, ok
}

func (f *fakeData) GlobalDropBox(boxID int) (*domain.GlobalDropBox, bool) {
	box, ok := f.global[boxID]
	return box, ok
}

func (f *fakeData) IndividualDropBox(boxID int) (*domain.IndividualDropBox, bool) {
	box, ok := f.individual[boxID]
	return box, ok
}

func (f *fakeData) ColorPalette(paletteID int) ([]domain.ColorPaletteEntry, bool) {
	entries, ok := f.palettes[paletteID]
	return entries, ok
}

// newTestService wires a service with permissive stats expectations
func newTestService(t *testing.T, data DataSource, r domain.Rates, rng random.Source) (*service, *MockStatsGenerator, *MockEnchanter) {
	t.Helper()
	stats := new(MockStatsGenerator)
	stats.On("GetStats", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	stats.On("GetSockets", mock.Anything, mock.Anything).Return(nil).Maybe()
	enchanter := new(MockEnchanter)

	svc := NewServiceWithSource(data, rates.NewStatic(r), stats, enchanter, rng).(*service)
	return svc, stats, enchanter
}

func unitRates() domain.Rates {
	return domain.DefaultRates()
}

func knight() domain.Requester {
	return domain.Requester{
		Character: domain.Character{ID: 42, Name: "Aria", Job: domain.JobKnight, Gender: domain.GenderFemale},
		Field:     domain.Field{MapID: 2000025, MapType: 1, Continent: 1},
		Quests:    domain.NewActiveQuests(),
	}
}
