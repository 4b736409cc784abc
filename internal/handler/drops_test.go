package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WorldLoot_Go/internal/domain"
)

func testCatalog() fakeCatalog {
	return fakeCatalog{
		global:     map[int]bool{1001: true},
		individual: map[int]bool{2001: true},
	}
}

func decodeDrops(t *testing.T, w *httptest.ResponseRecorder) DropResponse {
	t.Helper()
	var resp DropResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleResolveGlobal(t *testing.T) {
	elixir := &domain.ResolvedItem{UID: uuid.New(), ItemID: 20000001, Rarity: 1, Amount: 2}

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockDropService, *MockRecorder)
		expectedStatus int
		expectedItems  int
	}{
		{
			name: "Success",
			body: `{"box_id":1001,"level":30,"is_boss":true,"field":{"map_id":2000025,"map_type":1,"continent":1}}`,
			setupMocks: func(svc *MockDropService, rec *MockRecorder) {
				field := domain.Field{MapID: 2000025, MapType: 1, Continent: 1}
				svc.On("ResolveGlobalBox", mock.Anything, field, 1001, 30, true).Return([]*domain.ResolvedItem{elixir})
				rec.On("Record", mock.Anything, domain.BoxKindGlobal, 1001, int64(0), []*domain.ResolvedItem{elixir}).Once()
			},
			expectedStatus: http.StatusOK,
			expectedItems:  1,
		},
		{
			name: "No drop is an empty list",
			body: `{"box_id":1001,"level":30}`,
			setupMocks: func(svc *MockDropService, rec *MockRecorder) {
				svc.On("ResolveGlobalBox", mock.Anything, domain.Field{}, 1001, 30, false).Return(nil)
				rec.On("Record", mock.Anything, domain.BoxKindGlobal, 1001, int64(0), []*domain.ResolvedItem{}).Once()
			},
			expectedStatus: http.StatusOK,
			expectedItems:  0,
		},
		{
			name:           "Unknown box",
			body:           `{"box_id":9999,"level":30}`,
			setupMocks:     func(*MockDropService, *MockRecorder) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Missing box id",
			body:           `{"level":30}`,
			setupMocks:     func(*MockDropService, *MockRecorder) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed JSON",
			body:           `{"box_id":`,
			setupMocks:     func(*MockDropService, *MockRecorder) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockDropService)
			rec := new(MockRecorder)
			tt.setupMocks(svc, rec)

			h := NewDropHandler(svc, testCatalog(), rec)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/drops/global", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.HandleResolveGlobal(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				resp := decodeDrops(t, w)
				assert.Len(t, resp.Items, tt.expectedItems)
				assert.NotContains(t, w.Body.String(), `"items":null`)
			}
			svc.AssertExpectations(t)
			rec.AssertExpectations(t)
		})
	}
}

func TestHandleResolveIndividual(t *testing.T) {
	helm := &domain.ResolvedItem{UID: uuid.New(), ItemID: 11200001, Rarity: 3, Amount: 1}

	t.Run("defaults index and group to no selection", func(t *testing.T) {
		svc := new(MockDropService)
		rec := new(MockRecorder)

		svc.On("ResolveIndividualBox", mock.Anything, mock.MatchedBy(func(r domain.Requester) bool {
			return r.Character.ID == 42 && r.Character.Job == domain.JobKnight &&
				r.Character.Gender == domain.GenderFemale && r.Field.MapID == 2000025 &&
				r.HasStartedQuest(50001) && !r.HasStartedQuest(1)
		}), 35, 2001, NoSelection, NoSelection, false).Return([]*domain.ResolvedItem{helm}).Once()
		rec.On("Record", mock.Anything, domain.BoxKindIndividual, 2001, int64(42), mock.Anything).Once()

		body := `{"character":{"id":42,"name":"Aria","job":10,"gender":1,"quests":[50001]},
			"field":{"map_id":2000025},"level":35,"box_id":2001}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/drops/individual", strings.NewReader(body))
		w := httptest.NewRecorder()

		NewDropHandler(svc, testCatalog(), rec).HandleResolveIndividual(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeDrops(t, w)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 11200001, resp.Items[0].ItemID)
		svc.AssertExpectations(t)
		rec.AssertExpectations(t)
	})

	t.Run("passes explicit selection", func(t *testing.T) {
		svc := new(MockDropService)
		svc.On("ResolveIndividualBox", mock.Anything, mock.Anything, 10, 2001, 0, 7, true).Return(nil).Once()

		body := `{"character":{"id":1},"level":10,"box_id":2001,"index":0,"group_id":7,"is_boss":true}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/drops/individual", strings.NewReader(body))
		w := httptest.NewRecorder()

		NewDropHandler(svc, testCatalog(), nil).HandleResolveIndividual(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("rejects invalid character fields", func(t *testing.T) {
		svc := new(MockDropService)
		body := `{"character":{"id":1,"gender":5,"name":"bad\nname"},"level":10,"box_id":2001,"index":-3}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/drops/individual", strings.NewReader(body))
		w := httptest.NewRecorder()

		NewDropHandler(svc, testCatalog(), nil).HandleResolveIndividual(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Fields, "character.gender")
		assert.Contains(t, resp.Fields, "character.name")
		assert.Contains(t, resp.Fields, "index")
		svc.AssertNotCalled(t, "ResolveIndividualBox")
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		body := `{"character":{"id":1},"level":10,"box_id":2001,"luck":99}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/drops/individual", strings.NewReader(body))
		w := httptest.NewRecorder()

		NewDropHandler(new(MockDropService), testCatalog(), nil).HandleResolveIndividual(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleResolveByRarity(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{"Success", `{"box_id":2001,"rarity":4}`, http.StatusOK},
		{"Rarity out of range", `{"box_id":2001,"rarity":7}`, http.StatusBadRequest},
		{"Missing rarity", `{"box_id":2001}`, http.StatusBadRequest},
		{"Unknown box", `{"box_id":3,"rarity":4}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockDropService)
			svc.On("ResolveIndividualBoxByRarity", mock.Anything, domain.Field{}, 2001, 4).
				Return([]*domain.ResolvedItem{{ItemID: 1, Rarity: 4, Amount: 1}}).Maybe()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/drops/individual/rarity", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			NewDropHandler(svc, testCatalog(), nil).HandleResolveByRarity(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				resp := decodeDrops(t, w)
				require.Len(t, resp.Items, 1)
				assert.Equal(t, 4, resp.Items[0].Rarity)
			}
		})
	}
}
