package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WorldLoot_Go/internal/domain"
)

func TestHandleGetRates(t *testing.T) {
	store := new(MockRateStore)
	store.On("Snapshot").Return(domain.Rates{GlobalDropRate: 1.5, BossDropRate: 2, RareDropRate: 1, MesoDropRate: 0.5})

	w := httptest.NewRecorder()
	NewRatesHandler(store).HandleGetRates(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/rates", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.Rates
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1.5, got.GlobalDropRate)
	assert.Equal(t, 0.5, got.MesoDropRate)
}

func TestHandleSetRate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockRateStore)
		expectedStatus int
		expectedField  string
	}{
		{
			name: "Success",
			body: `{"key":"boss","value":3}`,
			setupMock: func(m *MockRateStore) {
				m.On("Set", "boss", 3.0).Return(nil).Once()
				m.On("Snapshot").Return(domain.Rates{GlobalDropRate: 1, BossDropRate: 3, RareDropRate: 1, MesoDropRate: 1})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Zero is allowed",
			body: `{"key":"MESOS","value":0}`,
			setupMock: func(m *MockRateStore) {
				m.On("Set", "MESOS", 0.0).Return(nil).Once()
				m.On("Snapshot").Return(domain.DefaultRates())
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Negative value",
			body:           `{"key":"rare","value":-1}`,
			setupMock:      func(*MockRateStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "value",
		},
		{
			name:           "Missing value",
			body:           `{"key":"rare"}`,
			setupMock:      func(*MockRateStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "value",
		},
		{
			name:           "Unknown key",
			body:           `{"key":"exp","value":2}`,
			setupMock:      func(*MockRateStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "key",
		},
		{
			name: "Store rejects value",
			body: `{"key":"global","value":2}`,
			setupMock: func(m *MockRateStore) {
				m.On("Set", "global", 2.0).Return(fmt.Errorf("%w: global", domain.ErrInvalidRate)).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockRateStore)
			tt.setupMock(store)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/rates", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			NewRatesHandler(store).HandleSetRate(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedField != "" {
				var resp ValidationErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Contains(t, resp.Fields, tt.expectedField)
			}
			store.AssertExpectations(t)
			if tt.expectedStatus != http.StatusOK {
				store.AssertNotCalled(t, "Snapshot")
			}
		})
	}
}
