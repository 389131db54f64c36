package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ejo3h9612/currencyDemo/internal/domain"
	"github.com/Ejo3h9612/currencyDemo/internal/forex"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockValidator struct{ mock.Mock }

func (m *MockValidator) Validate(start, end time.Time) error {
	args := m.Called(start, end)
	return args.Error(0)
}

type MockService struct{ mock.Mock }

func (m *MockService) IngestLatest(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockService) History(ctx context.Context, start, end time.Time, currency string) ([]forex.HistoryRow, error) {
	args := m.Called(ctx, start, end, currency)
	rows, _ := args.Get(0).([]forex.HistoryRow)
	return rows, args.Error(1)
}

type envelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message  string             `json:"message"`
	Currency []forex.HistoryRow `json:"currency"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &e))
	return e
}

// --- FetchRates ---

func TestHandler_FetchRates_Success(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewForexHandler(mockValidator, mockService)

	mockService.On("IngestLatest", mock.Anything).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/forex/fetch", nil)
	rr := httptest.NewRecorder()

	h.FetchRates(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	e := decodeEnvelope(t, rr)
	require.Equal(t, "0000", e.Error.Code)
	require.Equal(t, "updated", e.Message)
	mockService.AssertExpectations(t)
}

func TestHandler_FetchRates_Failure(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewForexHandler(mockValidator, mockService)

	mockService.On("IngestLatest", mock.Anything).Return(domain.ErrUpstreamFetch).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/forex/fetch", nil)
	rr := httptest.NewRecorder()

	h.FetchRates(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	e := decodeEnvelope(t, rr)
	require.Equal(t, "E001", e.Error.Code)
	// fixed code only, nothing internal leaks
	require.NotContains(t, rr.Body.String(), domain.ErrUpstreamFetch.Error())
}

// --- History ---

func historyRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodPost, "/api/forex/history", bytes.NewBufferString(body))
}

func TestHandler_History_Success(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewForexHandler(mockValidator, mockService)

	start := time.Date(2024, 12, 10, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 12, 11, 0, 0, 0, 0, time.Local)
	rows := []forex.HistoryRow{
		{Date: "2024-12-10", USD: "32.44"},
		{Date: "2024-12-11", USD: "32.51"},
	}

	mockValidator.On("Validate",
		mock.MatchedBy(func(s time.Time) bool { return s.Equal(start) }),
		mock.MatchedBy(func(e time.Time) bool { return e.Equal(end) }),
	).Return(nil).Once()
	mockService.On("History", mock.Anything, mock.Anything, mock.Anything, "USD/NTD").Return(rows, nil).Once()

	rr := httptest.NewRecorder()
	h.History(rr, historyRequest(t, `{"startDate":"2024/12/10","endDate":"2024/12/11","currency":"USD/NTD"}`))

	require.Equal(t, http.StatusOK, rr.Code)
	e := decodeEnvelope(t, rr)
	require.Equal(t, "0000", e.Error.Code)
	require.Equal(t, rows, e.Currency)
	mockValidator.AssertExpectations(t)
	mockService.AssertExpectations(t)
}

func TestHandler_History_BadBody(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "unknown field", body: `{"startDate":"2024/12/10","endDate":"2024/12/11","currency":"USD/NTD","page":1}`},
		{name: "bad start date", body: `{"startDate":"2024-12-10","endDate":"2024/12/11","currency":"USD/NTD"}`},
		{name: "bad end date", body: `{"startDate":"2024/12/10","endDate":"20241211","currency":"USD/NTD"}`},
		{name: "missing dates", body: `{"currency":"USD/NTD"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockValidator := new(MockValidator)
			mockService := new(MockService)
			h := NewForexHandler(mockValidator, mockService)

			rr := httptest.NewRecorder()
			h.History(rr, historyRequest(t, tc.body))

			require.Equal(t, http.StatusBadRequest, rr.Code)
			require.Equal(t, "E001", decodeEnvelope(t, rr).Error.Code)
			mockService.AssertNotCalled(t, "History", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_History_RangeViolation(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewForexHandler(mockValidator, mockService)

	mockValidator.On("Validate", mock.Anything, mock.Anything).Return(domain.ErrInvalidDateRange).Once()

	rr := httptest.NewRecorder()
	h.History(rr, historyRequest(t, `{"startDate":"2023/01/01","endDate":"2024/12/11","currency":"USD/NTD"}`))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "E001", decodeEnvelope(t, rr).Error.Code)
	mockService.AssertNotCalled(t, "History", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_History_UnsupportedCurrency(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewForexHandler(mockValidator, mockService)

	mockValidator.On("Validate", mock.Anything, mock.Anything).Return(nil).Once()
	mockService.On("History", mock.Anything, mock.Anything, mock.Anything, "EUR/USD").
		Return(nil, domain.ErrUnsupportedCurrency).Once()

	rr := httptest.NewRecorder()
	h.History(rr, historyRequest(t, `{"startDate":"2024/12/10","endDate":"2024/12/11","currency":"EUR/USD"}`))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "E001", decodeEnvelope(t, rr).Error.Code)
}

func TestHandler_History_ServiceError(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewForexHandler(mockValidator, mockService)

	mockValidator.On("Validate", mock.Anything, mock.Anything).Return(nil).Once()
	mockService.On("History", mock.Anything, mock.Anything, mock.Anything, "USD/NTD").
		Return(nil, errors.New("db query failed")).Once()

	rr := httptest.NewRecorder()
	h.History(rr, historyRequest(t, `{"startDate":"2024/12/10","endDate":"2024/12/11","currency":"USD/NTD"}`))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "E001", decodeEnvelope(t, rr).Error.Code)
	require.NotContains(t, rr.Body.String(), "db query failed")
}
