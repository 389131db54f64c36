package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Ejo3h9612/currencyDemo/internal/forex"
)

// Response codes used by the forex API envelope.
const (
	codeOK      = "0000"
	codeFailure = "E001"
)

type RangeValidator interface {
	Validate(start, end time.Time) error
}

type ForexService interface {
	IngestLatest(ctx context.Context) error
	History(ctx context.Context, start, end time.Time, currency string) ([]forex.HistoryRow, error)
}

type Handler struct {
	validator RangeValidator
	service   ForexService
}

func NewForexHandler(validator RangeValidator, service ForexService) *Handler {
	return &Handler{validator: validator, service: service}
}

type apiError struct {
	Code    string `json:"code" example:"0000"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeFailure(w http.ResponseWriter, statusCode int) {
	writeJSON(w, statusCode, map[string]apiError{"error": {Code: codeFailure}})
}
