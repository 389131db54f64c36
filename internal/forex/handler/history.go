package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Ejo3h9612/currencyDemo/internal/domain"
	"github.com/Ejo3h9612/currencyDemo/internal/forex"

	"github.com/sirupsen/logrus"
)

type HistoryRequest struct {
	StartDate string `json:"startDate" example:"2024/12/10"`
	EndDate   string `json:"endDate" example:"2024/12/11"`
	Currency  string `json:"currency" example:"USD/NTD"`
}

type HistoryResponse struct {
	Error    apiError           `json:"error"`
	Currency []forex.HistoryRow `json:"currency"`
}

// History godoc
// @Summary Query rate history
// @Description Return persisted daily rates for a bounded date range
// @Tags Forex
// @Accept json
// @Produce json
// @Param request body HistoryRequest true "date range and currency pair"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} HistoryResponse
// @Router /forex/history [post]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1024)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req HistoryRequest
	if err := dec.Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest)
		return
	}

	start, err := forex.ParseSlashDate(strings.TrimSpace(req.StartDate))
	if err != nil {
		writeFailure(w, http.StatusBadRequest)
		return
	}
	end, err := forex.ParseSlashDate(strings.TrimSpace(req.EndDate))
	if err != nil {
		writeFailure(w, http.StatusBadRequest)
		return
	}

	if err = h.validator.Validate(start, end); err != nil {
		writeFailure(w, http.StatusBadRequest)
		return
	}

	rows, err := h.service.History(r.Context(), start, end, strings.TrimSpace(req.Currency))
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedCurrency) {
			writeFailure(w, http.StatusBadRequest)
			return
		}
		logrus.WithError(err).WithField("handler", "History").Error("history query failed")
		writeFailure(w, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, HistoryResponse{
		Error:    apiError{Code: codeOK},
		Currency: rows,
	})
}
