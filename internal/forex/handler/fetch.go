package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type FetchResponse struct {
	Error   apiError `json:"error"`
	Message string   `json:"message" example:"updated"`
}

// FetchRates godoc
// @Summary Trigger rate ingestion
// @Description Fetch the daily feed and persist the latest observation
// @Tags Forex
// @Produce json
// @Success 200 {object} FetchResponse
// @Failure 500 {object} FetchResponse
// @Router /forex/fetch [post]
func (h *Handler) FetchRates(w http.ResponseWriter, r *http.Request) {
	if err := h.service.IngestLatest(r.Context()); err != nil {
		logrus.WithError(err).WithField("handler", "FetchRates").Error("manual rate ingestion failed")
		writeFailure(w, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, FetchResponse{
		Error:   apiError{Code: codeOK},
		Message: "updated",
	})
}
