package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sentilab/sentiment-api/internal/core"
	"github.com/sentilab/sentiment-api/internal/store"
)

const defaultHistoryLimit = 10

type APIHandler struct {
	predictionService *core.PredictionService
}

func NewAPIHandler(ps *core.PredictionService) *APIHandler {
	return &APIHandler{predictionService: ps}
}

type PredictRequest struct {
	// Pointer so a missing field is distinguishable from an empty string;
	// empty text is a valid input.
	Text   *string `json:"text"`
	UserID string  `json:"user_id,omitempty"` // accepted for compatibility, unused
}

func (h *APIHandler) PredictHandler(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Text == nil {
		writeError(w, http.StatusBadRequest, "Missing 'text' in request")
		return
	}

	result, err := h.predictionService.Predict(*req.Text)
	if err != nil {
		if errors.Is(err, core.ErrInference) {
			slog.Error("[API] Prediction degraded",
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, result)
			return
		}
		slog.Error("[API] Failed to store prediction",
			slog.String("request_id", RequestIDFromContext(r.Context())),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to store prediction")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type HistoryResponse struct {
	Total       int                      `json:"total"`
	Predictions []store.PredictionRecord `json:"predictions"`
}

func (h *APIHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid 'limit' parameter")
			return
		}
		limit = parsed
	}

	records, err := h.predictionService.History(limit)
	if err != nil {
		slog.Error("[API] Failed to read history",
			slog.String("request_id", RequestIDFromContext(r.Context())),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to read history")
		return
	}
	if records == nil {
		records = []store.PredictionRecord{}
	}

	writeJSON(w, http.StatusOK, HistoryResponse{Total: len(records), Predictions: records})
}

func (h *APIHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Sentiment Analysis API is running",
		"version": "1.0",
		"endpoints": map[string]string{
			"POST /predict": "Get sentiment prediction",
			"GET /history":  "View last predictions",
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("[API] Failed to encode response", slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
