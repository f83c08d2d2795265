package delivery

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/chad_bot/internal/history"
	"github.com/Vovarama1992/chad_bot/internal/settings"
	"github.com/go-chi/chi/v5"
)

type HistoryHandler struct {
	historyService  history.Service
	settingsService settings.Service
	log             *logger.ZapLogger
}

func NewHistoryHandler(
	historyService history.Service,
	settingsService settings.Service,
	log *logger.ZapLogger,
) *HistoryHandler {
	return &HistoryHandler{
		historyService:  historyService,
		settingsService: settingsService,
		log:             log,
	}
}

func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user_id", http.StatusBadRequest)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	records, err := h.historyService.Recent(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, "failed to load history: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(records)
}

func (h *HistoryHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user_id", http.StatusBadRequest)
		return
	}

	n, err := h.historyService.Clear(r.Context(), userID)
	if err != nil {
		http.Error(w, "failed to clear history: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "history cleared for user " + strconv.FormatInt(userID, 10),
		Service: "chad_bot",
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int64{"deleted": n})
}

func (h *HistoryHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	users, err := h.settingsService.CountUsers(r.Context())
	if err != nil {
		http.Error(w, "failed to count users: "+err.Error(), http.StatusInternalServerError)
		return
	}

	requests, err := h.historyService.CountAll(r.Context())
	if err != nil {
		http.Error(w, "failed to count requests: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int64{
		"users":    users,
		"requests": requests,
	})
}
