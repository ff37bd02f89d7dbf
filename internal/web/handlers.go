package web

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/hpungsan/cardex/internal/config"
	"github.com/hpungsan/cardex/internal/errors"
	"github.com/hpungsan/cardex/internal/ops"
)

// Handlers contains HTTP route handlers for the card API.
type Handlers struct {
	db     *sql.DB
	cfg    *config.Config
	logger *zap.Logger
}

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleListCards handles GET /cards, returning all cards with resolved metadata.
func (h *Handlers) HandleListCards(w http.ResponseWriter, r *http.Request) {
	result, err := ops.ListCards(r.Context(), h.db, ops.ListCardsInput{})
	if err != nil {
		h.renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, result.Items)
}

// searchRequest is the POST /cards body.
type searchRequest struct {
	Name *string `json:"name"`
}

// HandleSearchCards handles POST /cards, a case-insensitive substring
// search on card names. A missing or empty name is a 400.
func (h *Handlers) HandleSearchCards(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, errors.NewInvalidRequest("invalid JSON body"))
		return
	}
	if req.Name == nil || *req.Name == "" {
		h.renderError(w, errors.NewInvalidRequest("name is required"))
		return
	}

	result, err := ops.ListCards(r.Context(), h.db, ops.ListCardsInput{Query: *req.Name})
	if err != nil {
		h.renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, result.Items)
}

// updateRequest is the PUT /cards body. ID is the card number; Number is
// the copies to add, nil/absent for a single collect, or the sentinel -1
// for a single sell.
type updateRequest struct {
	ID     string `json:"id"`
	Number *int   `json:"number"`
}

// HandleUpdateCard handles PUT /cards, applying collect or sell to one
// card number and responding with the new copy count.
func (h *Handlers) HandleUpdateCard(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, errors.NewInvalidRequest("invalid JSON body"))
		return
	}
	if req.ID == "" {
		h.renderError(w, errors.NewInvalidRequest("id is required"))
		return
	}

	var count int
	switch {
	case req.Number == nil:
		result, err := ops.Collect(r.Context(), h.db, ops.CollectInput{IDs: []string{req.ID}})
		if err != nil {
			h.renderError(w, err)
			return
		}
		count = result.Total
	case *req.Number == -1:
		result, err := ops.Sell(r.Context(), h.db, ops.SellInput{IDs: []string{req.ID}})
		if err != nil {
			h.renderError(w, err)
			return
		}
		count = result.Total
	case *req.Number > 0:
		result, err := ops.Collect(r.Context(), h.db, ops.CollectInput{IDs: []string{req.ID}, Count: req.Number})
		if err != nil {
			h.renderError(w, err)
			return
		}
		count = result.Total
	default:
		h.renderError(w, errors.NewInvalidRequest("number must be positive, -1, or absent"))
		return
	}

	renderJSON(w, http.StatusOK, count)
}

// HandleListSeries handles GET /series, returning all series in release
// date order.
func (h *Handlers) HandleListSeries(w http.ResponseWriter, r *http.Request) {
	result, err := ops.ListSeries(r.Context(), h.db)
	if err != nil {
		h.renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, result.Items)
}

// renderError maps an error to its HTTP status and writes a JSON body.
func (h *Handlers) renderError(w http.ResponseWriter, err error) {
	if cErr, ok := err.(*errors.CardexError); ok {
		if cErr.Code == errors.ErrInternal {
			h.logger.Error("store fault", zap.String("message", cErr.Message))
		}
		renderJSON(w, cErr.Status, map[string]any{
			"error": map[string]any{
				"code":    cErr.Code,
				"message": cErr.Message,
			},
		})
		return
	}

	h.logger.Error("unexpected error", zap.Error(err))
	renderJSON(w, http.StatusInternalServerError, map[string]any{
		"error": map[string]any{
			"code":    errors.ErrInternal,
			"message": "an internal error occurred",
		},
	})
}

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
