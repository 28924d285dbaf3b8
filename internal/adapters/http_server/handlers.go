// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"otasuke/internal/app"
	"otasuke/internal/domain"
)

type Handlers struct {
	Advice   *app.AdviceService
	Deals    *app.DealService
	Settings *app.SettingsService
	Notifier domain.DisplayNotifier
}

const (
	flightFailedMsg = "航空券情報の取得に失敗しました。もう一度お試しください。"
	goodsFailedMsg  = "商品情報の取得に失敗しました。もう一度お試しください。"
)

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: false, Error: msg}); err != nil {
		log.Error().Err(err).Msg("write JSON error response failed")
	}
}

// writePipelineError maps pipeline failures to responses. Provider and
// extraction failures are deliberately not distinguished to the caller; both
// surface the same generic message.
func writePipelineError(w http.ResponseWriter, err error, genericMsg string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, ve.Message)
		return
	}
	log.Error().Err(err).Msg("advice pipeline failed")
	writeError(w, http.StatusInternalServerError, genericMsg)
}

// writeRepoError surfaces the store's native message, matching the admin UI's
// expectation of seeing the raw backend error.
func writeRepoError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/api", func(r chi.Router) {
		r.Route("/admin", func(r chi.Router) {
			r.Get("/daily-deals", h.listDeals)
			r.Post("/daily-deals", h.createDeal)
			r.Put("/daily-deals/{id}", h.updateDeal)
			r.Delete("/daily-deals/{id}", h.deleteDeal)
			r.Post("/generate-script", h.generateScript)
		})
		r.Get("/daily-deals/today", h.todayDeals)
		r.Post("/flight/search", h.searchFlight)
		r.Post("/daily-goods/search", h.searchGoods)
		r.Post("/notifications/send", h.sendNotification)
		r.Get("/settings/{userId}", h.getSettings)
		r.Put("/settings/{userId}", h.putSettings)
	})
}

// ---- deals ----

func (h *Handlers) listDeals(w http.ResponseWriter, r *http.Request) {
	deals, err := h.Deals.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeData(w, http.StatusOK, deals)
}

func (h *Handlers) createDeal(w http.ResponseWriter, r *http.Request) {
	var d domain.NewDeal
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	deal, err := h.Deals.Create(r.Context(), d)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeData(w, http.StatusOK, deal)
}

func (h *Handlers) updateDeal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a number")
		return
	}
	var u domain.DealUpdate
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	deal, err := h.Deals.Update(r.Context(), id, u)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeData(w, http.StatusOK, deal)
}

func (h *Handlers) deleteDeal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a number")
		return
	}
	if err := h.Deals.Delete(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handlers) todayDeals(w http.ResponseWriter, r *http.Request) {
	user := domain.UserID(r.URL.Query().Get("userId"))
	if !user.Valid() {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}
	today := time.Now().UTC().Format("2006-01-02")
	deals, err := h.Deals.Today(r.Context(), user, today)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeData(w, http.StatusOK, deals)
}

// ---- advice pipeline ----

func (h *Handlers) searchFlight(w http.ResponseWriter, r *http.Request) {
	var req domain.FlightSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	result, err := h.Advice.SearchFlight(r.Context(), req)
	if err != nil {
		writePipelineError(w, err, flightFailedMsg)
		return
	}
	writeData(w, http.StatusOK, result)
}

func (h *Handlers) searchGoods(w http.ResponseWriter, r *http.Request) {
	var req domain.GoodsSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	result, err := h.Advice.SearchGoods(r.Context(), req)
	if err != nil {
		writePipelineError(w, err, goodsFailedMsg)
		return
	}
	writeData(w, http.StatusOK, result)
}

func (h *Handlers) generateScript(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Deal *domain.Deal `json:"deal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Deal == nil {
		writeError(w, http.StatusBadRequest, "Deal information is required")
		return
	}
	script, err := h.Advice.GenerateScript(r.Context(), *body.Deal)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Message)
			return
		}
		log.Error().Err(err).Msg("script generation failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeData(w, http.StatusOK, script)
}

// ---- notifications ----

func (h *Handlers) sendNotification(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID  domain.UserID `json:"userId"`
		Title   string        `json:"title"`
		Message string        `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !body.UserID.Valid() {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}
	if err := h.Notifier.Send(r.Context(), body.UserID, body.Title, body.Message); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeData(w, http.StatusOK, nil)
}

// ---- settings ----

func (h *Handlers) getSettings(w http.ResponseWriter, r *http.Request) {
	user := domain.UserID(chi.URLParam(r, "userId"))
	st, err := h.Settings.Get(r.Context(), user)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeData(w, http.StatusOK, st)
}

func (h *Handlers) putSettings(w http.ResponseWriter, r *http.Request) {
	user := domain.UserID(chi.URLParam(r, "userId"))
	var st domain.UserSettings
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	saved, err := h.Settings.Put(r.Context(), user, st)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeData(w, http.StatusOK, saved)
}
