// Package web serves the admin API and the generated podcast audio.
package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ccradio/rotation-bot/internal/domain"
	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
	"github.com/ccradio/rotation-bot/internal/domain/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const defaultDuelStatsLimit = 20

type Handler struct {
	maps     contract.MapService
	tips     contract.TipService
	duels    contract.DuelService
	podcasts contract.PodcastService
	audioDir string
	logger   *zap.Logger
	now      func() time.Time
}

func NewHandler(svc *service.Instance, audioDir string, logger *zap.Logger) *Handler {
	return &Handler{
		maps:     svc.Map,
		tips:     svc.Tip,
		duels:    svc.Duel,
		podcasts: svc.Podcast,
		audioDir: audioDir,
		logger:   logger,
		now:      time.Now,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/tips", func(r chi.Router) {
			r.Get("/", h.listTips)
			r.Post("/", h.createTip)
			r.Delete("/{id}", h.deleteTip)
		})
		r.Route("/maps", func(r chi.Router) {
			r.Get("/", h.listMaps)
			r.Post("/", h.upsertMap)
		})
		r.Get("/duel_stats", h.duelStats)
		r.Post("/podcasts/regenerate", h.regeneratePodcasts)
	})

	r.Handle("/audio/*", http.StripPrefix("/audio/", http.FileServer(http.Dir(h.audioDir))))

	return r
}

// requestLogger logs one line per request through zap.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.logger.Info("http request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) listTips(w http.ResponseWriter, r *http.Request) {
	tips, err := h.tips.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if tips == nil {
		tips = []*entity.Tip{}
	}
	h.writeJSON(w, http.StatusOK, tips)
}

func (h *Handler) createTip(w http.ResponseWriter, r *http.Request) {
	var tip entity.Tip
	if err := json.NewDecoder(r.Body).Decode(&tip); err != nil {
		h.writeError(w, domain.ErrInvalidArgument)
		return
	}
	if err := h.tips.Create(r.Context(), &tip); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, tip)
}

func (h *Handler) deleteTip(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, domain.ErrInvalidArgument)
		return
	}
	if err := h.tips.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listMaps(w http.ResponseWriter, r *http.Request) {
	maps, err := h.maps.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if maps == nil {
		maps = []*entity.Map{}
	}
	h.writeJSON(w, http.StatusOK, maps)
}

// upsertMap stores the map. The running rotation keeps its sequence until
// the next restart.
func (h *Handler) upsertMap(w http.ResponseWriter, r *http.Request) {
	var m entity.Map
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		h.writeError(w, domain.ErrInvalidArgument)
		return
	}
	if err := h.maps.Upsert(r.Context(), &m); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, m)
}

func (h *Handler) duelStats(w http.ResponseWriter, r *http.Request) {
	limit := defaultDuelStatsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.writeError(w, domain.ErrInvalidArgument)
			return
		}
		limit = n
	}

	records, err := h.duels.Top(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if records == nil {
		records = []*entity.DuelRecord{}
	}
	h.writeJSON(w, http.StatusOK, records)
}

// regeneratePodcasts drops and rebuilds the podcasts of ?date=YYYY-MM-DD,
// today in KST by default.
func (h *Handler) regeneratePodcasts(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = domain.DateKey(h.now())
	} else if _, err := time.Parse(domain.DateLayout, date); err != nil {
		h.writeError(w, domain.ErrInvalidArgument)
		return
	}

	if err := h.podcasts.Regenerate(r.Context(), date); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"date": date, "status": "regenerated"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsInvalidArgument(err):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case domain.IsNotFound(err):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrAIDisabled):
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("request failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
