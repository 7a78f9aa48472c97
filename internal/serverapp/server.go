// Package serverapp assembles the HTTP surface: a JSON API over the
// progression engine, the leaderboard endpoints and a websocket state
// stream. All game logic stays in the engine; handlers only decode,
// call and encode.
package serverapp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"runeclicker/internal/catalog"
	"runeclicker/internal/engine"
	"runeclicker/internal/httpmw"
	"runeclicker/internal/identity"
	"runeclicker/internal/leaderboard"
)

type Options struct {
	Engine      *engine.Engine
	Identity    identity.Provider
	Leaderboard leaderboard.Repository
	Stream      *Stream
	Logger      *log.Logger
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Engine == nil {
		return nil, errors.New("engine is required")
	}
	if opts.Identity == nil {
		opts.Identity = identity.Static("local")
	}
	if opts.Leaderboard == nil {
		opts.Leaderboard = leaderboard.NewMemoryRepo()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	s := &server{
		eng:    opts.Engine,
		ident:  opts.Identity,
		boards: opts.Leaderboard,
		stream: opts.Stream,
		logger: opts.Logger,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "runeclicker",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/api/totals", s.handleTotals)
	mux.HandleFunc("/api/catalog", s.handleCatalog)
	mux.HandleFunc("/api/click", post(s.handleClick))
	mux.HandleFunc("/api/upgrades/buy", post(s.handleBuyUpgrade))
	mux.HandleFunc("/api/upgrades/buy-max", post(s.handleBuyUpgradeMax))
	mux.HandleFunc("/api/rebirth-upgrades/buy", post(s.handleBuyRebirthUpgrade))
	mux.HandleFunc("/api/rebirth-upgrades/buy-max", post(s.handleBuyRebirthUpgradeMax))
	mux.HandleFunc("/api/rebirth", post(s.handleRebirth))
	mux.HandleFunc("/api/prestige", post(s.handlePrestige))
	mux.HandleFunc("/api/skills/unlock", post(s.handleSkill))
	mux.HandleFunc("/api/packs/open", post(s.handlePack))
	mux.HandleFunc("/api/runes/craft-secret", post(s.handleCraft))
	mux.HandleFunc("/api/trader", s.handleTraderOffers)
	mux.HandleFunc("/api/trader/accept", post(s.handleTrade))
	mux.HandleFunc("/api/events", s.handleEvents)
	mux.HandleFunc("/api/offline/reconcile", post(s.handleOffline))
	mux.HandleFunc("/api/leaderboard", s.handleLeaderboardTop)
	mux.HandleFunc("/api/leaderboard/rank", s.handleLeaderboardRank)
	mux.HandleFunc("/api/leaderboard/submit", post(s.handleLeaderboardSubmit))
	mux.HandleFunc("/api/dev/grant", post(s.handleGrant))
	mux.HandleFunc("/api/dev/mode", post(s.handleDevMode))

	if s.stream != nil {
		mux.HandleFunc("/ws/state", s.stream.Handle)
	}

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), nil
}

type server struct {
	eng    *engine.Engine
	ident  identity.Provider
	boards leaderboard.Repository
	stream *Stream
	logger *log.Logger
}

func (s *server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eng.State())
}

func (s *server) handleTotals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eng.Totals())
}

// handleCatalog serves the static definitions. Unlock item names stay
// masked until the player has ever held a gem; the reveal is one-way.
func (s *server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	cat := s.eng.Catalog()
	if s.eng.State().GemEverHeld {
		writeJSON(w, http.StatusOK, cat)
		return
	}
	masked := *cat
	masked.Upgrades = append([]catalog.Upgrade(nil), cat.Upgrades...)
	for i := range masked.Upgrades {
		if masked.Upgrades[i].Type == catalog.UpgradeUnlock {
			masked.Upgrades[i].Name = "???"
		}
	}
	writeJSON(w, http.StatusOK, &masked)
}

func (s *server) handleClick(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eng.Click())
}

type idRequest struct {
	ID string `json:"id"`
}

func (s *server) handleBuyUpgrade(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.eng.BuyUpgrade(req.ID))
}

func (s *server) handleBuyUpgradeMax(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.eng.BuyUpgradeMax(req.ID))
}

func (s *server) handleBuyRebirthUpgrade(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.eng.BuyRebirthUpgrade(req.ID))
}

func (s *server) handleBuyRebirthUpgradeMax(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.eng.BuyRebirthUpgradeMax(req.ID))
}

func (s *server) handleRebirth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eng.Rebirth())
}

func (s *server) handlePrestige(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Element string `json:"element"`
	}
	if !decode(w, r, &req) {
		return
	}
	el, ok := catalog.ElementByName(strings.ToLower(strings.TrimSpace(req.Element)))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown element")
		return
	}
	writeJSON(w, http.StatusOK, s.eng.PrestigeElement(el))
}

func (s *server) handleSkill(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.eng.UnlockGoldSkill(req.ID))
}

func (s *server) handlePack(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eng.OpenRunePack())
}

func (s *server) handleCraft(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eng.CraftSecretRune())
}

func (s *server) handleTraderOffers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"offers": s.eng.TraderOffers()})
}

func (s *server) handleTrade(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Slot int  `json:"slot"`
		All  bool `json:"all"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.All {
		writeJSON(w, http.StatusOK, s.eng.AcceptTraderOfferAll(req.Slot))
		return
	}
	writeJSON(w, http.StatusOK, s.eng.AcceptTraderOffer(req.Slot))
}

func (s *server) handleEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eng.EventStatus())
}

func (s *server) handleOffline(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eng.ReconcileOffline())
}

func (s *server) handleLeaderboardTop(w http.ResponseWriter, r *http.Request) {
	cat := leaderboard.Category(r.URL.Query().Get("category"))
	if cat == "" {
		cat = leaderboard.CategoryMoney
	}
	entries, err := s.boards.TopEntries(r.Context(), cat, 100)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"category": cat, "entries": entries})
}

func (s *server) handleLeaderboardRank(w http.ResponseWriter, r *http.Request) {
	cat := leaderboard.Category(r.URL.Query().Get("category"))
	if cat == "" {
		cat = leaderboard.CategoryMoney
	}
	userID, err := s.ident.UserID()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	rank, found, err := s.boards.RankOf(r.Context(), cat, userID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"category": cat,
		"user_id":  userID,
		"ranked":   found,
		"rank":     rank,
	})
}

func (s *server) handleLeaderboardSubmit(w http.ResponseWriter, r *http.Request) {
	userID, err := s.ident.UserID()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	snap, err := s.eng.BuildSnapshot(userID)
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err := s.boards.Submit(r.Context(), snap); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *server) handleGrant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind   string  `json:"kind"`
		Amount float64 `json:"amount"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := s.eng.Grant(req.Kind, req.Amount); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *server) handleDevMode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if !decode(w, r, &req) {
		return
	}
	s.eng.SetDevMode(req.Enabled)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "dev_mode": req.Enabled})
}

// post guards a handler to POST only.
func post(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h(w, r)
	}
}

// decode reads a JSON body; an empty body decodes to the zero request.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}
