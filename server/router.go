// server/router.go
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"rangelab/server/poker"
	"rangelab/server/ranges"
	"rangelab/server/scenario"
	"rangelab/server/store"
)

// matrixPayload is the wire shape every range endpoint returns.
type matrixPayload struct {
	Matrix [13][13]float64 `json:"matrix"`
	Ranks  [13]string      `json:"ranks"`
	Stats  ranges.Stats    `json:"stats"`
}

func payloadFor(m *ranges.Matrix) matrixPayload {
	return matrixPayload{Matrix: m.Cells, Ranks: ranges.Ranks, Stats: m.Stats()}
}

func Router(db *store.DB) http.Handler {
	r := chi.NewRouter()

	r.Get("/api/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]any{"ok": true})
	})

	// Tier-seeded default range.
	r.Get("/api/range/tiers", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, payloadFor(ranges.SeedTiers()))
	})

	// Top percent of hand space by percentile ranking.
	r.Get("/api/range/top", func(w http.ResponseWriter, req *http.Request) {
		pct, err := strconv.ParseFloat(req.URL.Query().Get("percent"), 64)
		if err != nil {
			http.Error(w, "bad percent", http.StatusBadRequest)
			return
		}
		writeJSON(w, payloadFor(ranges.TopPercent(pct)))
	})

	// Expand range notation into a matrix.
	r.Post("/api/range/parse", func(w http.ResponseWriter, req *http.Request) {
		var in struct {
			Notation string `json:"notation"`
		}
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		m, err := ranges.ParseRange(in.Notation)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, payloadFor(m))
	})

	// Opponent range estimate: base percent narrowed by action + board.
	r.Post("/api/range/adjust", func(w http.ResponseWriter, req *http.Request) {
		var in struct {
			Base      int      `json:"base"`
			Archetype string   `json:"archetype,omitempty"`
			Action    string   `json:"action"`
			Board     []string `json:"board"`
		}
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		base := in.Base
		if in.Archetype != "" {
			a, ok := scenario.ArchetypeByName(in.Archetype)
			if !ok {
				http.Error(w, "unknown archetype", http.StatusBadRequest)
				return
			}
			base = a.BaseRange()
		}
		board, err := parseBoard(in.Board)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		adjusted, err := scenario.AdjustRange(base, scenario.Action(in.Action), board)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		m := ranges.TopPercent(float64(adjusted))
		writeJSON(w, map[string]any{
			"base":     base,
			"action":   in.Action,
			"adjusted": adjusted,
			"matrix":   m.Cells,
			"ranks":    ranges.Ranks,
			"stats":    m.Stats(),
		})
	})

	r.Get("/api/archetypes", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]any{"rows": scenario.Archetypes})
	})

	r.Get("/api/archetypes/{name}/range", func(w http.ResponseWriter, req *http.Request) {
		a, ok := scenario.ArchetypeByName(chi.URLParam(req, "name"))
		if !ok {
			http.Error(w, "unknown archetype", http.StatusNotFound)
			return
		}
		p := payloadFor(a.Range())
		writeJSON(w, map[string]any{
			"archetype": a,
			"matrix":    p.Matrix,
			"ranks":     p.Ranks,
			"stats":     p.Stats,
		})
	})

	// Hero equity: exact enumeration on complete boards vs any-two,
	// Monte Carlo otherwise or when an opponent range is given.
	r.Post("/api/equity", func(w http.ResponseWriter, req *http.Request) {
		var in struct {
			Hole  string   `json:"hole"`
			Board []string `json:"board"`
			Vs    string   `json:"vs,omitempty"`
			Iters int      `json:"iters,omitempty"`
		}
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		hole, err := poker.ParseHoleHand(in.Hole)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		board, err := parseBoard(in.Board)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var eq float64
		method := "exact"
		if in.Vs == "" && len(board) == 5 {
			eq, err = poker.ExactEquity(hole, board)
		} else {
			method = "monte-carlo"
			weight := func(string) float64 { return 1 }
			if in.Vs != "" {
				m, perr := ranges.ParseRange(in.Vs)
				if perr != nil {
					http.Error(w, perr.Error(), http.StatusBadRequest)
					return
				}
				weight = m.Get
			}
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			eq, err = poker.EquityVsRange(hole, board, weight, in.Iters, rng)
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, map[string]any{
			"hole":   hole.String(),
			"label":  hole.Label(),
			"board":  in.Board,
			"method": method,
			"equity": eq,
		})
	})

	// Saved ranges (Postgres-backed).
	r.Get("/api/ranges", func(w http.ResponseWriter, req *http.Request) {
		if db == nil {
			http.Error(w, "no database", http.StatusServiceUnavailable)
			return
		}
		rows, err := db.ListRanges(req.Context(), atoiDef(req.URL.Query().Get("limit"), 50))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{"rows": rows})
	})

	r.Post("/api/ranges", func(w http.ResponseWriter, req *http.Request) {
		if db == nil {
			http.Error(w, "no database", http.StatusServiceUnavailable)
			return
		}
		var in struct {
			Name     string           `json:"name"`
			Notation string           `json:"notation,omitempty"`
			Matrix   *[13][13]float64 `json:"matrix,omitempty"`
		}
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(in.Name) == "" {
			http.Error(w, "missing name", http.StatusBadRequest)
			return
		}
		var m *ranges.Matrix
		var notation *string
		switch {
		case in.Notation != "":
			parsed, err := ranges.ParseRange(in.Notation)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			m = parsed
			notation = &in.Notation
		case in.Matrix != nil:
			for _, row := range in.Matrix {
				for _, f := range row {
					if f < 0 || f > 1 {
						http.Error(w, "matrix cell outside [0,1]", http.StatusBadRequest)
						return
					}
				}
			}
			m = &ranges.Matrix{Cells: *in.Matrix}
		default:
			http.Error(w, "need notation or matrix", http.StatusBadRequest)
			return
		}
		id, err := db.SaveRange(req.Context(), in.Name, notation, m.Cells)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{"id": id, "stats": m.Stats()})
	})

	r.Get("/api/ranges/{id}", func(w http.ResponseWriter, req *http.Request) {
		if db == nil {
			http.Error(w, "no database", http.StatusServiceUnavailable)
			return
		}
		id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		sr, err := db.GetRange(req.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		m := ranges.Matrix{Cells: sr.Cells}
		writeJSON(w, map[string]any{
			"range": sr,
			"ranks": ranges.Ranks,
			"stats": m.Stats(),
		})
	})

	// Practice drill: deal a question, grade an answer, summarize a session.
	r.Post("/api/drill", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, scenario.NewGenerator(0).Next())
	})

	r.Post("/api/drill/answer", func(w http.ResponseWriter, req *http.Request) {
		var in struct {
			Cards    [2]string `json:"cards"`
			Position string    `json:"position"`
			Chosen   string    `json:"chosen"`
			Session  string    `json:"session,omitempty"`
		}
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		hole, err := poker.ParseHoleHand(in.Cards[0] + in.Cards[1])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		pos, err := scenario.ParsePosition(in.Position)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		chosen, err := scenario.ParseChoice(in.Chosen)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		q := scenario.Question{Hole: hole, Cards: in.Cards, Label: hole.Label(), Position: pos}
		res := scenario.Grade(q, chosen)
		if db != nil && in.Session != "" {
			_, err := db.InsertDrillResult(req.Context(), store.DrillResult{
				Session:   in.Session,
				HandLabel: res.Label,
				Tier:      res.TierName,
				Position:  string(res.Position),
				Chosen:    string(res.Chosen),
				Correct:   string(res.Correct),
				IsCorrect: res.IsCorrect,
			})
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}
		writeJSON(w, res)
	})

	r.Get("/api/drill/summary", func(w http.ResponseWriter, req *http.Request) {
		if db == nil {
			http.Error(w, "no database", http.StatusServiceUnavailable)
			return
		}
		session := req.URL.Query().Get("session")
		if session == "" {
			http.Error(w, "missing session", http.StatusBadRequest)
			return
		}
		total, correct, tiers, err := db.SessionSummary(req.Context(), session)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		var acc float64
		if total > 0 {
			acc = float64(correct) / float64(total)
		}
		lo, hi := WilsonCI95(correct, 0, total)
		writeJSON(w, map[string]any{
			"session":  session,
			"total":    total,
			"correct":  correct,
			"accuracy": acc,
			"ci95":     map[string]float64{"low": lo, "high": hi},
			"tiers":    tiers,
		})
	})

	return r
}

func parseBoard(tokens []string) ([]poker.Card, error) {
	if len(tokens) > 5 {
		return nil, fmt.Errorf("board has %d cards, max 5", len(tokens))
	}
	board := make([]poker.Card, 0, len(tokens))
	seen := map[poker.Card]bool{}
	for _, t := range tokens {
		c, err := poker.ParseCard(t)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			return nil, fmt.Errorf("duplicate board card %q", t)
		}
		seen[c] = true
		board = append(board, c)
	}
	return board, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
