package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/schakalakka/Ant-Colony-Optimization/colony"
	"github.com/schakalakka/Ant-Colony-Optimization/distmat"
)

// SolveRequest carries one TSP instance. Zero-valued solver parameters fall
// back to colony.DefaultOptions. JSON cannot encode +Inf, so forbidden edges
// are expressed with the string "inf" via the custom cell decoding below;
// plain numbers pass through unchanged.
type SolveRequest struct {
	Matrix       [][]Cell `json:"matrix"`
	NrAnts       int      `json:"nr_ants"`
	NrBest       int      `json:"nr_best"`
	NrIterations int      `json:"nr_iterations"`
	Decay        float64  `json:"decay"`
	Alpha        float64  `json:"alpha"`
	Beta         float64  `json:"beta"`
	PheroMin     float64  `json:"phero_min"`
	PheroMax     float64  `json:"phero_max"`
	Parallelism  int      `json:"parallelism"`
	Seed         int64    `json:"seed"`
}

// Cell is one matrix entry. It accepts a JSON number or the strings "inf"
// and "-" (both meaning: no direct edge).
type Cell float64

// UnmarshalJSON implements the number-or-placeholder decoding.
func (c *Cell) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*c = Cell(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "inf", "Inf", "+Inf", "-":
		*c = Cell(math.Inf(1))
		return nil
	default:
		return fmt.Errorf("matrix cell %q is neither a number nor an infinity placeholder", s)
	}
}

func (req *SolveRequest) grid() [][]float64 {
	grid := make([][]float64, len(req.Matrix))
	for i, row := range req.Matrix {
		grid[i] = make([]float64, len(row))
		for j, v := range row {
			grid[i][j] = float64(v)
		}
	}
	return grid
}

// SolveResponse is the solver's answer: the best tour as a closed vertex
// sequence plus its individual moves.
type SolveResponse struct {
	Tour      []int         `json:"tour"`
	Moves     []colony.Move `json:"moves"`
	Length    float64       `json:"length"`
	Iteration int           `json:"iteration"`
}

func (req *SolveRequest) options() colony.Options {
	opts := colony.DefaultOptions()
	if req.NrAnts > 0 {
		opts.NrAnts = req.NrAnts
	}
	if req.NrBest > 0 {
		opts.NrBest = req.NrBest
	}
	if req.NrIterations > 0 {
		opts.NrIterations = req.NrIterations
	}
	if req.Decay != 0 {
		opts.Decay = req.Decay
	}
	if req.Alpha != 0 {
		opts.Alpha = req.Alpha
	}
	if req.Beta != 0 {
		opts.Beta = req.Beta
	}
	if req.PheroMin != 0 || req.PheroMax != 0 {
		opts.PheroMin = req.PheroMin
		opts.PheroMax = req.PheroMax
	}
	if req.Parallelism > 0 {
		opts.Parallelism = req.Parallelism
	}
	opts.Seed = req.Seed
	return opts
}

func solveHandler(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dist, err := distmat.New(req.grid())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := colony.New(dist, req.options())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := c.Run()
	if err != nil {
		// An unclosable instance is a semantic problem with the payload,
		// not a malformed request.
		if errors.Is(err, colony.ErrNoFeasibleMove) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Errorf("solve failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, SolveResponse{
		Tour:      res.Best.Vertices(),
		Moves:     res.Best.Moves,
		Length:    res.Best.Length,
		Iteration: res.BestIteration,
	})
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
