package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/anukreon/sports-sim/sim"
)

func (s *Server) GETHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) POSTNBASimHandler(w http.ResponseWriter, r *http.Request) {
	var req sim.NBARequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	params, err := req.Params()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := sim.SimulateNBA(params)
	if errors.Is(err, sim.ErrInvalidArgument) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if err != nil {
		log.Printf("Simulation failed: %v", err)
		http.Error(w, "Simulation failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
