package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Ayato964/RunMeMe/internal/scores"
	"github.com/Ayato964/RunMeMe/internal/sequence"
	"github.com/Ayato964/RunMeMe/internal/stages"
)

// handleSubmitScore records a score on the board.
func (s *Server) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" {
		req.Name = "Player"
	}

	s.board.Submit(scores.Entry{Score: req.Score, Name: req.Name})
	s.logger.Info("score_submitted", "name", req.Name, "score", req.Score)

	s.writeJSON(w, http.StatusOK, MessageResponse{Message: "Score submitted"})
}

// handleListScores returns the top ten scores, highest first.
func (s *Server) handleListScores(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.board.Top(10))
}

// handleRandomStages serves an ordered run of stage definitions. The
// sequencer fixes the identifier order first; each definition is then loaded
// from the catalog.
func (s *Server) handleRandomStages(w http.ResponseWriter, r *http.Request) {
	excludeID := r.URL.Query().Get("exclude_id")
	count, err := parseCount(r.URL.Query().Get("count"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ids, err := s.catalog.List()
	if err != nil {
		if errors.Is(err, stages.ErrNoCatalog) {
			s.writeError(w, http.StatusInternalServerError, "stages directory not found")
			return
		}
		s.logger.Error("catalog_list_failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "listing stages failed")
		return
	}

	seq, err := s.sequencer.Generate(ids, excludeID, count)
	if err != nil {
		switch {
		case errors.Is(err, sequence.ErrEmptyCatalog):
			s.writeError(w, http.StatusNotFound, "no stages found")
		case errors.Is(err, sequence.ErrInvalidCount):
			s.writeError(w, http.StatusBadRequest, err.Error())
		default:
			s.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	out := make([]*stages.Stage, 0, len(seq))
	for _, id := range seq {
		stage, err := s.catalog.Load(id)
		if err != nil {
			s.logger.Error("stage_load_failed", "id", id, "error", err)
			s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("loading stage %q failed", id))
			return
		}
		out = append(out, stage)
	}

	s.logger.Info("stage_sequence_served", "count", len(out), "exclude_id", excludeID)
	s.writeJSON(w, http.StatusOK, out)
}

// handleStartStage serves the flat starting stage, falling back to a
// hardcoded definition when it is missing so a spawn always exists.
func (s *Server) handleStartStage(w http.ResponseWriter, r *http.Request) {
	stage, err := s.catalog.Load(stages.StartStageID)
	if err != nil {
		if errors.Is(err, stages.ErrNotFound) || errors.Is(err, stages.ErrNoCatalog) {
			s.writeJSON(w, http.StatusOK, stages.StartFallback())
			return
		}
		s.logger.Error("start_stage_load_failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "loading start stage failed")
		return
	}

	s.writeJSON(w, http.StatusOK, stage)
}

// handlePublishStage persists a user-submitted stage definition.
func (s *Server) handlePublishStage(w http.ResponseWriter, r *http.Request) {
	var stage stages.Stage
	if err := json.NewDecoder(r.Body).Decode(&stage); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := ValidateStage(&stage); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if stage.ID == "" {
		ids, err := s.catalog.List()
		if err != nil && !errors.Is(err, stages.ErrNoCatalog) {
			s.logger.Error("catalog_list_failed", "error", err)
			s.writeError(w, http.StatusInternalServerError, "listing stages failed")
			return
		}
		stage.ID = stages.GenerateID(ids)
	}

	if err := s.catalog.Save(&stage); err != nil {
		s.logger.Error("stage_save_failed", "id", stage.ID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "saving stage failed")
		return
	}

	s.logger.Info("stage_published", "id", stage.ID, "elements", len(stage.Elements))
	s.writeJSON(w, http.StatusOK, PublishResponse{Message: "Stage saved", ID: stage.ID})
}
