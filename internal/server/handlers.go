package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/nitzanshifris/cv2web/internal/db"
	"github.com/nitzanshifris/cv2web/internal/schemas"
	"github.com/nitzanshifris/cv2web/internal/selection"
	"github.com/nitzanshifris/cv2web/internal/types"
)

// SelectRequest is the payload for POST /v1/portfolio/select.
type SelectRequest struct {
	CV        map[string]any `json:"cv" validate:"required"`
	Archetype string         `json:"archetype" validate:"omitempty,oneof=creative technical general"`
	Persist   bool           `json:"persist"`
}

// SelectResponse carries the selections plus the analysis side channel.
type SelectResponse struct {
	RunID      *uuid.UUID                 `json:"run_id,omitempty"`
	Selections []types.ComponentSelection `json:"selections"`
	Report     *selection.Report          `json:"report"`
}

// AdaptRequest is the payload for POST /v1/components/adapt.
type AdaptRequest struct {
	Component string `json:"component" validate:"required"`
	Section   string `json:"section"`
	Content   any    `json:"content" validate:"required"`
}

// AdaptResponse carries the adapted props for one component.
type AdaptResponse struct {
	Component  types.ComponentType `json:"component"`
	ImportPath string              `json:"import_path"`
	Props      map[string]any      `json:"props"`
}

// handleSelect runs the full selection pipeline over a CV document.
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.cvValidator.ValidateMap(req.CV); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			s.errorResponse(w, http.StatusUnprocessableEntity, ve.Error())
			return
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	cv := types.CVData(req.CV)
	var opts []selection.Option
	if req.Archetype != "" {
		opts = append(opts, selection.WithArchetype(types.ParseArchetype(req.Archetype)))
	}
	selections, report := s.selector.Select(cv, opts...)

	resp := SelectResponse{Selections: selections, Report: report}

	if req.Persist {
		if s.db == nil {
			s.errorResponse(w, http.StatusConflict, "run persistence is not configured")
			return
		}
		id, err := s.db.CreateRun(r.Context(), cv, selections, string(report.Archetype), report.SmartPath)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to persist run")
			s.errorResponse(w, http.StatusInternalServerError, "failed to persist run")
			return
		}
		resp.RunID = &id
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAdapt adapts a single section's content for one component.
func (s *Server) handleAdapt(w http.ResponseWriter, r *http.Request) {
	var req AdaptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ct, known := types.ParseComponentType(req.Component)
	if !known {
		s.errorResponse(w, http.StatusBadRequest, "unknown component: "+req.Component)
		return
	}

	props, err := s.adapter.Adapt(ct, req.Content, req.Section)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, AdaptResponse{
		Component:  ct,
		ImportPath: ct.ImportPath(),
		Props:      props,
	})
}

// handleListRuns returns summaries of recent stored runs.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusConflict, "run persistence is not configured")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit: "+v)
			return
		}
		limit = n
	}

	runs, err := s.db.ListRuns(r.Context(), limit)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list runs")
		s.errorResponse(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleGetRun returns one stored run with its documents.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusConflict, "run persistence is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	run, err := s.db.GetRun(r.Context(), id)
	if errors.Is(err, db.ErrRunNotFound) {
		s.errorResponse(w, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Msg("failed to get run")
		s.errorResponse(w, http.StatusInternalServerError, "failed to get run")
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}
