package handler

import (
	"net/http"

	"github.com/mcubed/cubed/internal/api/apierr"
	"github.com/mcubed/cubed/internal/api/request"
	"github.com/mcubed/cubed/internal/services/lineup"
	"github.com/mcubed/cubed/internal/web/middleware"
)

const (
	alternateNamesListPath = "/lineup/alternateNames/list"
	missingNamesListPath   = "/lineup/missingNames/list"
)

// LineupHandler handles the alternate-name and missing-name form routes
type LineupHandler struct {
	lineupController *lineup.Controller
}

// NewLineupHandler creates a new LineupHandler
func NewLineupHandler(lineupController *lineup.Controller) *LineupHandler {
	return &LineupHandler{
		lineupController: lineupController,
	}
}

// EditAlternateName handles the alternate-name edit form. An id updates, no id creates.
func (h *LineupHandler) EditAlternateName(w http.ResponseWriter, r *http.Request) {
	var req request.AlternateNameRequest
	if err := request.Decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if _, err := h.lineupController.SaveAlternateName(r.Context(), req.Model()); err != nil {
		apierr.WriteError(w, err)
		return
	}

	http.Redirect(w, r, alternateNamesListPath, http.StatusSeeOther)
}

// DeleteAlternateName handles GET /lineup/alternateNames/delete?id=
func (h *LineupHandler) DeleteAlternateName(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequiredID(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.lineupController.DeleteAlternateName(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	middleware.SetFlash(w, "success", "Alternate name deleted")
	http.Redirect(w, r, alternateNamesListPath, http.StatusSeeOther)
}

// DeleteMissingNames handles GET /lineup/missingNames/delete. Without an id every
// missing name is cleared.
func (h *LineupHandler) DeleteMissingNames(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if err := h.lineupController.DeleteMissingNames(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if id == "" {
		middleware.SetFlash(w, "success", "All missing names cleared")
	} else {
		middleware.SetFlash(w, "success", "Missing name deleted")
	}
	http.Redirect(w, r, missingNamesListPath, http.StatusSeeOther)
}
