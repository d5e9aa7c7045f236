package handler

import (
	"net/http"

	"github.com/mcubed/cubed/internal/api/request"
	"github.com/mcubed/cubed/internal/api/response"
	"github.com/mcubed/cubed/internal/listing"
	"github.com/mcubed/cubed/internal/model"
	"github.com/mcubed/cubed/internal/services/lineup"
)

// LineupHandler handles alternate-name and missing-name endpoints
type LineupHandler struct {
	lineupController *lineup.Controller
}

// NewLineupHandler creates a new lineup handler
func NewLineupHandler(lineupController *lineup.Controller) *LineupHandler {
	return &LineupHandler{
		lineupController: lineupController,
	}
}

// ListAlternateNames handles GET /lineup/alternateNames/list/json
func (h *LineupHandler) ListAlternateNames(w http.ResponseWriter, r *http.Request) {
	sort, err := request.ParseSort(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := h.lineupController.ListAlternateNames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := listing.AlternateNameFields.Sort(items, sort.Field, sort.Ascending); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, items)
}

// GetAlternateName handles GET /lineup/alternateNames/get/json?id=
func (h *LineupHandler) GetAlternateName(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequiredID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	item, err := h.lineupController.GetAlternateName(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, item)
}

// ResolveName handles GET /lineup/alternateNames/resolve/json?externalName=&team=&sport=
func (h *LineupHandler) ResolveName(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var sport model.Sport
	if raw := q.Get("sport"); raw != "" {
		parsed, err := model.ParseSport(raw)
		if err != nil {
			WriteError(w, NewInvalidRequestError(err.Error()))
			return
		}
		sport = parsed
	}

	item, err := h.lineupController.ResolveName(r.Context(), q.Get("externalName"), q.Get("team"), sport)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, item)
}

// ListMissingNames handles GET /lineup/missingNames/list/json
func (h *LineupHandler) ListMissingNames(w http.ResponseWriter, r *http.Request) {
	sort, err := request.ParseSort(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := h.lineupController.ListMissingNames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := listing.MissingNameFields.Sort(items, sort.Field, sort.Ascending); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, items)
}

// ReportMissingName handles POST /lineup/missingNames/report/json
func (h *LineupHandler) ReportMissingName(w http.ResponseWriter, r *http.Request) {
	var req request.ReportMissingNameRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	item, err := h.lineupController.ReportMissingName(r.Context(), req.Name, req.Team, req.Sport)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, item)
}
