package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcubed/cubed/internal/api/apierr"
	"github.com/mcubed/cubed/internal/api/request"
	"github.com/mcubed/cubed/internal/api/response"
	"github.com/mcubed/cubed/internal/listing"
	"github.com/mcubed/cubed/internal/model"
	"github.com/mcubed/cubed/internal/services/wheel"
)

// WheelHandler handles category and word endpoints
type WheelHandler struct {
	wheelController *wheel.Controller
}

// NewWheelHandler creates a new wheel handler
func NewWheelHandler(wheelController *wheel.Controller) *WheelHandler {
	return &WheelHandler{
		wheelController: wheelController,
	}
}

// ListCategories handles GET /wheel/categories/list/json
func (h *WheelHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	sort, err := request.ParseSort(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := h.wheelController.ListCategories(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := listing.WheelCategoryFields.Sort(items, sort.Field, sort.Ascending); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, items)
}

// GetCategory handles GET /wheel/categories/get/json?id=
func (h *WheelHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequiredID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	item, err := h.wheelController.GetCategory(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, item)
}

// DeleteCategory handles GET /wheel/categories/delete/json?id=
func (h *WheelHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequiredID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.wheelController.DeleteCategory(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w)
}

// ListCategoryWords handles GET /wheel/categories/{categoryID}/words/list/json
func (h *WheelHandler) ListCategoryWords(w http.ResponseWriter, r *http.Request) {
	sort, err := request.ParseSort(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := h.wheelController.ListCategoryWords(r.Context(), mux.Vars(r)["categoryID"])
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeWords(w, items, sort)
}

// ListWords handles GET /wheel/words/list/json
func (h *WheelHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	sort, err := request.ParseSort(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := h.wheelController.ListWords(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeWords(w, items, sort)
}

// GetWord handles GET /wheel/words/get/json?id=
func (h *WheelHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequiredID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	item, err := h.wheelController.GetWord(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, item)
}

// DeleteWord handles GET /wheel/words/delete/json?id=
func (h *WheelHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequiredID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.wheelController.DeleteWord(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w)
}

// ApproveMany handles POST /wheel/words/approveMany/json. A partial failure answers with the
// error status and lists the ids that were not approved.
func (h *WheelHandler) ApproveMany(w http.ResponseWriter, r *http.Request) {
	var req request.ApproveManyRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	ids := req.SplitIDs()
	if len(ids) == 0 {
		WriteError(w, NewInvalidRequestError("ids is required"))
		return
	}

	failed, err := h.wheelController.ApproveMany(r.Context(), ids)
	if err != nil {
		se := apierr.Resolve(err)
		response.JSON(w, se.Status, response.ApproveManyResponse{Message: se.APIError.Message, Failed: failed})
		return
	}

	response.JSON(w, http.StatusOK, response.ApproveManyResponse{Failed: []string{}})
}

// ListDuplicateWords handles GET /wheel/words/duplicates/json
func (h *WheelHandler) ListDuplicateWords(w http.ResponseWriter, r *http.Request) {
	items, err := h.wheelController.ListDuplicateWords(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, items)
}

// ListUnverifiedWords handles GET /wheel/words/unverified/json
func (h *WheelHandler) ListUnverifiedWords(w http.ResponseWriter, r *http.Request) {
	sort, err := request.ParseSort(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := h.wheelController.ListUnverifiedWords(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeWords(w, items, sort)
}

func (h *WheelHandler) writeWords(w http.ResponseWriter, items []model.WheelWord, sort request.Sort) {
	if err := listing.WheelWordFields.Sort(items, sort.Field, sort.Ascending); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, items)
}
