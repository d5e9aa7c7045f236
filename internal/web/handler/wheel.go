package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcubed/cubed/internal/api/apierr"
	"github.com/mcubed/cubed/internal/api/request"
	"github.com/mcubed/cubed/internal/services/wheel"
)

const categoriesListPath = "/wheel/categories/list"

// WheelHandler handles the category and word form routes
type WheelHandler struct {
	wheelController *wheel.Controller
}

// NewWheelHandler creates a new WheelHandler
func NewWheelHandler(wheelController *wheel.Controller) *WheelHandler {
	return &WheelHandler{
		wheelController: wheelController,
	}
}

// EditCategory handles the category edit form
func (h *WheelHandler) EditCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest
	if err := request.Decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if _, err := h.wheelController.SaveCategory(r.Context(), req.Model()); err != nil {
		apierr.WriteError(w, err)
		return
	}

	http.Redirect(w, r, categoriesListPath, http.StatusSeeOther)
}

// EditWord handles the word edit form of a category
func (h *WheelHandler) EditWord(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["categoryID"]

	var req request.WordRequest
	if err := request.Decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if _, err := h.wheelController.SaveWord(r.Context(), req.Model(categoryID)); err != nil {
		apierr.WriteError(w, err)
		return
	}

	http.Redirect(w, r, CategoryWordsPath(categoryID), http.StatusSeeOther)
}

// CategoryWordsPath is the word list page of a category
func CategoryWordsPath(categoryID string) string {
	return "/wheel/categories/" + categoryID + "/list"
}
