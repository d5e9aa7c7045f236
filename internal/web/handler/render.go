package handler

import (
	"net/http"

	"github.com/mcubed/cubed/internal/web/middleware"
	"github.com/mcubed/cubed/internal/web/templates"
)

func renderShell(w http.ResponseWriter, r *http.Request, title string) {
	data := templates.PageData{
		Title: title,
		State: middleware.GetState(r.Context()),
		Flash: middleware.GetFlash(r.Context()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Shell(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
