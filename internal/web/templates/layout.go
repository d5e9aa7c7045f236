package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mcubed/cubed/internal/model"
)

// AppStateScriptID is the id of the script element carrying the session state
const AppStateScriptID = "app-state"

// FlashMessage is a one-shot notice shown on the next page load
type FlashMessage struct {
	Type    string
	Message string
}

// PageData is the common data every page needs
type PageData struct {
	Title string
	State model.SessionState
	Flash *FlashMessage
}

// Shell renders the single-page client host. The client bundle reads the
// session state from the app-state script once on start.
func Shell(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<title>%s | Cubed Admin</title>`, templ.EscapeString(data.Title)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<link rel="stylesheet" href="/static/app.css"></head><body>`); err != nil {
			return err
		}
		if data.Flash != nil {
			if _, err := fmt.Fprintf(w, `<div class="flash flash-%s" role="status">%s</div>`,
				templ.EscapeString(data.Flash.Type), templ.EscapeString(data.Flash.Message)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<div id="root"></div>`); err != nil {
			return err
		}
		if err := templ.JSONScript(AppStateScriptID, data.State).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<script src="/static/bundle.js"></script></body></html>`)
		return err
	})
}
