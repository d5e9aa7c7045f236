package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mcubed/cubed/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	if w == nil {
		w = os.Stdout
	}
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SessionResult:
		o.printSession(v)
	case HealthResult:
		o.printHealthResult(v)
	case ApproveManyResult:
		o.printApproveMany(v)
	case model.AlternateName:
		o.printAlternateNames([]model.AlternateName{v})
	case []model.AlternateName:
		o.printAlternateNames(v)
	case []model.MissingName:
		o.printMissingNames(v)
	case []model.WheelCategory:
		o.printCategories(v)
	case []model.WheelWord:
		o.printWords(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// SessionResult is the login and state response
type SessionResult struct {
	HasAdminAccount bool      `json:"hasAdminAccount"`
	IsLoggedIn      bool      `json:"isLoggedIn"`
	ServerError     string    `json:"serverError,omitempty"`
	Token           string    `json:"token,omitempty"`
	ExpiresAt       time.Time `json:"expiresAt,omitzero"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// ApproveManyResult reports a bulk approval
type ApproveManyResult struct {
	Approved int      `json:"approved"`
	Failed   []string `json:"failed"`
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (o *Output) printSession(s SessionResult) {
	_, _ = fmt.Fprintf(o.w, "Admin account: %s\n", yesNo(s.HasAdminAccount))
	_, _ = fmt.Fprintf(o.w, "Logged in: %s\n", yesNo(s.IsLoggedIn))
	if s.ServerError != "" {
		_, _ = fmt.Fprintf(o.w, "Server error: %s\n", s.ServerError)
	}
	if !s.ExpiresAt.IsZero() {
		_, _ = fmt.Fprintf(o.w, "Expires: %s\n", s.ExpiresAt.Local().Format(time.RFC1123))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	_, _ = fmt.Fprintf(o.w, "Store: %s\n", h.Store)
}

func (o *Output) printApproveMany(r ApproveManyResult) {
	_, _ = fmt.Fprintf(o.w, "Approved %d word(s)\n", r.Approved)
	for _, id := range r.Failed {
		_, _ = fmt.Fprintf(o.w, "  failed: %s\n", id)
	}
}

func (o *Output) printAlternateNames(items []model.AlternateName) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(o.w, "No alternate names")
		return
	}
	for _, a := range items {
		lastUsed := "never"
		if !a.LastUsedDate.IsZero() {
			lastUsed = a.LastUsedDate.Local().Format(time.DateTime)
		}
		_, _ = fmt.Fprintf(o.w, "%s  %s -> %s (last used %s)\n", a.ID, a.ExternalName, a.ContestName, lastUsed)
	}
}

func (o *Output) printMissingNames(items []model.MissingName) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(o.w, "No missing names")
		return
	}
	for _, m := range items {
		sport := ""
		if m.Sport != 0 {
			sport = m.Sport.String()
		}
		_, _ = fmt.Fprintf(o.w, "%s  %s [%s %s] x%d\n", m.ID, m.Name, m.Team, sport, m.Count)
	}
}

func (o *Output) printCategories(items []model.WheelCategory) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(o.w, "No categories")
		return
	}
	for _, c := range items {
		_, _ = fmt.Fprintf(o.w, "%s  %s\n", c.ID, c.Name)
	}
}

func (o *Output) printWords(items []model.WheelWord) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(o.w, "No words")
		return
	}
	for _, w := range items {
		approved := ""
		if w.Approved {
			approved = " [approved]"
		}
		_, _ = fmt.Fprintf(o.w, "%s  %s (category %s)%s\n", w.ID, w.Word, w.CategoryID, approved)
	}
}
