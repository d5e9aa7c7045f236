package request

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/mcubed/cubed/internal/api/apierr"
)

const maxBodyBytes = 1 << 20

// Decode fills dst from a JSON body or from form fields, depending on the content type.
// Form fields are matched to dst's json tags.
func Decode(r *http.Request, dst any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return decodeForm(r, mediaType, dst)
	default:
		if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
			return apierr.NewInvalidRequestError("invalid request body")
		}
		return nil
	}
}

func decodeForm(r *http.Request, mediaType string, dst any) error {
	var err error
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(maxBodyBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return apierr.NewInvalidRequestError("invalid form body")
	}

	fields := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	// Round-trip through JSON so the json tags drive the field mapping
	data, err := json.Marshal(fields)
	if err != nil {
		return apierr.NewInvalidRequestError("invalid form body")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return apierr.NewInvalidRequestError("invalid form body")
	}
	return nil
}

// Sort holds the list ordering requested in the query string
type Sort struct {
	Field     string
	Ascending bool
}

// ParseSort reads ?sort=<field>&ascending=<bool>. Ascending defaults to true.
func ParseSort(r *http.Request) (Sort, error) {
	q := r.URL.Query()
	s := Sort{Field: q.Get("sort"), Ascending: true}
	if raw := q.Get("ascending"); raw != "" {
		ascending, err := strconv.ParseBool(raw)
		if err != nil {
			return Sort{}, apierr.NewInvalidRequestError("ascending must be true or false")
		}
		s.Ascending = ascending
	}
	return s, nil
}

// RequiredID returns the id query parameter or an invalid request error
func RequiredID(r *http.Request) (string, error) {
	id := r.URL.Query().Get("id")
	if id == "" {
		return "", apierr.NewInvalidRequestError("id is required")
	}
	return id, nil
}
