package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// decodeBody reads a JSON or urlencoded form body into dst.
//
// Form values are mapped onto the JSON field names of dst, so only string
// fields can be filled from a form. A request without a Content-Type is
// treated as JSON.
func decodeBody(r *http.Request, dst any) error {
	mediaType := contentTypeJSON
	if ct := r.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUnsupportedContentType, err)
		}
		mediaType = parsed
	}

	switch mediaType {
	case contentTypeJSON:
		return decodeJSON(r, dst)
	case contentTypeForm:
		return decodeForm(r, dst)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}

func decodeForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	fields := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		fields[key] = r.PostForm.Get(key)
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	return nil
}
