package validation

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
)

// ParseForm enforces maxSize on the request body and parses it as
// url-encoded or multipart form data, depending on Content-Type.
// Values end up in r.PostForm in both cases.
func ParseForm(w http.ResponseWriter, r *http.Request, maxSize int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	var err error
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(maxSize)
	} else {
		err = r.ParseForm()
	}
	if err == nil {
		return nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: limit is %d bytes", ErrFormTooLarge, maxSize)
	}
	return fmt.Errorf("%w: %v", ErrUnparsableForm, err)
}
