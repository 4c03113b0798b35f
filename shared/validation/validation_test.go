package validation

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	apperrors "github.com/mateoroldos/personal-blog/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `form:"email" validate:"required,email"`
	Note  string `form:"note" validate:"min=2,max=4"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     sample
		wantErr   bool
		wantField string
	}{
		{name: "valid", input: sample{Email: "a@b.co", Note: "abc"}},
		{name: "missing email", input: sample{Note: "abc"}, wantErr: true, wantField: "email is required"},
		{name: "bad email", input: sample{Email: "nope", Note: "abc"}, wantErr: true, wantField: "email must be a valid email address"},
		{name: "short note", input: sample{Email: "a@b.co", Note: "a"}, wantErr: true, wantField: "note must be at least 2 characters"},
		{name: "long note", input: sample{Email: "a@b.co", Note: "abcde"}, wantErr: true, wantField: "note must be at most 4 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestParseForm(t *testing.T) {
	t.Run("url-encoded body", func(t *testing.T) {
		body := url.Values{"email": {"me@example.com"}}.Encode()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()

		require.NoError(t, ParseForm(rr, req, 1<<10))
		assert.Equal(t, "me@example.com", req.PostFormValue("email"))
	})

	t.Run("multipart body", func(t *testing.T) {
		body := "--xx\r\nContent-Disposition: form-data; name=\"email\"\r\n\r\nme@example.com\r\n--xx--\r\n"
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=xx")
		rr := httptest.NewRecorder()

		require.NoError(t, ParseForm(rr, req, 1<<10))
		assert.Equal(t, "me@example.com", req.PostFormValue("email"))
	})

	t.Run("body over the limit", func(t *testing.T) {
		body := url.Values{"message": {strings.Repeat("x", 2048)}}.Encode()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()

		err := ParseForm(rr, req, 512)
		assert.ErrorIs(t, err, ErrFormTooLarge)
	})

	t.Run("broken multipart body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("garbage"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=xx")
		rr := httptest.NewRecorder()

		err := ParseForm(rr, req, 1<<10)
		assert.ErrorIs(t, err, ErrUnparsableForm)
	})
}
