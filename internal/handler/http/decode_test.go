package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

func TestDecodeBody_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        models.LoginRequest
		wantErr     error
	}{
		{name: "json", contentType: "application/json", body: `{"username":"a","password":"p"}`, want: models.LoginRequest{Username: "a", Password: "p"}},
		{name: "json with charset", contentType: "application/json; charset=utf-8", body: `{"username":"a"}`, want: models.LoginRequest{Username: "a"}},
		{name: "no content type means json", contentType: "", body: `{"password":"p"}`, want: models.LoginRequest{Password: "p"}},
		{name: "form", contentType: "application/x-www-form-urlencoded", body: "username=a&password=p%26q", want: models.LoginRequest{Username: "a", Password: "p&q"}},
		{name: "broken json", contentType: "application/json", body: `{`, wantErr: ErrInvalidBody},
		{name: "xml", contentType: "application/xml", body: `<a/>`, wantErr: ErrUnsupportedContentType},
		{name: "garbage content type", contentType: ";;", body: ``, wantErr: ErrUnsupportedContentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			var got models.LoginRequest
			err := decodeBody(req, &got)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
