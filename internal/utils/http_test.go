package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"detail": "ok"}

	n, err := WriteJSON(w, data, http.StatusCreated)
	require.NoError(t, err)

	assert.NotZero(t, n)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	expected, _ := json.Marshal(data)
	assert.Equal(t, string(expected), w.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Email string `json:"email"`
	}

	tests := []struct {
		name    string
		body    string
		want    payload
		wantErr error
		anyErr  bool
	}{
		{name: "valid", body: `{"email":"a@b.c"}`, want: payload{Email: "a@b.c"}},
		{name: "empty", body: "", wantErr: ErrEmptyBody},
		{name: "unknown field", body: `{"email":"a@b.c","admin":true}`, anyErr: true},
		{name: "malformed", body: `{"email":`, anyErr: true},
		{name: "two values", body: `{"email":"a"}{"email":"b"}`, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader(tt.body))

			var got payload
			err := DecodeJSON(req, &got)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
