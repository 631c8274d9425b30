package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendContactEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/send-contact", map[string]string{
		"name":    "Dana",
		"email":   "dana@example.com",
		"phone":   "+250788000000",
		"message": "Do you ship abroad?",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "Message sent successfully", resp.Message)

	require.Len(t, env.mailer.sent, 1)
	assert.Equal(t, "owner@kushstore.local", env.mailer.sent[0].to)
	assert.Contains(t, env.mailer.sent[0].body, "Do you ship abroad?")
}

func TestSendContactEndpointValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []map[string]string{
		{"email": "dana@example.com", "message": "hi"}, // missing name
		{"name": "Dana", "message": "hi"},              // missing email
		{"name": "Dana", "email": "not-an-email", "message": "hi"},
		{"name": "Dana", "email": "dana@example.com"}, // missing message
	}
	for _, body := range cases {
		w := env.do(t, http.MethodPost, "/send-contact", body, "")
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		decodeBody(t, w, &resp)
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Error)
	}
	assert.Empty(t, env.mailer.sent)
}

func TestSendContactEndpointTransportFailure(t *testing.T) {
	env := newTestEnv(t)
	env.mailer.err = errors.New("smtp refused")

	w := env.do(t, http.MethodPost, "/send-contact", map[string]string{
		"name":    "Dana",
		"email":   "dana@example.com",
		"message": "hi",
	}, "")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	decodeBody(t, w, &resp)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}
