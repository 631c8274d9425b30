package handler

import (
	"net/http"
	"testing"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t, "manager", "secret99")

	w := env.do(t, http.MethodPost, "/manager/login", map[string]string{
		"username": "manager",
		"password": "secret99",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.True(t, resp.User.IsStaff)
}

func TestLoginEndpointGenericFailure(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t, "manager", "secret99")

	cases := []map[string]string{
		{"username": "manager", "password": "wrong-pass"},
		{"username": "nobody", "password": "secret99"},
	}
	var messages []string
	for _, body := range cases {
		w := env.do(t, http.MethodPost, "/manager/login", body, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		var resp struct {
			Detail string `json:"detail"`
		}
		decodeBody(t, w, &resp)
		messages = append(messages, resp.Detail)
	}
	// Both failure modes read the same.
	assert.Equal(t, messages[0], messages[1])
}

func TestRefreshEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t, "manager", "secret99")

	login := env.do(t, http.MethodPost, "/manager/login", map[string]string{
		"username": "manager",
		"password": "secret99",
	}, "")
	require.Equal(t, http.StatusOK, login.Code)
	var loginResp dto.LoginResponse
	decodeBody(t, login, &loginResp)

	w := env.do(t, http.MethodPost, "/manager/refresh", map[string]string{
		"refresh_token": loginResp.RefreshToken,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var refreshed dto.LoginResponse
	decodeBody(t, w, &refreshed)
	assert.NotEmpty(t, refreshed.AccessToken)

	bad := env.do(t, http.MethodPost, "/manager/refresh", map[string]string{
		"refresh_token": "garbage",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, bad.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	env := newTestEnv(t)
	env.seedStaff(t, "manager", "secret99")
	token := env.loginToken(t, "manager", "secret99")

	// The token works before logout.
	ok := env.do(t, http.MethodGet, "/manager/dashboard", nil, token)
	require.Equal(t, http.StatusOK, ok.Code)

	w := env.do(t, http.MethodPost, "/manager/logout", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	// And is rejected afterwards.
	after := env.do(t, http.MethodGet, "/manager/dashboard", nil, token)
	assert.Equal(t, http.StatusUnauthorized, after.Code)
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/manager/dashboard", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/manager/dashboard", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
