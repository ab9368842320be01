package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/magicniclus/admintrouvermonchantier/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIdentityServer répond comme Identity Toolkit pour un seul compte.
func fakeIdentityServer(t *testing.T, email, password, idToken string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch {
		case strings.Contains(r.URL.Path, "accounts:signInWithPassword"):
			if body["email"] == email && body["password"] == password {
				json.NewEncoder(w).Encode(map[string]any{
					"localId": "uid-test", "email": email, "idToken": idToken,
					"refreshToken": "refresh", "expiresIn": "3600",
				})
				return
			}
			http.Error(w, `{"error":{"message":"INVALID_PASSWORD"}}`, http.StatusBadRequest)
		case strings.Contains(r.URL.Path, "accounts:lookup"):
			if body["idToken"] == idToken {
				json.NewEncoder(w).Encode(map[string]any{
					"users": []map[string]any{{"localId": "uid-test", "email": email}},
				})
				return
			}
			http.Error(w, `{"error":{"message":"INVALID_ID_TOKEN"}}`, http.StatusBadRequest)
		case strings.Contains(r.URL.Path, "accounts:update"):
			json.NewEncoder(w).Encode(map[string]any{"localId": "uid-test"})
		case strings.Contains(r.URL.Path, "accounts:sendOobCode"):
			json.NewEncoder(w).Encode(map[string]any{"email": email})
		default:
			http.NotFound(w, r)
		}
	}))

	t.Setenv(utils.IDENTITY_API_URL, server.URL)
	return server
}

func TestLoginChampsManquants(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"email":"admin@exemple.fr"}`))
	recorder := httptest.NewRecorder()

	Login(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLoginIdentifiantsInvalides(t *testing.T) {
	server := fakeIdentityServer(t, "admin@exemple.fr", "bon-mot-de-passe", "jeton")
	defer server.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"email":"admin@exemple.fr","password":"mauvais"}`))
	recorder := httptest.NewRecorder()

	Login(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "idToken")
}

func TestUpdatePasswordMotDePasseActuelIncorrect(t *testing.T) {
	server := fakeIdentityServer(t, "admin@exemple.fr", "bon-mot-de-passe", "jeton")
	defer server.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/password", strings.NewReader(`{"currentPassword":"mauvais","newPassword":"nouveau-mdp"}`))
	req.Header.Set("Authorization", "Bearer jeton")
	recorder := httptest.NewRecorder()

	UpdatePassword(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestUpdatePasswordTropCourt(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/password", strings.NewReader(`{"currentPassword":"actuel","newPassword":"abc"}`))
	recorder := httptest.NewRecorder()

	UpdatePassword(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdatePasswordSucces(t *testing.T) {
	server := fakeIdentityServer(t, "admin@exemple.fr", "bon-mot-de-passe", "jeton")
	defer server.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/password", strings.NewReader(`{"currentPassword":"bon-mot-de-passe","newPassword":"nouveau-mdp"}`))
	req.Header.Set("Authorization", "Bearer jeton")
	recorder := httptest.NewRecorder()

	UpdatePassword(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestResetPasswordEmailRequis(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/reset-password", strings.NewReader(`{}`))
	recorder := httptest.NewRecorder()

	ResetPassword(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestResetPasswordNeReveleRien(t *testing.T) {
	server := fakeIdentityServer(t, "admin@exemple.fr", "bon-mot-de-passe", "jeton")
	defer server.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/reset-password", strings.NewReader(`{"email":"inconnu@exemple.fr"}`))
	recorder := httptest.NewRecorder()

	ResetPassword(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
