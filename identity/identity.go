// Package identity consomme l'API REST du fournisseur d'identité
// (Identity Toolkit). Les appels sont de simples requêtes HTTP ;
// IDENTITY_API_URL permet de pointer vers un serveur de test.
package identity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/magicniclus/admintrouvermonchantier/utils"
)

const defaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

var httpClient = &http.Client{Timeout: 10 * time.Second}

type SignInResult struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
	ExpiresIn    string
}

type User struct {
	UID   string
	Email string
}

func baseURL() string {
	if url := os.Getenv(utils.IDENTITY_API_URL); url != "" {
		return url
	}
	return defaultBaseURL
}

func endpoint(action string) string {
	return fmt.Sprintf("%s/accounts:%s?key=%s", baseURL(), action, os.Getenv(utils.IDENTITY_API_KEY))
}

func post(action string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := httpClient.Post(endpoint(action), "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("requête %s: %w", action, err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: statut %d: %s", action, resp.StatusCode, string(data))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("décodage réponse %s: %w", action, err)
		}
	}
	return nil
}

// SignIn authentifie par email/mot de passe et renvoie la session.
func SignIn(email, password string) (*SignInResult, error) {
	result := struct {
		LocalID      string `json:"localId"`
		Email        string `json:"email"`
		IDToken      string `json:"idToken"`
		RefreshToken string `json:"refreshToken"`
		ExpiresIn    string `json:"expiresIn"`
	}{}

	payload := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	if err := post("signInWithPassword", payload, &result); err != nil {
		return nil, err
	}

	return &SignInResult{
		UID:          result.LocalID,
		Email:        result.Email,
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	}, nil
}

// Lookup valide un ID token et renvoie l'utilisateur correspondant.
func Lookup(idToken string) (*User, error) {
	result := struct {
		Users []struct {
			LocalID string `json:"localId"`
			Email   string `json:"email"`
		} `json:"users"`
	}{}

	if err := post("lookup", map[string]any{"idToken": idToken}, &result); err != nil {
		return nil, err
	}

	if len(result.Users) == 0 {
		return nil, fmt.Errorf("lookup: aucun utilisateur pour ce jeton")
	}

	return &User{UID: result.Users[0].LocalID, Email: result.Users[0].Email}, nil
}

// UpdatePassword change le mot de passe du détenteur du jeton.
func UpdatePassword(idToken, newPassword string) error {
	payload := map[string]any{
		"idToken":           idToken,
		"password":          newPassword,
		"returnSecureToken": true,
	}
	return post("update", payload, nil)
}

// SendPasswordReset déclenche l'email de réinitialisation du fournisseur.
func SendPasswordReset(email string) error {
	payload := map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}
	return post("sendOobCode", payload, nil)
}
