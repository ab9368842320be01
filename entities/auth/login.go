package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/magicniclus/admintrouvermonchantier/database"
	"github.com/magicniclus/admintrouvermonchantier/identity"
	"github.com/magicniclus/admintrouvermonchantier/middlewares"
	"github.com/magicniclus/admintrouvermonchantier/utils"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// Login authentifie un administrateur. Un compte valide sans le rôle
// "Super Admin" reçoit le même refus qu'un mot de passe erroné : le jeton
// n'est jamais renvoyé à un non-admin.
func Login(w http.ResponseWriter, r *http.Request) {
	req := loginRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		utils.SendResponse(w, http.StatusBadRequest, "Email et mot de passe sont requis", nil, 0)
		return
	}

	session, err := identity.SignIn(req.Email, req.Password)
	if err != nil {
		log.Printf("[Login] échec pour %s: %v", req.Email, err)
		utils.SendResponse(w, http.StatusUnauthorized, "Identifiants invalides", nil, 0)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	if !middlewares.CheckAdminRole(ctx, database.Roles(), session.UID) {
		utils.SendResponse(w, http.StatusForbidden, "Accès refusé", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", loginResponse{
		UID:          session.UID,
		Email:        session.Email,
		IDToken:      session.IDToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
	}, 0)
}
