package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/magicniclus/admintrouvermonchantier/identity"
	"github.com/magicniclus/admintrouvermonchantier/utils"
)

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdatePassword change le mot de passe de l'admin connecté. L'identité est
// d'abord reconfirmée avec le mot de passe actuel, comme l'onglet réglages
// du dashboard l'exige.
func UpdatePassword(w http.ResponseWriter, r *http.Request) {
	req := updatePasswordRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" {
		utils.SendResponse(w, http.StatusBadRequest, "Mot de passe actuel et nouveau mot de passe sont requis", nil, 0)
		return
	}

	if len(req.NewPassword) < 6 {
		utils.SendResponse(w, http.StatusBadRequest, "Le nouveau mot de passe doit contenir au moins 6 caractères", nil, 0)
		return
	}

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	user, err := identity.Lookup(token)
	if err != nil {
		utils.SendResponse(w, http.StatusUnauthorized, "Jeton invalide ou session expirée", nil, 0)
		return
	}

	session, err := identity.SignIn(user.Email, req.CurrentPassword)
	if err != nil {
		utils.SendResponse(w, http.StatusUnauthorized, "Mot de passe actuel incorrect", nil, 0)
		return
	}

	if err := identity.UpdatePassword(session.IDToken, req.NewPassword); err != nil {
		log.Printf("[UpdatePassword][%s] %v", user.UID, err)
		utils.SendResponse(w, http.StatusInternalServerError, "Erreur lors du changement de mot de passe", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "Mot de passe mis à jour", nil, 0)
}
