package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/magicniclus/admintrouvermonchantier/identity"
	"github.com/magicniclus/admintrouvermonchantier/utils"
)

type resetPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPassword déclenche l'email de réinitialisation du fournisseur
// d'identité. La réponse ne révèle pas si l'adresse existe.
func ResetPassword(w http.ResponseWriter, r *http.Request) {
	req := resetPasswordRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		utils.SendResponse(w, http.StatusBadRequest, "Email requis", nil, 0)
		return
	}

	if err := identity.SendPasswordReset(req.Email); err != nil {
		log.Printf("[ResetPassword] %v", err)
	}

	utils.SendResponse(w, http.StatusOK, "Si un compte existe pour cette adresse, un email de réinitialisation a été envoyé", nil, 0)
}
