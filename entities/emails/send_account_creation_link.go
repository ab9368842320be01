package emails

import (
	"encoding/json"
	"log"
	"net/http"
)

// SendAccountCreationLink envoie le lien de création de compte au client.
func SendAccountCreationLink(w http.ResponseWriter, r *http.Request) {
	req := emailRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Email, prénom et clientId sont requis"})
		return
	}

	if req.Email == "" || req.FirstName == "" || req.ClientID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Email, prénom et clientId sont requis"})
		return
	}

	subject, html, text := AccountCreationEmail(req.FirstName, req.LastName, req.ClientID)
	if err := sendEmail(req.Email, fullName(req.FirstName, req.LastName), subject, html, text); err != nil {
		log.Printf("[SendAccountCreationLink][%s] %v", req.ClientID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Erreur lors de l'envoi de l'email de création de compte",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Email de création de compte envoyé avec succès"})
}
