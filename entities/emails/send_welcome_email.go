package emails

import (
	"encoding/json"
	"log"
	"net/http"
)

type emailRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	ClientID  string `json:"clientId"`
}

// SendWelcome envoie l'email de bienvenue, aussi déclenché par le pipeline
// d'onboarding.
func SendWelcome(email, firstName, lastName, clientID string) error {
	subject, html, text := WelcomeEmail(firstName, lastName, clientID)
	return sendEmail(email, fullName(firstName, lastName), subject, html, text)
}

// SendWelcomeEmail confirme au client la finalisation de son inscription.
func SendWelcomeEmail(w http.ResponseWriter, r *http.Request) {
	req := emailRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Email, prénom et clientId sont requis"})
		return
	}

	if req.Email == "" || req.FirstName == "" || req.ClientID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Email, prénom et clientId sont requis"})
		return
	}

	if err := SendWelcome(req.Email, req.FirstName, req.LastName, req.ClientID); err != nil {
		log.Printf("[SendWelcomeEmail][%s] %v", req.ClientID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Erreur lors de l'envoi de l'email",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Email envoyé avec succès"})
}
