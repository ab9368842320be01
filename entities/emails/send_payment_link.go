package emails

import (
	"encoding/json"
	"log"
	"net/http"
)

type paymentLinkRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	OfferType string `json:"offerType"`
	ClientID  string `json:"clientId"`
}

// SendPaymentLink envoie le lien Stripe correspondant à l'offre choisie.
// Une offre inconnue est rejetée avant tout appel au fournisseur.
func SendPaymentLink(w http.ResponseWriter, r *http.Request) {
	req := paymentLinkRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Type d'offre invalide"})
		return
	}

	paymentLink, ok := PaymentLinks[req.OfferType]
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Type d'offre invalide"})
		return
	}

	subject, html, text := PaymentLinkEmail(req.FirstName, req.LastName, req.OfferType, paymentLink)
	if err := sendEmail(req.Email, fullName(req.FirstName, req.LastName), subject, html, text); err != nil {
		log.Printf("[SendPaymentLink][%s] %v", req.ClientID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Erreur lors de l'envoi de l'email",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Email avec lien de paiement envoyé avec succès",
	})
}
