package emails

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/magicniclus/admintrouvermonchantier/utils"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	FromEmail = "service@trouver-mon-chantier.fr"
	FromName  = "Trouver Mon Chantier"
)

// appBaseURL pointe vers le front utilisé dans les liens des emails.
func appBaseURL() string {
	if base := os.Getenv(utils.APP_BASE_URL); base != "" {
		return base
	}
	return "https://app.trouver-mon-chantier.fr"
}

// sendEmail envoie un email transactionnel via SendGrid. Un statut HTTP
// inattendu du fournisseur vaut échec.
func sendEmail(toEmail, toName, subject, htmlContent, textContent string) error {
	from := mail.NewEmail(FromName, FromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, textContent, htmlContent)

	client := sendgrid.NewSendClient(os.Getenv(utils.SENDGRID_API_KEY))
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return &ProviderError{StatusCode: response.StatusCode, Body: response.Body}
	}
	return nil
}

// ProviderError transporte le statut et le corps renvoyés par SendGrid.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("sendgrid: statut %d: %s", e.StatusCode, e.Body)
}

// writeJSON sert les réponses brutes de la surface /api/*, qui garde le
// format historique du front ({error: ...}, {success: ...}) au lieu de
// l'enveloppe ApiResponse.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
