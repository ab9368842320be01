package emails

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/magicniclus/admintrouvermonchantier/utils"
)

const testEmailRecipient = "casteranicolas.contact@gmail.com"

// TestEmail envoie un email de diagnostic à une adresse fixe et renvoie le
// détail du résultat SendGrid.
func TestEmail(w http.ResponseWriter, r *http.Request) {
	apiKeyPresent := os.Getenv(utils.SENDGRID_API_KEY) != ""
	timestamp := time.Now().UTC().Format(time.RFC3339)

	html := fmt.Sprintf(`<h1>Test d'envoi SendGrid</h1>
<p>Si vous recevez cet email, SendGrid fonctionne correctement.</p>
<p>Timestamp: %s</p>`, timestamp)
	text := fmt.Sprintf("Test d'envoi SendGrid\nTimestamp: %s", timestamp)

	err := sendEmail(testEmailRecipient, "", "Test SendGrid - Trouver Mon Chantier", html, text)
	if err != nil {
		log.Printf("[TestEmail] %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success":       false,
			"error":         err.Error(),
			"details":       fmt.Sprintf("%v", err),
			"timestamp":     timestamp,
			"apiKeyPresent": apiKeyPresent,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"message":       "Email de test envoyé avec succès",
		"timestamp":     timestamp,
		"apiKeyPresent": apiKeyPresent,
	})
}
