package emails

import (
	"fmt"
	"strings"
)

// Liens de paiement Stripe fixes, un par offre.
var PaymentLinks = map[string]string{
	"90j-offert": "https://buy.stripe.com/fZu00j78U0qDg4JgbHa7C02",
	"classique":  "https://buy.stripe.com/6oU5kD0KwddpcSxgbHa7C03",
}

const emailLayout = `<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f8fafc; color: #334155; line-height: 1.6;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
    <div style="background: linear-gradient(135deg, #3b82f6 0%%, #1d4ed8 100%%); padding: 40px 30px; text-align: center;">
      <div style="color: white; font-size: 28px; font-weight: bold;">Trouver Mon Chantier</div>
      <div style="color: #e0e7ff; font-size: 16px;">Votre partenaire pour tous vos projets de construction</div>
    </div>
    <div style="padding: 40px 30px;">
%s
    </div>
    <div style="background-color: #f1f5f9; padding: 30px; text-align: center; border-top: 1px solid #e2e8f0;">
      <div style="font-size: 14px; color: #64748b;">Vous avez des questions ? Notre équipe est là pour vous aider !</div>
      <div style="font-size: 14px; color: #64748b;">📧 <a href="mailto:service@trouver-mon-chantier.fr" style="color: #3b82f6;">service@trouver-mon-chantier.fr</a></div>
      <div style="margin-top: 20px; font-size: 12px; color: #94a3b8;">© 2024 Trouver Mon Chantier. Tous droits réservés.</div>
    </div>
  </div>
</body>
</html>`

func ctaButton(href, label string) string {
	return fmt.Sprintf(`      <div style="text-align: center; margin: 40px 0;">
        <a href="%s" style="display: inline-block; background: linear-gradient(135deg, #3b82f6 0%%, #1d4ed8 100%%); color: white; text-decoration: none; padding: 16px 32px; border-radius: 8px; font-weight: 600; font-size: 16px;">%s</a>
      </div>`, href, label)
}

func fullName(firstName, lastName string) string {
	return strings.TrimSpace(firstName + " " + lastName)
}

// WelcomeEmail confirme la finalisation de l'inscription et renvoie vers la
// création de compte.
func WelcomeEmail(firstName, lastName, clientID string) (subject, html, text string) {
	subject = "Bienvenue sur Trouver Mon Chantier ! 🏠"
	link := appBaseURL() + "/creation-de-compte?uid=" + clientID

	body := fmt.Sprintf(`      <div style="font-size: 24px; font-weight: 600; color: #1e293b;">Bonjour %s ! 👋</div>
      <p style="font-size: 16px; color: #475569;">
        Félicitations ! Votre inscription sur <strong>Trouver Mon Chantier</strong> a été finalisée avec succès.<br><br>
        Nous sommes ravis de vous accueillir dans notre communauté de professionnels du bâtiment.
        Votre profil est maintenant en cours de création et sera bientôt disponible pour vos futurs clients.
      </p>
%s
      <p style="font-size: 16px; color: #475569;">
        <strong>Prochaines étapes :</strong><br>
        1. Cliquez sur le bouton ci-dessus pour finaliser votre compte<br>
        2. Configurez vos préférences de notification<br>
        3. Commencez à recevoir vos premiers leads !
      </p>`, fullName(firstName, lastName), ctaButton(link, "🚀 Finaliser mon compte"))

	html = fmt.Sprintf(emailLayout, "Bienvenue sur Trouver Mon Chantier", body)
	text = fmt.Sprintf("Bonjour %s !\n\nFélicitations ! Votre inscription sur Trouver Mon Chantier a été finalisée avec succès.\n\nFinalisez votre compte : %s\n\nL'équipe Trouver Mon Chantier", fullName(firstName, lastName), link)
	return subject, html, text
}

// AccountCreationEmail invite le client à créer son accès.
func AccountCreationEmail(firstName, lastName, clientID string) (subject, html, text string) {
	subject = "Créez votre compte - Trouver Mon Chantier 🔐"
	link := appBaseURL() + "/creation-de-compte?uid=" + clientID

	body := fmt.Sprintf(`      <div style="font-size: 24px; font-weight: 600; color: #1e293b;">Bonjour %s ! 👋</div>
      <p style="font-size: 16px; color: #475569;">
        Votre espace client <strong>Trouver Mon Chantier</strong> vous attend.
        Créez votre compte en quelques secondes pour suivre la création de votre site et gérer vos informations.
      </p>
%s
      <p style="font-size: 16px; color: #475569;">
        Ce lien est personnel, ne le partagez pas.
      </p>`, fullName(firstName, lastName), ctaButton(link, "🔐 Créer mon compte"))

	html = fmt.Sprintf(emailLayout, "Créez votre compte", body)
	text = fmt.Sprintf("Bonjour %s !\n\nCréez votre compte Trouver Mon Chantier : %s\n\nL'équipe Trouver Mon Chantier", fullName(firstName, lastName), link)
	return subject, html, text
}

// OnboardingLinkEmail envoie le lien du parcours d'onboarding.
func OnboardingLinkEmail(firstName, lastName, clientID string) (subject, html, text string) {
	subject = fmt.Sprintf("%s, créons votre site ensemble ! 🚀", firstName)
	link := appBaseURL() + "/onboarding?clientId=" + clientID

	body := fmt.Sprintf(`      <div style="font-size: 24px; font-weight: 600; color: #1e293b;">Bonjour %s ! 👋</div>
      <p style="font-size: 16px; color: #475569;">
        Pour créer votre site web professionnel, nous avons besoin de quelques informations sur votre entreprise.
        Le questionnaire prend moins de 10 minutes.
      </p>
%s
      <p style="font-size: 16px; color: #475569;">
        Vous pourrez y joindre votre logo et des photos de vos chantiers et de votre équipe.
      </p>`, fullName(firstName, lastName), ctaButton(link, "🚀 Commencer mon onboarding"))

	html = fmt.Sprintf(emailLayout, "Créons votre site ensemble", body)
	text = fmt.Sprintf("Bonjour %s !\n\nComplétez votre onboarding Trouver Mon Chantier : %s\n\nL'équipe Trouver Mon Chantier", fullName(firstName, lastName), link)
	return subject, html, text
}

// PaymentLinkEmail envoie le lien de paiement Stripe correspondant à l'offre.
// L'appelant valide l'offre avant.
func PaymentLinkEmail(firstName, lastName, offerType, paymentLink string) (subject, html, text string) {
	subject = fmt.Sprintf("%s, votre lien de paiement est prêt ! 🚀", firstName)

	offerTitle := "🚀 Votre abonnement"
	offerText := "Accédez immédiatement à tous nos outils professionnels."
	if offerType == "90j-offert" {
		offerTitle = "🎉 Offre Spéciale - 90 jours offerts"
		offerText = "Profitez de 3 mois gratuits pour découvrir tous nos services !"
	}

	body := fmt.Sprintf(`      <div style="font-size: 24px; font-weight: 600; color: #1e293b;">Bonjour %s ! 👋</div>
      <p style="font-size: 16px; color: #475569;">
        Nous sommes ravis de vous accompagner dans le développement de votre activité.
        Votre lien de paiement sécurisé est maintenant disponible.
      </p>
      <div style="background-color: #f0f9ff; border: 2px solid #3b82f6; border-radius: 12px; padding: 25px; margin: 30px 0; text-align: center;">
        <h3 style="color: #1e40af; margin: 0 0 15px 0; font-size: 20px;">%s</h3>
        <p style="color: #1f2937; font-size: 16px; margin: 0;">%s</p>
      </div>
%s
      <p style="text-align: center; color: #6b7280; font-size: 14px;">
        🔐 Paiement 100%% sécurisé par Stripe • Données cryptées • Sans engagement
      </p>`, fullName(firstName, lastName), offerTitle, offerText, ctaButton(paymentLink, "🔒 Procéder au paiement sécurisé"))

	html = fmt.Sprintf(emailLayout, "Votre lien de paiement", body)
	text = fmt.Sprintf("Bonjour %s !\n\n%s\n%s\n\nProcéder au paiement : %s\n\nL'équipe Trouver Mon Chantier", fullName(firstName, lastName), offerTitle, offerText, paymentLink)
	return subject, html, text
}
