package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/magicniclus/admintrouvermonchantier/database"
	"github.com/magicniclus/admintrouvermonchantier/entities/auth"
	"github.com/magicniclus/admintrouvermonchantier/entities/clients"
	"github.com/magicniclus/admintrouvermonchantier/entities/dashboard"
	"github.com/magicniclus/admintrouvermonchantier/entities/emails"
	"github.com/magicniclus/admintrouvermonchantier/entities/finance"
	"github.com/magicniclus/admintrouvermonchantier/entities/images"
	"github.com/magicniclus/admintrouvermonchantier/entities/onboarding"
	"github.com/magicniclus/admintrouvermonchantier/entities/prospects"
	"github.com/magicniclus/admintrouvermonchantier/middlewares"
	"github.com/magicniclus/admintrouvermonchantier/utils"
)

const reconcileInterval = 10 * time.Minute

// runConversionReconciler termine périodiquement les conversions
// interrompues entre la création du client et la suppression du prospect.
func runConversionReconciler() {
	for {
		time.Sleep(reconcileInterval)

		ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
		mongoClient, err := database.Connect(ctx)
		if err != nil {
			log.Printf("[Reconcile] mongo connect error: %v", err)
			cancel()
			continue
		}

		if err := prospects.ReconcileConversions(ctx, database.NewStore(mongoClient)); err != nil {
			log.Printf("[Reconcile] %v", err)
		}

		mongoClient.Disconnect(ctx)
		cancel()
	}
}

func main() {
	utils.LoadEnvVariables()

	env := os.Getenv(utils.ENV)
	if env == utils.ENV_RELEASE {
		fmt.Printf("\033[1;31;47m[ATTENTION] Environnement de PRODUCTION !\033[0m\n")
	} else {
		fmt.Printf("[INFO] Environnement actuel : %s\n", env)
	}

	go runConversionReconciler()

	mux := http.NewServeMux()

	mux.Handle("GET /v1/prospects", middlewares.AdminAuth(http.HandlerFunc(prospects.GetAll)))
	mux.Handle("GET /v1/prospects/{id}", middlewares.AdminAuth(http.HandlerFunc(prospects.GetOne)))
	mux.Handle("POST /v1/prospects", middlewares.AdminAuth(http.HandlerFunc(prospects.CreateOne)))
	mux.Handle("PATCH /v1/prospects/{id}", middlewares.AdminAuth(http.HandlerFunc(prospects.UpdateOne)))
	mux.Handle("DELETE /v1/prospects/{id}", middlewares.AdminAuth(http.HandlerFunc(prospects.DeleteOne)))
	mux.Handle("POST /v1/prospects/{id}/convert", middlewares.AdminAuth(http.HandlerFunc(prospects.ConvertOne)))
	mux.Handle("POST /v1/prospects/import-legacy", middlewares.AdminAuth(http.HandlerFunc(prospects.ImportLegacy)))

	mux.Handle("GET /v1/clients", middlewares.AdminAuth(http.HandlerFunc(clients.GetAll)))
	mux.Handle("GET /v1/clients/{id}", middlewares.AdminAuth(http.HandlerFunc(clients.GetOne)))
	mux.Handle("PATCH /v1/clients/{id}", middlewares.AdminAuth(http.HandlerFunc(clients.UpdateOne)))
	mux.Handle("GET /v1/clients/{id}/onboarding", middlewares.AdminAuth(http.HandlerFunc(clients.GetOnboarding)))

	mux.Handle("GET /v1/finance/summary", middlewares.AdminAuth(http.HandlerFunc(finance.GetSummary)))

	mux.HandleFunc("POST /v1/auth/login", auth.Login)
	mux.HandleFunc("POST /v1/auth/reset-password", auth.ResetPassword)
	mux.Handle("POST /v1/auth/password", middlewares.AdminAuth(http.HandlerFunc(auth.UpdatePassword)))

	mux.HandleFunc("POST /v1/onboarding/{id}", onboarding.Submit)
	mux.HandleFunc("/v1/ws/dashboard", dashboard.WebSocketHandler)

	mux.HandleFunc("POST /api/send-welcome-email", emails.SendWelcomeEmail)
	mux.HandleFunc("POST /api/send-account-creation-link", emails.SendAccountCreationLink)
	mux.HandleFunc("POST /api/send-onboarding-link", emails.SendOnboardingLink)
	mux.HandleFunc("POST /api/send-payment-link", emails.SendPaymentLink)
	mux.HandleFunc("GET /api/test-email", emails.TestEmail)
	mux.HandleFunc("GET /api/download-image", images.DownloadImage)

	fmt.Printf("Serveur démarré sur le port %s à %s\n", os.Getenv(utils.PORT), time.Now().Format("2006-01-02 15:04:05"))
	http.ListenAndServe(fmt.Sprintf(":%s", os.Getenv(utils.PORT)), middlewares.SecurityHeaders(middlewares.Cors(mux)))
}
