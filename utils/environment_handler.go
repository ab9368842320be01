package utils

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ENV              = "ENV"
	PORT             = "PORT"
	MONGODB_URI      = "MONGODB_URI"
	MYSQL_URI        = "MYSQL_URI"
	REDIS_URI        = "REDIS_URI"
	SENDGRID_API_KEY = "SENDGRID_API_KEY"
	IDENTITY_API_KEY = "IDENTITY_API_KEY"
	IDENTITY_API_URL = "IDENTITY_API_URL"
	STORAGE_BUCKET   = "STORAGE_BUCKET"
	STORAGE_API_URL  = "STORAGE_API_URL"
	APP_BASE_URL     = "APP_BASE_URL"

	ENV_DEVELOPMENT = "development"
	ENV_HOMOLOG     = "homolog"
	ENV_RELEASE     = "production"
)

var allowedKeys = []string{
	ENV, PORT, MONGODB_URI, MYSQL_URI, REDIS_URI,
	SENDGRID_API_KEY, IDENTITY_API_KEY, IDENTITY_API_URL,
	STORAGE_BUCKET, STORAGE_API_URL, APP_BASE_URL,
}

// MYSQL_URI, REDIS_URI et les URLs de surcharge des fournisseurs sont
// facultatives : l'import legacy et le cache Redis se désactivent sans elles.
var requiredKeys = []string{
	ENV, PORT, MONGODB_URI, SENDGRID_API_KEY, IDENTITY_API_KEY, STORAGE_BUCKET,
}

var allowedEnvValues = []string{ENV_DEVELOPMENT, ENV_HOMOLOG, ENV_RELEASE}

func LoadEnvVariables() {
	values, err := godotenv.Read(".env")
	if err != nil {
		panic("[ENV] Erreur lors de la lecture du fichier .env: " + err.Error())
	}

	if len(values) == 0 {
		panic("[ENV] Le fichier .env est vide")
	}

	for key, value := range values {
		if !slices.Contains(allowedKeys, key) {
			panic(fmt.Sprintf("[ENV] La clé '%s' n'est pas autorisée. Clés autorisées: %s",
				key, strings.Join(allowedKeys, ", ")))
		}

		if key == ENV && !slices.Contains(allowedEnvValues, value) {
			panic(fmt.Sprintf("[ENV] Valeur invalide pour ENV: %s. Valeurs autorisées: %s",
				value, strings.Join(allowedEnvValues, ", ")))
		}

		if err := os.Setenv(key, value); err != nil {
			panic("[ENV] Erreur lors de la définition de la variable " + key + ": " + err.Error())
		}
	}

	var missingKeys []string
	for _, key := range requiredKeys {
		if values[key] == "" {
			missingKeys = append(missingKeys, key)
		}
	}

	if len(missingKeys) > 0 {
		panic(fmt.Sprintf("[ENV] Variables d'environnement obligatoires absentes: %s",
			strings.Join(missingKeys, ", ")))
	}
}
