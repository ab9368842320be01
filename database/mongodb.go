package database

import (
	"os"
	"time"

	"github.com/magicniclus/admintrouvermonchantier/utils"
)

const (
	MONGO_TIMEOUT         = 20 * time.Second
	COLLECTION_PROSPECTS  = "prospects"
	COLLECTION_CLIENTS    = "clients"
	COLLECTION_ONBOARDING = "onboarding"
	COLLECTION_ADMINS     = "admins"
)

func GetDB() string {
	environment := os.Getenv(utils.ENV)

	if environment == utils.ENV_RELEASE {
		return "production"
	}

	if environment == utils.ENV_HOMOLOG {
		return "homolog"
	}

	if environment == utils.ENV_DEVELOPMENT {
		return "development"
	}

	panic("[MongoDB] Invalid DB name")
}
